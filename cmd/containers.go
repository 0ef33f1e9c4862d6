package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/arq/internal/list"
)

var (
	containersType         string
	containersOutputFormat string
	containersRefresh      bool
)

var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List cataloged containers",
	Long: `List the containers arq knows about. By default the built-in catalog is
used; --catalog or the config file can point at a local or remote one.
Use --refresh to refetch a cached remote catalog.`,
	Aliases: []string{"ls"},
	RunE:    runContainers,
}

func init() {
	containersCmd.Flags().StringVar(&containersType, "type", "", "filter containers by type (managed, remote, embedded)")
	containersCmd.Flags().StringVarP(&containersOutputFormat, "output", "o", "table", "output format (table, json)")
	containersCmd.Flags().BoolVar(&containersRefresh, "refresh", false, "refetch the remote catalog")
	rootCmd.AddCommand(containersCmd)
}

func runContainers(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context(), cfg, containersRefresh)
	if err != nil {
		return err
	}

	return list.Run(&list.Opts{
		Containers:   catalog,
		TypeFilter:   containersType,
		OutputFormat: containersOutputFormat,
		Writer:       os.Stdout,
	})
}
