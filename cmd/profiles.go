package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/arq/internal/list"
)

var profilesOutputFormat string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the project's Maven profiles",
	Long: `List the profiles declared in pom.xml in ascending order, with the
cataloged container each one selects. Profiles that select no known
container are shown with "-".`,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().StringVarP(&profilesOutputFormat, "output", "o", "table", "output format (table, json)")
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	return list.Profiles(&list.ProfilesOpts{
		Manager:      ws.manager,
		Maven:        ws.project,
		OutputFormat: profilesOutputFormat,
		Writer:       os.Stdout,
	})
}
