package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/arq/internal/cube"
	"github.com/donaldgifford/arq/internal/cubesetup"
	"github.com/donaldgifford/arq/internal/ui"
)

var (
	cubeFile    string
	cubeVersion string
)

var cubeCmd = &cobra.Command{
	Use:   "cube",
	Short: "Add Arquillian Cube extensions",
}

var cubeKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported Cube configurations",
	Args:  cobra.NoArgs,
	RunE:  runCubeKinds,
}

var cubeSetupCmd = &cobra.Command{
	Use:   "setup <kind>",
	Short: "Add a Cube extension to the project",
	Long: fmt.Sprintf(`Add the Arquillian Cube extension for a configuration kind to pom.xml
as a test dependency, and point the extension at its definitions file in
arquillian.xml when --file is given.

Kinds: %s`, strings.Join(kindNames(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runCubeSetup,
}

func init() {
	cubeSetupCmd.Flags().StringVarP(&cubeFile, "file", "f", "", "definitions file (docker-compose.yml, kubernetes.json, ...)")
	cubeSetupCmd.Flags().StringVar(&cubeVersion, "version", "", "Cube extension version (default is managed by the project)")
	cubeCmd.AddCommand(cubeKindsCmd, cubeSetupCmd)
	rootCmd.AddCommand(cubeCmd)
}

func kindNames() []string {
	kinds := cube.Kinds()
	names := make([]string, 0, len(kinds))

	for _, k := range kinds {
		names = append(names, string(k))
	}

	return names
}

func runCubeKinds(_ *cobra.Command, _ []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "KIND\tTYPE\tQUALIFIER\tPROPERTY\tDEPENDENCY"); err != nil {
		return err
	}

	for _, k := range cube.Kinds() {
		e := cube.Resolve(k)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", string(e.Kind), e.Type, e.Qualifier, e.LocationKey, e.Dependency.Key()); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func runCubeSetup(_ *cobra.Command, args []string) error {
	p, err := openProject()
	if err != nil {
		return err
	}

	res, err := cubesetup.Run(&cubesetup.Opts{
		Kind:       cube.Kind(args[0]),
		File:       cubeFile,
		Version:    cubeVersion,
		Maven:      p,
		Arquillian: p,
	})
	if err != nil {
		return err
	}

	w := ui.NewWriter(noColor).RelativeTo(p.Dir)

	if res.DependencyAdded {
		w.Changed(p.PomPath())
	} else {
		w.Warningf("%s is already a dependency", res.Entry.Dependency.Key())
	}

	if res.LocationSet {
		w.Changed(p.DescriptorPath())
	}

	w.Successf("Added %s configuration", w.Bold(res.Entry.Type))

	return nil
}
