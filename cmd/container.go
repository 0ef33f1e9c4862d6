package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/arq/internal/configure"
	"github.com/donaldgifford/arq/internal/containersetup"
	"github.com/donaldgifford/arq/internal/info"
	"github.com/donaldgifford/arq/internal/pom"
	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/prompt"
	"github.com/donaldgifford/arq/internal/ui"
)

var (
	infoOutputFormat string

	setupActivate         bool
	setupChameleonVersion string
	setupDownloadVersion  string
	setupDependencies     []string

	configureContainer      string
	configureOption         string
	configureValue          string
	configureNonInteractive bool
)

var containerCmd = &cobra.Command{
	Use:   "container",
	Short: "Inspect and configure Arquillian containers",
}

var containerInfoCmd = &cobra.Command{
	Use:   "info <container>",
	Short: "Show detailed container information",
	Long: `Display a cataloged container's profile id, adapter, download source,
chameleon mapping, and configuration options. The container can be named by
id or profile id.`,
	Args: cobra.ExactArgs(1),
	RunE: runContainerInfo,
}

var containerSetupCmd = &cobra.Command{
	Use:   "setup <container>",
	Short: "Add a container profile to pom.xml",
	Long: `Add or replace the Maven profile that runs the tests against a container.
The profile configures surefire with arquillian.launch and carries the
container adapter dependency. An existing profile for the same container
keeps its id.

With --chameleon-version the profile targets Arquillian Chameleon instead.
With --download-version, or for containers downloaded from a URL, a plugin
execution that installs the container before the tests is added too.`,
	Args: cobra.ExactArgs(1),
	RunE: runContainerSetup,
}

var containerConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Set a container configuration property in arquillian.xml",
	Long: `Choose a container profile, one of its configuration options, and a value,
and write it to src/test/resources/arquillian.xml. Missing flags are
prompted for when running in a terminal.`,
	Args: cobra.NoArgs,
	RunE: runContainerConfigure,
}

func init() {
	containerInfoCmd.Flags().StringVarP(&infoOutputFormat, "output", "o", "text", "output format (text, json)")

	containerSetupCmd.Flags().BoolVar(&setupActivate, "activate", false, "activate the profile by default (default from config)")
	containerSetupCmd.Flags().StringVar(&setupChameleonVersion, "chameleon-version", "", "target the container through chameleon at this version")
	containerSetupCmd.Flags().StringVar(&setupDownloadVersion, "download-version", "", "install this container distribution version before the tests")
	containerSetupCmd.Flags().StringArrayVar(&setupDependencies, "dependency", nil,
		"extra profile dependency as groupId:artifactId[:version[:scope]] (repeatable, scope defaults to test)")

	containerConfigureCmd.Flags().StringVarP(&configureContainer, "container", "c", "", "container profile id")
	containerConfigureCmd.Flags().StringVar(&configureOption, "option", "", "configuration option name")
	containerConfigureCmd.Flags().StringVar(&configureValue, "value", "", "configuration value")
	containerConfigureCmd.Flags().BoolVar(&configureNonInteractive, "non-interactive", false, "never prompt; fail on missing required values")

	containerCmd.AddCommand(containerInfoCmd, containerSetupCmd, containerConfigureCmd)
	rootCmd.AddCommand(containerCmd)
}

func runContainerInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}

	c, err := catalog.Find(profile.Normalize(args[0]))
	if err != nil {
		return err
	}

	return info.Run(&info.Opts{
		Container:    c,
		Writer:       os.Stdout,
		OutputFormat: infoOutputFormat,
	})
}

func runContainerSetup(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	deps, err := parseDependencies(setupDependencies)
	if err != nil {
		return err
	}

	activate := ws.cfg.ActivateByDefault
	if cmd.Flags().Changed("activate") {
		activate = setupActivate
	}

	res, err := containersetup.Run(&containersetup.Opts{
		Container:        args[0],
		Activate:         activate,
		ChameleonVersion: setupChameleonVersion,
		DownloadVersion:  setupDownloadVersion,
		Dependencies:     deps,
		Catalog:          ws.catalog,
		Manager:          ws.manager,
		Maven:            ws.project,
	})
	if err != nil {
		return err
	}

	w := ui.NewWriter(noColor).RelativeTo(ws.project.Dir)
	w.Changed(ws.project.PomPath())
	w.Successf("Added profile %s for container %s", w.Bold(res.ProfileID), res.Container.ID)

	if res.Project.ArtifactID != "" {
		if _, err := fmt.Fprintf(w.Out(), "Project: %s\n", res.Project); err != nil {
			return err
		}
	}

	if res.Installed {
		w.Successf("Container is installed into target/ before the tests run")
	}

	return nil
}

func runContainerConfigure(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	var p prompt.Prompter
	if !configureNonInteractive && interactive() {
		p = prompt.Terminal{}
	}

	res, err := configure.Run(&configure.Opts{
		Manager:    ws.manager,
		Maven:      ws.project,
		Arquillian: ws.project,
		Container:  configureContainer,
		Option:     configureOption,
		Value:      configureValue,
		Prompter:   p,
	})
	if err != nil {
		return err
	}

	w := ui.NewWriter(noColor).RelativeTo(ws.project.Dir)
	w.Changed(ws.project.DescriptorPath())
	w.Successf("Set %s=%s on container %s", res.Option, res.Value, w.Bold(res.Container))

	return nil
}

func parseDependencies(raw []string) ([]pom.Coordinate, error) {
	deps := make([]pom.Coordinate, 0, len(raw))

	for _, s := range raw {
		c, err := pom.ParseCoordinate(s)
		if err != nil {
			return nil, fmt.Errorf("parsing --dependency: %w", err)
		}

		if c.Scope == "" {
			c.Scope = "test"
		}

		deps = append(deps, c)
	}

	return deps, nil
}
