// Package cubesetup adds an Arquillian Cube extension to a project.
package cubesetup

import (
	"fmt"
	"log/slog"

	"github.com/donaldgifford/arq/internal/cube"
	"github.com/donaldgifford/arq/internal/project"
)

// Opts configures the cube setup operation.
type Opts struct {
	// Kind selects the Cube configuration.
	Kind cube.Kind
	// File is the location file written to the extension's location
	// property. Empty leaves arquillian.xml untouched.
	File string
	// Version of the Cube extension dependency. Empty leaves the version to
	// dependency management.
	Version string
	// Maven is the project's POM facet.
	Maven project.MavenFacet
	// Arquillian is the project's arquillian.xml facet.
	Arquillian project.ArquillianFacet
	// Logger for debug output.
	Logger *slog.Logger
}

// Result reports what was changed.
type Result struct {
	Entry cube.Entry
	// DependencyAdded is false when the POM already declared the extension.
	DependencyAdded bool
	// LocationSet is true when the extension property was written.
	LocationSet bool
}

// Run adds the Cube extension dependency to the POM and points the
// extension at its location file.
func Run(opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	kind, err := cube.ParseKind(string(opts.Kind))
	if err != nil {
		return nil, err
	}

	entry := cube.Resolve(kind)
	res := &Result{Entry: entry}

	model, err := opts.Maven.Model()
	if err != nil {
		return nil, fmt.Errorf("reading pom: %w", err)
	}

	dep := entry.Dependency
	dep.Version = opts.Version

	if model.AddDependency(dep) {
		if err := opts.Maven.SetModel(model); err != nil {
			return nil, fmt.Errorf("writing pom: %w", err)
		}

		res.DependencyAdded = true
	} else {
		logger.Debug("cube dependency already declared", "dependency", dep.Key())
	}

	if opts.File == "" {
		return res, nil
	}

	cfg, err := opts.Arquillian.Config()
	if err != nil {
		return nil, fmt.Errorf("reading arquillian config: %w", err)
	}

	cfg.AddExtensionProperty(entry.Qualifier, entry.LocationKey, opts.File)

	if err := opts.Arquillian.SetConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing arquillian config: %w", err)
	}

	logger.Debug("set cube location", "qualifier", entry.Qualifier, "property", entry.LocationKey, "file", opts.File)

	res.LocationSet = true

	return res, nil
}
