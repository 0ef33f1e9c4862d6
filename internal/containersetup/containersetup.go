// Package containersetup registers an Arquillian container in a project:
// its profile, its dependencies, and optionally the plugin execution that
// installs it before the tests run.
package containersetup

import (
	"fmt"
	"log/slog"

	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/pom"
	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/project"
)

// Catalog looks up containers by id or profile id.
type Catalog interface {
	Find(ref string) (*container.Container, error)
}

// Opts configures the container setup operation.
type Opts struct {
	// Container is a container id or profile id, in either prefix form.
	Container string
	// Activate marks the profile active by default.
	Activate bool
	// ChameleonVersion, when set, configures the profile for a chameleon
	// target instead of adding the container's dependencies.
	ChameleonVersion string
	// DownloadVersion is the version of the container distribution to
	// unpack. Containers downloaded from a URL ignore it.
	DownloadVersion string
	// Dependencies are added to the profile after the catalog's own.
	Dependencies []pom.Coordinate

	Catalog Catalog
	Manager *profile.Manager
	Maven   project.MavenFacet
	Logger  *slog.Logger
}

// Result reports what was changed.
type Result struct {
	Container *container.Container
	// ProfileID is the id the profile ended up with in the POM.
	ProfileID string
	// Project is the coordinate of the edited project.
	Project pom.Coordinate
	// Installed is true when a download/unpack plugin was added.
	Installed bool
}

// Run adds or replaces the container's profile and, when the container can
// be downloaded, the plugin that installs it.
func Run(opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c, err := opts.Catalog.Find(profile.Normalize(opts.Container))
	if err != nil {
		return nil, err
	}

	if opts.ChameleonVersion != "" {
		if len(opts.Dependencies) > 0 {
			logger.Warn("ignoring extra dependencies for chameleon profile", "container", c.ID)
		}

		if err := opts.Manager.AddChameleonProfile(opts.Maven, c, opts.ChameleonVersion, opts.Activate); err != nil {
			return nil, fmt.Errorf("adding chameleon profile for %s: %w", c.ID, err)
		}
	} else {
		deps := dependencies(c, opts.Dependencies)
		logger.Debug("adding profile", "container", c.ID, "dependencies", len(deps))

		if err := opts.Manager.AddProfile(opts.Maven, c, opts.Activate, deps...); err != nil {
			return nil, fmt.Errorf("adding profile for %s: %w", c.ID, err)
		}
	}

	res := &Result{Container: c}

	if opts.DownloadVersion != "" || c.Download.HasURL() {
		if err := opts.Manager.AddContainerConfiguration(c, opts.Maven, opts.DownloadVersion); err != nil {
			return nil, fmt.Errorf("adding container download for %s: %w", c.ID, err)
		}

		res.Installed = true
	}

	model, err := opts.Maven.Model()
	if err != nil {
		return nil, err
	}

	res.ProfileID = profileID(model, c)
	res.Project = model.Coordinate()

	return res, nil
}

// dependencies returns the container adapter, the catalog dependencies, and
// extra, in that order.
func dependencies(c *container.Container, extra []pom.Coordinate) []pom.Coordinate {
	deps := make([]pom.Coordinate, 0, 1+len(c.Dependencies)+len(extra))

	if adapter, ok := c.Adapter(); ok {
		deps = append(deps, adapter)
	}

	deps = append(deps, c.Dependencies...)

	return append(deps, extra...)
}

func profileID(model *pom.Model, c *container.Container) string {
	profiles := model.Profiles()
	if len(profiles) == 0 {
		return c.ProfileID()
	}

	// The container's profile is always appended last.
	return profiles[len(profiles)-1].ID()
}
