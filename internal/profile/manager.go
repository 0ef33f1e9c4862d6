// Package profile manages the Maven profiles that select an Arquillian
// container: it lists them, creates or replaces a container's profile, and
// attaches the plugin execution that installs the container.
package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/fragment"
	"github.com/donaldgifford/arq/internal/pom"
	"github.com/donaldgifford/arq/internal/project"
)

// DefaultSurefireVersion is the surefire version used when none is configured.
const DefaultSurefireVersion = "2.14.1"

const (
	shortPrefix = "arq-"

	executionID    = "unpack"
	executionPhase = "process-test-classes"
)

var (
	// ErrContainerNotFound is returned when a profile id matches no cataloged container.
	ErrContainerNotFound = container.ErrNotFound

	// ErrProfileNotFound is returned when a container has no profile in the POM.
	ErrProfileNotFound = errors.New("container profile not found")
)

var (
	surefirePlugin = pom.Coordinate{ArtifactID: "maven-surefire-plugin"}
	downloadPlugin = pom.Coordinate{GroupID: "com.googlecode.maven-download-plugin", ArtifactID: "download-maven-plugin"}
	unpackPlugin   = pom.Coordinate{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-dependency-plugin"}
)

// Normalize rewrites the short "arq-" profile prefix, in any case, to
// "arquillian-". The rest of the id is kept as is. Every profile id
// comparison goes through it.
func Normalize(id string) string {
	if len(id) >= len(shortPrefix) && strings.EqualFold(id[:len(shortPrefix)], shortPrefix) {
		return container.ProfilePrefix + id[len(shortPrefix):]
	}

	return id
}

// Opts configures a Manager.
type Opts struct {
	// Containers is the catalog profiles are resolved against.
	Containers container.Source
	// SurefireVersion overrides DefaultSurefireVersion.
	SurefireVersion string
	// Logger for debug output.
	Logger *slog.Logger
}

// Manager reads and edits container profiles in a project's POM.
type Manager struct {
	containers      container.Source
	surefireVersion string
	fragments       *fragment.Renderer
	logger          *slog.Logger
}

// NewManager creates a Manager.
func NewManager(opts *Opts) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	version := opts.SurefireVersion
	if version == "" {
		version = DefaultSurefireVersion
	}

	return &Manager{
		containers:      opts.Containers,
		surefireVersion: version,
		fragments:       fragment.New(),
		logger:          logger,
	}
}

// ProfileIDs returns the ids of every profile in the POM in ascending order,
// without duplicates.
func (m *Manager) ProfileIDs(facet project.MavenFacet) ([]string, error) {
	model, err := facet.Model()
	if err != nil {
		return nil, err
	}

	profiles := model.Profiles()
	ids := make([]string, 0, len(profiles))

	for _, p := range profiles {
		ids = append(ids, p.ID())
	}

	slices.Sort(ids)

	return slices.Compact(ids), nil
}

// HasAnyProfile reports whether the POM declares at least one profile.
func (m *Manager) HasAnyProfile(facet project.MavenFacet) (bool, error) {
	model, err := facet.Model()
	if err != nil {
		return false, err
	}

	return len(model.Profiles()) > 0, nil
}

// Container returns the cataloged container whose profile id equals the
// normalized profileID.
func (m *Manager) Container(profileID string) (*container.Container, error) {
	normalized := Normalize(profileID)

	for _, c := range m.containers.Containers() {
		if c.ProfileID() == normalized {
			m.logger.Debug("resolved container", "profile", profileID, "container", c.ID)

			return &c, nil
		}
	}

	return nil, fmt.Errorf("%w for profile %s", ErrContainerNotFound, profileID)
}

// AddProfile adds the profile for c with the given dependencies. A profile
// already registered for c is replaced, keeping its id.
func (m *Manager) AddProfile(facet project.MavenFacet, c *container.Container, activateByDefault bool, deps ...pom.Coordinate) error {
	p, err := m.newProfile(c, "", activateByDefault)
	if err != nil {
		return err
	}

	for _, d := range deps {
		p.AddDependency(d)
	}

	return m.replaceProfile(facet, c, p)
}

// AddChameleonProfile adds the profile for c configured to launch the
// chameleon target mapped from version.
func (m *Manager) AddChameleonProfile(facet project.MavenFacet, c *container.Container, version string, activateByDefault bool) error {
	target, err := c.ChameleonTarget(version)
	if err != nil {
		return err
	}

	p, err := m.newProfile(c, target, activateByDefault)
	if err != nil {
		return err
	}

	return m.replaceProfile(facet, c, p)
}

// AddContainerConfiguration appends the plugin that installs c at version to
// c's profile. Containers downloaded from a URL use the wget goal; containers
// published as artifacts are unpacked with the dependency plugin. A container
// without download metadata gets an empty plugin entry.
func (m *Manager) AddContainerConfiguration(c *container.Container, facet project.MavenFacet, version string) error {
	model, err := facet.Model()
	if err != nil {
		return err
	}

	p := findProfile(model, c.ProfileID())
	if p == nil {
		p = findProfile(model, c.ID)
	}

	if p == nil {
		return fmt.Errorf("%w: container profile with id %s or %s not found", ErrProfileNotFound, c.ID, c.ProfileID())
	}

	plugin, err := m.installPlugin(c, version)
	if err != nil {
		return err
	}

	build := p.Build()
	if build == nil {
		build = pom.NewBuildBase()
	}

	build.AddPlugin(plugin)
	p.SetBuild(build)

	model.RemoveProfile(p)
	model.AddProfile(p)

	return facet.SetModel(model)
}

func (m *Manager) installPlugin(c *container.Container, version string) (*pom.Plugin, error) {
	switch {
	case c.Download.HasURL():
		cfg, err := m.fragments.DownloadConfiguration(c.Download.URL)
		if err != nil {
			return nil, fmt.Errorf("building download configuration: %w", err)
		}

		plugin := pom.NewPlugin(downloadPlugin)
		plugin.AddExecution(execution("wget", cfg))

		return plugin, nil

	case c.Download.HasArtifact():
		cfg, err := m.fragments.UnpackConfiguration(c.Download.GroupID, c.Download.ArtifactID, version)
		if err != nil {
			return nil, fmt.Errorf("building unpack configuration: %w", err)
		}

		plugin := pom.NewPlugin(unpackPlugin)
		plugin.AddExecution(execution("unpack", cfg))

		return plugin, nil

	default:
		m.logger.Warn("container declares no download; adding an empty plugin entry", "container", c.ID)

		return pom.NewPlugin(pom.Coordinate{}), nil
	}
}

func execution(goal string, cfg *etree.Element) pom.Execution {
	return pom.Execution{
		ID:            executionID,
		Phase:         executionPhase,
		Goals:         []string{goal},
		Configuration: cfg,
	}
}

// newProfile builds a detached profile for c whose surefire plugin launches
// c's profile, and the chameleon target when one is given.
func (m *Manager) newProfile(c *container.Container, chameleonTarget string, activateByDefault bool) (*pom.Profile, error) {
	p := pom.NewProfile(c.ProfileID())
	if activateByDefault {
		p.SetActiveByDefault(true)
	}

	cfg, err := m.fragments.SurefireConfiguration(c.ProfileID(), chameleonTarget)
	if err != nil {
		return nil, fmt.Errorf("building surefire configuration: %w", err)
	}

	coord := surefirePlugin
	coord.Version = m.surefireVersion

	surefire := pom.NewPlugin(coord)
	surefire.SetConfiguration(cfg)

	build := pom.NewBuildBase()
	build.AddPlugin(surefire)
	p.SetBuild(build)

	return p, nil
}

// replaceProfile inserts p, first removing any profile registered for c and
// carrying over its literal id.
func (m *Manager) replaceProfile(facet project.MavenFacet, c *container.Container, p *pom.Profile) error {
	model, err := facet.Model()
	if err != nil {
		return err
	}

	if existing := findProfile(model, c.ProfileID()); existing != nil {
		m.logger.Debug("replacing existing profile", "profile", existing.ID(), "container", c.ID)
		p.SetID(existing.ID())
		model.RemoveProfile(existing)
	}

	model.AddProfile(p)

	return facet.SetModel(model)
}

// findProfile returns the first profile whose normalized id equals id,
// ignoring case.
func findProfile(model *pom.Model, id string) *pom.Profile {
	for _, p := range model.Profiles() {
		if strings.EqualFold(id, Normalize(p.ID())) {
			return p
		}
	}

	return nil
}
