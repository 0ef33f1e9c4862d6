// Package container loads the catalog of Arquillian containers arq knows how
// to install, and describes each container's adapter, download, and
// configuration options.
package container

import (
	"errors"
	"fmt"

	"github.com/donaldgifford/arq/internal/pom"
)

// ProfilePrefix is prepended to a container id to form its default profile id.
const ProfilePrefix = "arquillian-"

// ErrNoChameleonTarget is returned when a chameleon version is requested for
// a container that declares no chameleon mapping.
var ErrNoChameleonTarget = errors.New("container has no chameleon target")

// Container is a test-runtime target Arquillian can deploy against.
type Container struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	ProfileRef string `yaml:"profile_id"`
	// GroupID and ArtifactID identify the container adapter.
	GroupID        string           `yaml:"group_id"`
	ArtifactID     string           `yaml:"artifact_id"`
	Version        string           `yaml:"version"`
	Type           string           `yaml:"type"`
	Download       Download         `yaml:"download"`
	Chameleon      *Chameleon       `yaml:"chameleon"`
	Dependencies   []pom.Coordinate `yaml:"dependencies"`
	Configurations []Configuration  `yaml:"configurations"`
}

// Download describes how to obtain the container distribution: either a URL
// or a Maven artifact.
type Download struct {
	URL        string `yaml:"url"`
	GroupID    string `yaml:"group_id"`
	ArtifactID string `yaml:"artifact_id"`
}

// HasURL reports whether the distribution is fetched from a URL.
func (d Download) HasURL() bool { return d.URL != "" }

// HasArtifact reports whether the distribution is a Maven artifact.
func (d Download) HasArtifact() bool { return d.GroupID != "" && d.ArtifactID != "" }

// Chameleon maps a runtime version to an Arquillian Chameleon target.
type Chameleon struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Configuration is a container configuration option. Options are equal when
// their names are.
type Configuration struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Default     *string `yaml:"default"`
	Description string  `yaml:"description"`
}

// Equal reports whether c and o name the same option.
func (c Configuration) Equal(o Configuration) bool { return c.Name == o.Name }

// ProfileID returns the Maven profile id for the container.
func (c *Container) ProfileID() string {
	if c.ProfileRef != "" {
		return c.ProfileRef
	}

	return ProfilePrefix + c.ID
}

// Adapter returns the container adapter dependency, or false when the catalog
// entry declares none.
func (c *Container) Adapter() (pom.Coordinate, bool) {
	if c.GroupID == "" || c.ArtifactID == "" {
		return pom.Coordinate{}, false
	}

	return pom.Coordinate{GroupID: c.GroupID, ArtifactID: c.ArtifactID, Version: c.Version, Scope: "test"}, true
}

// ChameleonTarget maps version to "name:version:type".
func (c *Container) ChameleonTarget(version string) (string, error) {
	if c.Chameleon == nil {
		return "", fmt.Errorf("%s: %w", c.ID, ErrNoChameleonTarget)
	}

	return c.Chameleon.Name + ":" + version + ":" + c.Chameleon.Type, nil
}

// Configuration looks up an option by name.
func (c *Container) Configuration(name string) (Configuration, bool) {
	for _, cfg := range c.Configurations {
		if cfg.Name == name {
			return cfg, true
		}
	}

	return Configuration{}, false
}
