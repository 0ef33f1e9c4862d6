// Package project locates a Maven project on disk and exposes its pom.xml
// and arquillian.xml as read-modify-write facets.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/donaldgifford/arq/internal/arqconfig"
	"github.com/donaldgifford/arq/internal/pom"
)

// ErrNotMavenProject is returned when a directory has no pom.xml.
var ErrNotMavenProject = errors.New("not a maven project")

// DescriptorPath is where the Arquillian descriptor lives, relative to the
// project directory.
var DescriptorPath = filepath.Join("src", "test", "resources", arqconfig.FileName)

// MavenFacet reads and persists a project's POM.
type MavenFacet interface {
	Model() (*pom.Model, error)
	SetModel(m *pom.Model) error
}

// ArquillianFacet reads and persists a project's Arquillian descriptor.
type ArquillianFacet interface {
	Config() (*arqconfig.Config, error)
	SetConfig(c *arqconfig.Config) error
}

// Project is a Maven project rooted at Dir.
type Project struct {
	Dir string
}

// Open returns the project at dir, which must contain a pom.xml.
func Open(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	info, err := os.Stat(filepath.Join(abs, pom.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no %s in %s", ErrNotMavenProject, pom.FileName, abs)
		}

		return nil, fmt.Errorf("checking %s: %w", abs, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotMavenProject, pom.FileName)
	}

	return &Project{Dir: abs}, nil
}

// PomPath returns the path of the project's pom.xml.
func (p *Project) PomPath() string {
	return filepath.Join(p.Dir, pom.FileName)
}

// DescriptorPath returns the path of the project's arquillian.xml.
func (p *Project) DescriptorPath() string {
	return filepath.Join(p.Dir, DescriptorPath)
}

// Model reads the POM from disk. Each call returns a fresh model.
func (p *Project) Model() (*pom.Model, error) {
	return pom.Load(p.PomPath())
}

// SetModel replaces the POM on disk with m.
func (p *Project) SetModel(m *pom.Model) error {
	return m.Save(p.PomPath())
}

// Config reads the Arquillian descriptor, or returns an empty one when the
// project has none yet.
func (p *Project) Config() (*arqconfig.Config, error) {
	c, err := arqconfig.Load(p.DescriptorPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return arqconfig.New(), nil
		}

		return nil, err
	}

	return c, nil
}

// SetConfig replaces the Arquillian descriptor on disk with c.
func (p *Project) SetConfig(c *arqconfig.Config) error {
	return c.Save(p.DescriptorPath())
}
