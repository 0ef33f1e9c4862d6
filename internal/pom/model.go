// Package pom reads and edits Maven project object models (pom.xml) in place.
//
// The model is a thin view over the XML document: elements the package does
// not know about are preserved verbatim when the model is written back, and
// only inserted elements are re-indented.
package pom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/google/renameio/v2"
)

// FileName is the conventional name of a Maven project descriptor.
const FileName = "pom.xml"

// ErrNotAProject is returned when a document's root element is not <project>.
var ErrNotAProject = errors.New("root element is not <project>")

// Model is a Maven project object model backed by its XML document.
type Model struct {
	doc    *etree.Document
	indent string
}

// Parse parses a pom.xml document.
func Parse(data []byte) (*Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing pom: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "project" {
		return nil, ErrNotAProject
	}

	return &Model{doc: doc, indent: detectIndent(doc)}, nil
}

// Load reads and parses the pom.xml at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading pom %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading pom %s: %w", path, err)
	}

	return m, nil
}

// Bytes serializes the model.
func (m *Model) Bytes() ([]byte, error) {
	data, err := m.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing pom: %w", err)
	}

	return data, nil
}

// Save writes the model to path atomically, replacing any existing file.
func (m *Model) Save(path string) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}

	//nolint:gosec // pom.xml is a shared project file and must stay world-readable
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing pom %s: %w", path, err)
	}

	return nil
}

// Coordinate returns the project's own coordinate. The groupId and version
// fall back to the parent's when not declared.
func (m *Model) Coordinate() Coordinate {
	root := m.doc.Root()
	c := Coordinate{
		GroupID:    childText(root, "groupId"),
		ArtifactID: childText(root, "artifactId"),
		Version:    childText(root, "version"),
		Type:       childText(root, "packaging"),
	}

	if parent := root.SelectElement("parent"); parent != nil {
		if c.GroupID == "" {
			c.GroupID = childText(parent, "groupId")
		}

		if c.Version == "" {
			c.Version = childText(parent, "version")
		}
	}

	return c
}

// Profiles returns the model's profiles in document order.
func (m *Model) Profiles() []*Profile {
	profiles := m.doc.Root().SelectElement("profiles")
	if profiles == nil {
		return nil
	}

	elems := profiles.SelectElements("profile")
	result := make([]*Profile, 0, len(elems))

	for _, el := range elems {
		result = append(result, &Profile{el: el})
	}

	return result
}

// FindProfile returns the profile whose id equals id exactly, or nil.
func (m *Model) FindProfile(id string) *Profile {
	for _, p := range m.Profiles() {
		if p.ID() == id {
			return p
		}
	}

	return nil
}

// AddProfile appends p to the model's profiles, creating the <profiles>
// section when missing.
func (m *Model) AddProfile(p *Profile) {
	root := m.doc.Root()

	profiles := root.SelectElement("profiles")
	if profiles == nil {
		profiles = root.CreateElement("profiles")
		profiles.AddChild(p.el)
		m.indentAttached(profiles)

		return
	}

	profiles.AddChild(p.el)
	m.indentAttached(p.el)
}

// RemoveProfile detaches p from the model. It reports whether p was present.
func (m *Model) RemoveProfile(p *Profile) bool {
	profiles := m.doc.Root().SelectElement("profiles")
	if profiles == nil || p == nil || p.el.Parent() != profiles {
		return false
	}

	detachIndented(p.el)

	return true
}

// Dependencies returns the project's top-level dependencies.
func (m *Model) Dependencies() []Coordinate {
	return readDependencies(m.doc.Root())
}

// AddDependency appends c to the project's top-level dependencies unless a
// dependency with the same groupId and artifactId already exists. It reports
// whether the dependency was added.
func (m *Model) AddDependency(c Coordinate) bool {
	for _, existing := range m.Dependencies() {
		if existing.Key() == c.Key() {
			return false
		}
	}

	root := m.doc.Root()
	if root.SelectElement("dependencies") == nil {
		appendDependency(root, c)
		m.indentAttached(root.SelectElement("dependencies"))

		return true
	}

	m.indentAttached(appendDependency(root, c))

	return true
}
