// Package arqconfig edits Arquillian descriptors (arquillian.xml).
package arqconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/google/renameio/v2"
)

// FileName is the Arquillian descriptor name.
const FileName = "arquillian.xml"

const (
	namespace      = "http://jboss.org/schema/arquillian"
	schemaLocation = "http://jboss.org/schema/arquillian http://jboss.org/schema/arquillian/arquillian_1_0.xsd"
)

// ErrNotArquillian is returned when a document's root is not <arquillian>.
var ErrNotArquillian = errors.New("root element is not <arquillian>")

// Config is an Arquillian descriptor. Container properties are keyed by the
// container qualifier, which arq sets to the container's profile id.
type Config struct {
	doc *etree.Document
}

// New returns an empty descriptor.
func New() *Config {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("arquillian")
	root.CreateAttr("xmlns", namespace)
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	root.CreateAttr("xsi:schemaLocation", schemaLocation)

	return &Config{doc: doc}
}

// Parse parses a descriptor.
func Parse(data []byte) (*Config, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing arquillian descriptor: %w", err)
	}

	if root := doc.Root(); root == nil || root.Tag != "arquillian" {
		return nil, ErrNotArquillian
	}

	return &Config{doc: doc}, nil
}

// Load reads the descriptor at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return c, nil
}

// Bytes serializes the descriptor.
func (c *Config) Bytes() ([]byte, error) {
	c.doc.Indent(4)

	data, err := c.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing arquillian descriptor: %w", err)
	}

	return data, nil
}

// Save writes the descriptor to path atomically, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	//nolint:gosec // arquillian.xml is a shared project file and must stay world-readable
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Containers returns the qualifiers of all declared containers, including
// those nested in groups, in document order.
func (c *Config) Containers() []string {
	var qualifiers []string

	for _, el := range c.containerElements() {
		qualifiers = append(qualifiers, el.SelectAttrValue("qualifier", ""))
	}

	return qualifiers
}

// AddContainerProperty sets property name of the container qualified by
// container to value, creating the container and its configuration as needed.
func (c *Config) AddContainerProperty(container, name, value string) {
	el := c.findContainer(container)
	if el == nil {
		el = c.doc.Root().CreateElement("container")
		el.CreateAttr("qualifier", container)
	}

	setProperty(ensureChild(el, "configuration"), name, value)
}

// ContainerProperty returns the value of a container property.
func (c *Config) ContainerProperty(container, name string) (string, bool) {
	el := c.findContainer(container)
	if el == nil {
		return "", false
	}

	cfg := el.SelectElement("configuration")
	if cfg == nil {
		return "", false
	}

	return property(cfg, name)
}

// AddExtensionProperty sets property name of the extension qualified by
// qualifier to value.
func (c *Config) AddExtensionProperty(qualifier, name, value string) {
	el := c.findExtension(qualifier)
	if el == nil {
		el = c.doc.Root().CreateElement("extension")
		el.CreateAttr("qualifier", qualifier)
	}

	setProperty(el, name, value)
}

// ExtensionProperty returns the value of an extension property.
func (c *Config) ExtensionProperty(qualifier, name string) (string, bool) {
	el := c.findExtension(qualifier)
	if el == nil {
		return "", false
	}

	return property(el, name)
}

func (c *Config) containerElements() []*etree.Element {
	root := c.doc.Root()
	elems := root.SelectElements("container")

	for _, group := range root.SelectElements("group") {
		elems = append(elems, group.SelectElements("container")...)
	}

	return elems
}

func (c *Config) findContainer(qualifier string) *etree.Element {
	for _, el := range c.containerElements() {
		if el.SelectAttrValue("qualifier", "") == qualifier {
			return el
		}
	}

	return nil
}

func (c *Config) findExtension(qualifier string) *etree.Element {
	for _, el := range c.doc.Root().SelectElements("extension") {
		if el.SelectAttrValue("qualifier", "") == qualifier {
			return el
		}
	}

	return nil
}

func ensureChild(el *etree.Element, tag string) *etree.Element {
	if child := el.SelectElement(tag); child != nil {
		return child
	}

	return el.CreateElement(tag)
}

func property(parent *etree.Element, name string) (string, bool) {
	for _, p := range parent.SelectElements("property") {
		if p.SelectAttrValue("name", "") == name {
			return p.Text(), true
		}
	}

	return "", false
}

func setProperty(parent *etree.Element, name, value string) {
	for _, p := range parent.SelectElements("property") {
		if p.SelectAttrValue("name", "") == name {
			p.SetText(value)

			return
		}
	}

	p := parent.CreateElement("property")
	p.CreateAttr("name", name)
	p.SetText(value)
}
