package container

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no catalog container matches a lookup.
var ErrNotFound = errors.New("container not found")

//go:embed data/containers.yaml
var defaultCatalog []byte

//go:embed data/schema.json
var catalogSchema string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(catalogSchema))
})

// Source supplies the installable containers.
type Source interface {
	Containers() []Container
}

// Catalog is an immutable, validated list of containers.
type Catalog struct {
	containers []Container
}

type catalogFile struct {
	Containers []Container `yaml:"containers"`
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("container: embedded catalog is invalid: %v", err))
	}

	return c
}

// NewCatalog builds a catalog from containers that are already in memory.
func NewCatalog(containers ...Container) *Catalog {
	return &Catalog{containers: append([]Container(nil), containers...)}
}

// Parse decodes a YAML or JSON catalog document and validates it against the
// catalog schema. Container ids must be unique.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Containers))
	for i := range file.Containers {
		id := file.Containers[i].ID
		if seen[id] {
			return nil, fmt.Errorf("catalog: duplicate container id %q", id)
		}

		seen[id] = true
	}

	return &Catalog{containers: file.Containers}, nil
}

func validate(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling catalog schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}

	return fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
}

// Containers returns a copy of the catalog's containers in declaration order.
func (c *Catalog) Containers() []Container {
	return append([]Container(nil), c.containers...)
}

// Find returns the container whose id or profile id equals ref.
func (c *Catalog) Find(ref string) (*Container, error) {
	for i := range c.containers {
		ct := &c.containers[i]
		if ct.ID == ref || ct.ProfileID() == ref {
			found := *ct

			return &found, nil
		}
	}

	ids := make([]string, 0, len(c.containers))
	for i := range c.containers {
		ids = append(ids, c.containers[i].ID)
	}

	sort.Strings(ids)

	return nil, fmt.Errorf("%w: %q; available containers: %s", ErrNotFound, ref, strings.Join(ids, ", "))
}
