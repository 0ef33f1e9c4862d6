// Package configure sets container configuration properties in a project's
// arquillian.xml.
package configure

import (
	"errors"
	"fmt"
	"slices"

	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/project"
)

var (
	// ErrNoContainer is returned when executing before a container is chosen.
	ErrNoContainer = errors.New("no container selected")
	// ErrNoOption is returned when executing before an option is chosen.
	ErrNoOption = errors.New("no configuration option selected")
	// ErrValueRequired is returned when the value field is required and empty.
	ErrValueRequired = errors.New("configuration value is required")
)

// Resolver maps a profile id to its cataloged container.
type Resolver interface {
	Container(profileID string) (*container.Container, error)
}

// Form holds the three configure inputs. Each field's choices, default,
// enablement, and requiredness are plain functions of the current values and
// are re-evaluated on every call.
type Form struct {
	resolver Resolver
	profiles []string

	container string
	selected  *container.Container
	option    *container.Configuration
	value     string
}

// NewForm creates a form offering profiles, which must be sorted.
func NewForm(profiles []string, r Resolver) *Form {
	return &Form{resolver: r, profiles: profiles}
}

// ContainerChoices returns the selectable profile ids.
func (f *Form) ContainerChoices() []string {
	return f.profiles
}

// ContainerDefault returns the first profile id, if any.
func (f *Form) ContainerDefault() (string, bool) {
	if len(f.profiles) == 0 {
		return "", false
	}

	return f.profiles[0], true
}

// SetContainer selects the container profile, clearing the option and value.
func (f *Form) SetContainer(profileID string) error {
	if !slices.Contains(f.profiles, profileID) {
		return fmt.Errorf("profile %s not found in pom.xml", profileID)
	}

	c, err := f.resolver.Container(profileID)
	if err != nil {
		return err
	}

	f.container = profileID
	f.selected = c
	f.option = nil
	f.value = ""

	return nil
}

// Container returns the selected profile id.
func (f *Form) Container() string {
	return f.container
}

// OptionEnabled reports whether a container has been chosen.
func (f *Form) OptionEnabled() bool {
	return f.selected != nil
}

// OptionChoices returns the chosen container's configuration options, or
// none while the field is disabled.
func (f *Form) OptionChoices() []container.Configuration {
	if !f.OptionEnabled() {
		return nil
	}

	return f.selected.Configurations
}

// SetOption selects a configuration option by name, clearing the value.
func (f *Form) SetOption(name string) error {
	if !f.OptionEnabled() {
		return ErrNoContainer
	}

	opt, ok := f.selected.Configuration(name)
	if !ok {
		return fmt.Errorf("container %s has no configuration option %s", f.selected.ID, name)
	}

	f.option = &opt
	f.value = ""

	return nil
}

// Option returns the selected option, or nil.
func (f *Form) Option() *container.Configuration {
	return f.option
}

// ValueEnabled reports whether an option has been chosen.
func (f *Form) ValueEnabled() bool {
	return f.option != nil
}

// ValueDefault returns the chosen option's declared default.
func (f *Form) ValueDefault() (string, bool) {
	if !f.ValueEnabled() || f.option.Default == nil {
		return "", false
	}

	return *f.option.Default, true
}

// ValueRequired reports whether a value must be entered. It is true unless
// the field is enabled and the option declares a default.
func (f *Form) ValueRequired() bool {
	_, ok := f.ValueDefault()

	return !ok
}

// SetValue sets the value field.
func (f *Form) SetValue(v string) {
	f.value = v
}

// Value returns the effective value, falling back to the option default.
func (f *Form) Value() string {
	if f.value != "" {
		return f.value
	}

	v, _ := f.ValueDefault()

	return v
}

// Execute upserts the selected container, option, and value into the
// project's Arquillian configuration and persists it.
func (f *Form) Execute(facet project.ArquillianFacet) error {
	if f.selected == nil {
		return ErrNoContainer
	}

	if f.option == nil {
		return ErrNoOption
	}

	value := f.Value()
	if value == "" && f.ValueRequired() {
		return fmt.Errorf("%s: %w", f.option.Name, ErrValueRequired)
	}

	cfg, err := facet.Config()
	if err != nil {
		return fmt.Errorf("reading arquillian config: %w", err)
	}

	cfg.AddContainerProperty(f.container, f.option.Name, value)

	if err := facet.SetConfig(cfg); err != nil {
		return fmt.Errorf("writing arquillian config: %w", err)
	}

	return nil
}
