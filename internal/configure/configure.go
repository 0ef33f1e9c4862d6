package configure

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/project"
	"github.com/donaldgifford/arq/internal/prompt"
)

// ErrNoProfiles is returned when the POM has no profile to configure.
var ErrNoProfiles = errors.New("no profiles in pom.xml")

// Opts configures the configure operation.
type Opts struct {
	// Manager lists profiles and resolves their containers.
	Manager *profile.Manager
	// Maven is the project's POM facet.
	Maven project.MavenFacet
	// Arquillian is the project's arquillian.xml facet.
	Arquillian project.ArquillianFacet
	// Container, Option, and Value pre-fill the form; empty means unset.
	Container string
	Option    string
	Value     string
	// Prompter asks for unset fields. Nil runs non-interactively.
	Prompter prompt.Prompter
	// Logger for debug output.
	Logger *slog.Logger
}

// Result describes the property that was written.
type Result struct {
	Container string
	Option    string
	Value     string
}

// Run fills the form in order, prompting for fields not given in opts, and
// executes it.
func Run(opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ids, err := opts.Manager.ProfileIDs(opts.Maven)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	form := NewForm(ids, opts.Manager)

	if err := fillContainer(form, opts); err != nil {
		return nil, err
	}

	logger.Debug("selected container", "profile", form.Container())

	if err := fillOption(form, opts); err != nil {
		return nil, err
	}

	if err := fillValue(form, opts); err != nil {
		return nil, err
	}

	if err := form.Execute(opts.Arquillian); err != nil {
		return nil, err
	}

	return &Result{
		Container: form.Container(),
		Option:    form.Option().Name,
		Value:     form.Value(),
	}, nil
}

func fillContainer(form *Form, opts *Opts) error {
	choices := form.ContainerChoices()
	if len(choices) == 0 {
		return ErrNoProfiles
	}

	def, _ := form.ContainerDefault()
	field := &prompt.Field{
		Name:     "container",
		Title:    "Container",
		Choices:  labeled(choices),
		Default:  def,
		Required: true,
	}

	v, err := prompt.Resolve(field, opts.Container, opts.Prompter)
	if err != nil {
		return err
	}

	return form.SetContainer(v)
}

func fillOption(form *Form, opts *Opts) error {
	options := form.OptionChoices()
	if len(options) == 0 {
		return fmt.Errorf("container for profile %s declares no configuration options", form.Container())
	}

	choices := make([]prompt.Choice, 0, len(options))
	for _, o := range options {
		choices = append(choices, prompt.Choice{Label: o.Name, Value: o.Name})
	}

	field := &prompt.Field{
		Name:     "option",
		Title:    "Container Configuration Option",
		Choices:  choices,
		Required: true,
	}

	v, err := prompt.Resolve(field, opts.Option, opts.Prompter)
	if err != nil {
		return err
	}

	return form.SetOption(v)
}

func fillValue(form *Form, opts *Opts) error {
	def, _ := form.ValueDefault()
	field := &prompt.Field{
		Name:     "value",
		Title:    "Container Configuration Value",
		Default:  def,
		Required: form.ValueRequired(),
	}

	if o := form.Option(); o != nil && o.Description != "" {
		field.Title += " (" + o.Description + ")"
	}

	v, err := prompt.Resolve(field, opts.Value, opts.Prompter)
	if err != nil {
		return err
	}

	form.SetValue(v)

	return nil
}

func labeled(values []string) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(values))
	for _, v := range values {
		choices = append(choices, prompt.Choice{Label: v, Value: v})
	}

	return choices
}
