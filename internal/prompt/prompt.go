// Package prompt resolves command inputs from flags, defaults, and
// interactive terminal prompts.
package prompt

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
)

// ErrRequired is returned when a required field resolves to an empty value.
var ErrRequired = errors.New("value is required")

// Choice is one selectable value of a Field.
type Choice struct {
	Label string
	Value string
}

// Field describes a single input. A Field with Choices is a dropdown,
// otherwise it is free text.
type Field struct {
	Name     string
	Title    string
	Choices  []Choice
	Default  string
	Required bool
}

// Prompter asks the user for a field's value.
type Prompter interface {
	Ask(f *Field) (string, error)
}

// Resolve resolves f through the override, default, and prompt chain. An
// empty override means the field was not given. With a nil prompter the
// default is used without asking.
func Resolve(f *Field, override string, p Prompter) (string, error) {
	if override != "" {
		if err := checkChoice(f, override); err != nil {
			return "", err
		}

		return override, nil
	}

	if p == nil {
		return resolveFromDefault(f)
	}

	raw, err := p.Ask(f)
	if err != nil {
		return "", fmt.Errorf("prompting for %s: %w", f.Name, err)
	}

	if raw == "" {
		return resolveFromDefault(f)
	}

	if err := checkChoice(f, raw); err != nil {
		return "", err
	}

	return raw, nil
}

func resolveFromDefault(f *Field) (string, error) {
	if f.Default == "" && f.Required {
		return "", fmt.Errorf("%s: %w", f.Name, ErrRequired)
	}

	return f.Default, nil
}

func checkChoice(f *Field, v string) error {
	if len(f.Choices) == 0 {
		return nil
	}

	if slices.ContainsFunc(f.Choices, func(c Choice) bool { return c.Value == v }) {
		return nil
	}

	values := make([]string, 0, len(f.Choices))
	for _, c := range f.Choices {
		values = append(values, c.Value)
	}

	return fmt.Errorf("invalid %s %q (choose from %v)", f.Name, v, values)
}

// Terminal prompts on the controlling terminal.
type Terminal struct{}

// Ask renders a select for fields with choices and a text input otherwise.
func (Terminal) Ask(f *Field) (string, error) {
	value := f.Default

	if len(f.Choices) > 0 {
		opts := make([]huh.Option[string], 0, len(f.Choices))
		for _, c := range f.Choices {
			opts = append(opts, huh.NewOption(c.Label, c.Value).Selected(c.Value == f.Default))
		}

		err := huh.NewSelect[string]().
			Title(f.Title).
			Options(opts...).
			Value(&value).
			Run()

		return value, err
	}

	input := huh.NewInput().
		Title(f.Title).
		Placeholder(f.Default).
		Value(&value)

	if f.Required {
		input = input.Validate(func(s string) error {
			if s == "" {
				return ErrRequired
			}

			return nil
		})
	}

	return value, input.Run()
}

// Scripted answers prompts from a fixed map keyed by field name. Fields
// without an answer get the empty string.
type Scripted struct {
	Answers map[string]string
	Asked   []string
}

// Ask records the field name and returns its scripted answer.
func (s *Scripted) Ask(f *Field) (string, error) {
	s.Asked = append(s.Asked, f.Name)

	return s.Answers[f.Name], nil
}
