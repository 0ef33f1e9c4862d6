// Package info displays detailed container information.
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/arq/internal/container"
)

// Opts configures the info command.
type Opts struct {
	// Container is the container to describe.
	Container *container.Container
	// Writer is the output destination.
	Writer io.Writer
	// OutputFormat is "text" or "json".
	OutputFormat string
}

// Run displays container information.
func Run(opts *Opts) error {
	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts.Writer, opts.Container)
	default:
		return renderText(opts.Writer, opts.Container)
	}
}

func renderText(w io.Writer, c *container.Container) error {
	if err := renderHeader(w, c); err != nil {
		return err
	}

	if len(c.Dependencies) > 0 {
		if _, err := fmt.Fprintln(w, "\nDependencies:"); err != nil {
			return err
		}

		for _, d := range c.Dependencies {
			if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
				return err
			}
		}
	}

	if len(c.Configurations) > 0 {
		if _, err := fmt.Fprintln(w, "\nConfiguration:"); err != nil {
			return err
		}

		if err := renderConfigurations(w, c.Configurations); err != nil {
			return err
		}
	}

	return nil
}

func renderHeader(w io.Writer, c *container.Container) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"ID", c.ID},
		{"Name", c.Name},
		{"Profile", c.ProfileID()},
		{"Type", c.Type},
	}

	if adapter, ok := c.Adapter(); ok {
		rows = append(rows, [2]string{"Adapter", adapter.String()})
	}

	switch {
	case c.Download.HasURL():
		rows = append(rows, [2]string{"Download", c.Download.URL})
	case c.Download.HasArtifact():
		rows = append(rows, [2]string{"Download", c.Download.GroupID + ":" + c.Download.ArtifactID})
	}

	if c.Chameleon != nil {
		rows = append(rows, [2]string{"Chameleon", c.Chameleon.Name + ":<version>:" + c.Chameleon.Type})
	}

	for _, r := range rows {
		if r[1] == "" {
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderConfigurations(w io.Writer, cfgs []container.Configuration) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "  NAME\tTYPE\tDEFAULT\tDESCRIPTION"); err != nil {
		return err
	}

	for _, c := range cfgs {
		def := "-"
		if c.Default != nil {
			def = *c.Default
		}

		if _, err := fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Name, c.Type, def, c.Description); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, c *container.Container) error {
	out := jsonOutput{
		ID:        c.ID,
		Name:      c.Name,
		ProfileID: c.ProfileID(),
		Type:      c.Type,
	}

	if adapter, ok := c.Adapter(); ok {
		out.Adapter = adapter.String()
	}

	for i := range c.Configurations {
		cfg := &c.Configurations[i]
		out.Configurations = append(out.Configurations, jsonConfiguration{
			Name:        cfg.Name,
			Type:        cfg.Type,
			Default:     cfg.Default,
			Description: cfg.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

type jsonOutput struct {
	ID             string              `json:"id"`
	Name           string              `json:"name,omitempty"`
	ProfileID      string              `json:"profile_id"`
	Type           string              `json:"type,omitempty"`
	Adapter        string              `json:"adapter,omitempty"`
	Configurations []jsonConfiguration `json:"configurations,omitempty"`
}

type jsonConfiguration struct {
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	Default     *string `json:"default,omitempty"`
	Description string  `json:"description,omitempty"`
}
