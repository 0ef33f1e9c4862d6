// Package list implements the arq containers and profiles commands.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/arq/internal/container"
)

// Opts configures the containers listing.
type Opts struct {
	// Containers is the catalog to list.
	Containers container.Source
	// TypeFilter limits output to containers of this type (managed, remote...).
	TypeFilter string
	// OutputFormat is "table" or "json".
	OutputFormat string
	// Writer is the output destination.
	Writer io.Writer
}

// ContainerInfo represents a container in list output.
type ContainerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProfileID string `json:"profile_id"`
	Type      string `json:"type"`
	Version   string `json:"version,omitempty"`
	Download  string `json:"download,omitempty"`
	Chameleon bool   `json:"chameleon"`
}

// Run lists the cataloged containers.
func Run(opts *Opts) error {
	entries := filterByType(opts.Containers.Containers(), opts.TypeFilter)

	infos := make([]ContainerInfo, 0, len(entries))
	for i := range entries {
		infos = append(infos, toInfo(&entries[i]))
	}

	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts.Writer, infos)
	default:
		return renderTable(opts.Writer, infos)
	}
}

func filterByType(entries []container.Container, typ string) []container.Container {
	if typ == "" {
		return entries
	}

	var filtered []container.Container

	for i := range entries {
		if strings.EqualFold(entries[i].Type, typ) {
			filtered = append(filtered, entries[i])
		}
	}

	return filtered
}

func toInfo(c *container.Container) ContainerInfo {
	return ContainerInfo{
		ID:        c.ID,
		Name:      c.Name,
		ProfileID: c.ProfileID(),
		Type:      c.Type,
		Version:   c.Version,
		Download:  downloadKind(c),
		Chameleon: c.Chameleon != nil,
	}
}

func downloadKind(c *container.Container) string {
	switch {
	case c.Download.HasURL():
		return "url"
	case c.Download.HasArtifact():
		return "artifact"
	default:
		return ""
	}
}

func renderTable(w io.Writer, infos []ContainerInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ID\tPROFILE\tTYPE\tVERSION\tDOWNLOAD"); err != nil {
		return err
	}

	for i := range infos {
		c := &infos[i]

		download := c.Download
		if download == "" {
			download = "-"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.ProfileID, c.Type, c.Version, download); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
