package list

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/project"
)

// ProfilesOpts configures the profiles listing.
type ProfilesOpts struct {
	Manager      *profile.Manager
	Maven        project.MavenFacet
	OutputFormat string
	Writer       io.Writer
}

// ProfileInfo is a POM profile and the container it selects, if any.
type ProfileInfo struct {
	ID        string `json:"id"`
	Container string `json:"container,omitempty"`
}

// Profiles lists the project's profiles in ascending id order.
func Profiles(opts *ProfilesOpts) error {
	ids, err := opts.Manager.ProfileIDs(opts.Maven)
	if err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}

	infos := make([]ProfileInfo, 0, len(ids))

	for _, id := range ids {
		info := ProfileInfo{ID: id}

		c, err := opts.Manager.Container(id)

		switch {
		case err == nil:
			info.Container = c.ID
		case !errors.Is(err, profile.ErrContainerNotFound):
			return err
		}

		infos = append(infos, info)
	}

	if opts.OutputFormat == "json" {
		return renderJSON(opts.Writer, infos)
	}

	tw := tabwriter.NewWriter(opts.Writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "PROFILE\tCONTAINER"); err != nil {
		return err
	}

	for _, info := range infos {
		name := info.Container
		if name == "" {
			name = "-"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\n", info.ID, name); err != nil {
			return err
		}
	}

	return tw.Flush()
}
