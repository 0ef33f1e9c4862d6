// Package getter wraps hashicorp/go-getter for fetching remote container catalogs.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	getter "github.com/hashicorp/go-getter/v2"
)

// Getter fetches single files over git, HTTP, S3, and the other protocols
// go-getter supports.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with default configuration.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// FetchOpts configures a fetch operation.
type FetchOpts struct {
	// Ref is appended as ?ref= for git sources.
	Ref string

	// Checksum is appended as ?checksum=sha256: for verification.
	Checksum string

	// Pwd is the working directory for relative path detection.
	Pwd string
}

// FetchFile downloads the single file at src to dest, which is overwritten.
func (g *Getter) FetchFile(ctx context.Context, src, dest string, opts FetchOpts) error {
	fullSrc := SourceURL(src, opts)
	g.logger.Debug("fetching file", "src", fullSrc, "dest", dest)

	req := &getter.Request{
		Src:             fullSrc,
		Dst:             dest,
		Pwd:             opts.Pwd,
		GetMode:         getter.ModeFile,
		Copy:            true,
		DisableSymlinks: true,
	}

	if _, err := g.client.Get(ctx, req); err != nil {
		return fmt.Errorf("fetching file %s: %w", src, err)
	}

	return nil
}

// SourceURL adds the ref and checksum query parameters of opts to src.
func SourceURL(src string, opts FetchOpts) string {
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}

	result := src

	if opts.Ref != "" {
		result += sep + "ref=" + opts.Ref
		sep = "&"
	}

	if opts.Checksum != "" {
		result += sep + "checksum=sha256:" + opts.Checksum
	}

	return result
}
