package container

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/donaldgifford/arq/internal/getter"
)

const cachedCatalogFile = "containers.yaml"

// Fetcher downloads a single remote file.
type Fetcher interface {
	FetchFile(ctx context.Context, src, dest string, opts getter.FetchOpts) error
}

// LoadOpts configures where a catalog is loaded from.
type LoadOpts struct {
	// Source is a local file path or a go-getter URL. Empty selects the
	// embedded catalog.
	Source string
	// Ref pins git sources.
	Ref string
	// CacheDir holds fetched remote catalogs. Defaults to DefaultCacheDir.
	CacheDir string
	// MaxAge bounds how long a fetched catalog is reused.
	MaxAge time.Duration
	// Refresh drops any cached copy before loading.
	Refresh bool
	// Fetcher overrides the go-getter based fetcher.
	Fetcher Fetcher
	// Logger for debug output.
	Logger *slog.Logger
}

// Load returns the catalog described by opts.
func Load(ctx context.Context, opts *LoadOpts) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.Source == "" {
		logger.Debug("using embedded container catalog")

		return Default(), nil
	}

	if isLocal(opts.Source) {
		return loadFile(opts.Source)
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = DefaultCacheDir()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = getter.New(logger)
	}

	cache := NewCache(cacheDir, opts.MaxAge, logger)

	if opts.Refresh {
		if err := cache.Invalidate(opts.Source); err != nil {
			return nil, err
		}
	}

	dir, err := cache.GetOrFetch(opts.Source, opts.Ref, func(dest string) error {
		return fetcher.FetchFile(ctx, opts.Source, filepath.Join(dest, cachedCatalogFile), getter.FetchOpts{Ref: opts.Ref})
	})
	if err != nil {
		return nil, err
	}

	return loadFile(filepath.Join(dir, cachedCatalogFile))
}

func loadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}

	return c, nil
}

// isLocal reports whether source names a file on disk rather than a
// go-getter URL.
func isLocal(source string) bool {
	if strings.Contains(source, "::") || strings.Contains(source, "://") {
		return false
	}

	if _, err := os.Stat(source); err == nil {
		return true
	}

	return filepath.IsAbs(source) || strings.HasPrefix(source, ".")
}
