package container

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	cacheMetaFile = ".arq-cache-meta"
	catalogsDir   = "catalogs"
)

// cacheMeta records where and when a cached catalog was fetched.
type cacheMeta struct {
	URL       string    `yaml:"url"`
	Ref       string    `yaml:"ref"`
	FetchedAt time.Time `yaml:"fetched_at"`
}

// Cache keeps fetched catalogs on disk, one directory per source URL.
type Cache struct {
	baseDir string
	maxAge  time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewCache creates a Cache rooted at baseDir. Entries older than maxAge are
// refetched; a zero maxAge keeps entries until the ref changes.
func NewCache(baseDir string, maxAge time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		baseDir: baseDir,
		maxAge:  maxAge,
		logger:  logger,
		now:     time.Now,
	}
}

// DefaultCacheDir returns the default cache directory, respecting XDG_CACHE_HOME.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "arq")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "arq")
	}

	return filepath.Join(home, ".cache", "arq")
}

// GetOrFetch returns the directory holding the cached catalog for url. When
// the entry is missing, stale, or was fetched for another ref, fetchFn is
// called to populate the directory.
func (c *Cache) GetOrFetch(url, ref string, fetchFn func(dest string) error) (string, error) {
	dir := c.dir(url)
	metaPath := filepath.Join(dir, cacheMetaFile)

	if meta, err := readCacheMeta(metaPath); err == nil {
		if c.fresh(meta, ref) {
			c.logger.Debug("catalog cache hit", "url", url, "ref", ref)

			return dir, nil
		}

		c.logger.Debug("catalog cache stale", "url", url, "cached_ref", meta.Ref, "requested_ref", ref, "fetched_at", meta.FetchedAt)
	}

	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("removing stale catalog cache %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating catalog cache %s: %w", dir, err)
	}

	c.logger.Debug("fetching catalog", "url", url, "ref", ref, "dest", dir)

	if err := fetchFn(dir); err != nil {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			c.logger.Warn("failed to clean up catalog cache on fetch failure", "err", removeErr)
		}

		return "", fmt.Errorf("fetching catalog %s: %w", url, err)
	}

	meta := &cacheMeta{URL: url, Ref: ref, FetchedAt: c.now().UTC()}
	if err := writeCacheMeta(metaPath, meta); err != nil {
		return "", fmt.Errorf("writing catalog cache metadata: %w", err)
	}

	return dir, nil
}

// Invalidate removes the cached catalog for url.
func (c *Cache) Invalidate(url string) error {
	if err := os.RemoveAll(c.dir(url)); err != nil {
		return fmt.Errorf("invalidating catalog cache for %s: %w", url, err)
	}

	c.logger.Debug("catalog cache invalidated", "url", url)

	return nil
}

// Clean removes every cached catalog and returns the number of bytes freed.
func (c *Cache) Clean() (int64, error) {
	dir := filepath.Join(c.baseDir, catalogsDir)

	size, err := dirSize(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}

		return 0, err
	}

	c.logger.Debug("removing catalog cache", "dir", dir, "size", size)

	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("removing %s: %w", dir, err)
	}

	return size, nil
}

func dirSize(path string) (int64, error) {
	var size int64

	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}

			size += info.Size()
		}

		return nil
	})

	return size, err
}

func (c *Cache) fresh(meta *cacheMeta, ref string) bool {
	if meta.Ref != ref {
		return false
	}

	return c.maxAge == 0 || c.now().Sub(meta.FetchedAt) < c.maxAge
}

func (c *Cache) dir(url string) string {
	hash := sha256.Sum256([]byte(url))

	return filepath.Join(c.baseDir, catalogsDir, hex.EncodeToString(hash[:8]))
}

func readCacheMeta(path string) (*cacheMeta, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var meta cacheMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func writeCacheMeta(path string, meta *cacheMeta) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
