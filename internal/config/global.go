// Package config loads the user's arq configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.yaml"

// GlobalConfig represents the user's arq configuration file.
type GlobalConfig struct {
	Catalogs          []CatalogConfig `yaml:"catalogs"`
	DefaultCatalog    string          `yaml:"default_catalog"`
	CacheDir          string          `yaml:"cache_dir"`
	CacheMaxAge       string          `yaml:"cache_max_age"`
	SurefireVersion   string          `yaml:"surefire_version"`
	ActivateByDefault bool            `yaml:"activate_by_default"`
}

// CatalogConfig identifies a named container catalog source. URL is a local
// path or any go-getter source.
type CatalogConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Ref  string `yaml:"ref"`
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arq")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "arq")
	}

	return filepath.Join(home, ".config", "arq")
}

// DefaultConfigPath returns the config file inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), FileName)
}

// LoadGlobalConfig reads and validates the global config from the given path.
// If the file doesn't exist, it returns a zero-value config (no error).
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return &cfg, nil
}

// FindCatalog resolves ref to a catalog source. A ref naming a configured
// catalog returns it, any other non-empty ref is used as the source itself.
// An empty ref selects the default catalog, then the first configured one.
// With nothing configured the zero value is returned, which selects the
// built-in catalog.
func (c *GlobalConfig) FindCatalog(ref string) (CatalogConfig, error) {
	if ref != "" {
		for i := range c.Catalogs {
			if c.Catalogs[i].Name == ref {
				return c.Catalogs[i], nil
			}
		}

		return CatalogConfig{URL: ref}, nil
	}

	if c.DefaultCatalog != "" {
		for i := range c.Catalogs {
			if c.Catalogs[i].Name == c.DefaultCatalog {
				return c.Catalogs[i], nil
			}
		}

		return CatalogConfig{}, fmt.Errorf("default catalog %q not found in config", c.DefaultCatalog)
	}

	if len(c.Catalogs) > 0 {
		return c.Catalogs[0], nil
	}

	return CatalogConfig{}, nil
}
