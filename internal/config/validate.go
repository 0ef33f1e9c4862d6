package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks a GlobalConfig for required fields and valid values.
func Validate(cfg *GlobalConfig) error {
	seen := make(map[string]bool, len(cfg.Catalogs))

	for i, c := range cfg.Catalogs {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("catalogs[%d]: name is required", i)
		}

		if strings.TrimSpace(c.URL) == "" {
			return fmt.Errorf("catalogs[%d] (%s): url is required", i, c.Name)
		}

		if seen[c.Name] {
			return fmt.Errorf("catalogs[%d]: duplicate name %q", i, c.Name)
		}

		seen[c.Name] = true
	}

	if cfg.DefaultCatalog != "" && !seen[cfg.DefaultCatalog] {
		return fmt.Errorf("default_catalog %q does not name a configured catalog", cfg.DefaultCatalog)
	}

	if cfg.CacheMaxAge != "" {
		d, err := time.ParseDuration(cfg.CacheMaxAge)
		if err != nil {
			return fmt.Errorf("invalid cache_max_age %q: %w", cfg.CacheMaxAge, err)
		}

		if d < 0 {
			return fmt.Errorf("cache_max_age %q must not be negative", cfg.CacheMaxAge)
		}
	}

	if strings.ContainsAny(cfg.SurefireVersion, " \t\n<>") {
		return fmt.Errorf("invalid surefire_version %q", cfg.SurefireVersion)
	}

	return nil
}

// MaxAge returns the parsed cache_max_age, or fallback when unset.
func (c *GlobalConfig) MaxAge(fallback time.Duration) time.Duration {
	if c.CacheMaxAge == "" {
		return fallback
	}

	d, err := time.ParseDuration(c.CacheMaxAge)
	if err != nil {
		return fallback
	}

	return d
}
