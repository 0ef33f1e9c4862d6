package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/donaldgifford/arq/internal/config"
	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/project"
)

// defaultCatalogMaxAge bounds how long a fetched remote catalog is reused
// when the config does not say otherwise.
const defaultCatalogMaxAge = 24 * time.Hour

func loadConfig() (*config.GlobalConfig, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	return config.LoadGlobalConfig(path)
}

func loadCatalog(ctx context.Context, cfg *config.GlobalConfig, refresh bool) (*container.Catalog, error) {
	src, err := cfg.FindCatalog(catalogRef)
	if err != nil {
		return nil, err
	}

	catalog, err := container.Load(ctx, &container.LoadOpts{
		Source:   src.URL,
		Ref:      src.Ref,
		CacheDir: cfg.CacheDir,
		MaxAge:   cfg.MaxAge(defaultCatalogMaxAge),
		Refresh:  refresh,
		Logger:   slog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("loading container catalog: %w", err)
	}

	return catalog, nil
}

func openProject() (*project.Project, error) {
	return project.Open(projectDir)
}

func newManager(cfg *config.GlobalConfig, catalog *container.Catalog) *profile.Manager {
	return profile.NewManager(&profile.Opts{
		Containers:      catalog,
		SurefireVersion: cfg.SurefireVersion,
		Logger:          slog.Default(),
	})
}

// workspace bundles what the project-editing commands need.
type workspace struct {
	cfg     *config.GlobalConfig
	catalog *container.Catalog
	project *project.Project
	manager *profile.Manager
}

func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	p, err := openProject()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, cfg, false)
	if err != nil {
		return nil, err
	}

	return &workspace{
		cfg:     cfg,
		catalog: catalog,
		project: p,
		manager: newManager(cfg, catalog),
	}, nil
}

// interactive reports whether stdin is a terminal.
func interactive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
