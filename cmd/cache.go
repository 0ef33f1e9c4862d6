package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the arq cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clear cached container catalogs",
	Long:  `Remove remote container catalogs fetched into the cache directory.`,
	RunE:  runCacheClean,
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClean(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.CacheDir
	if dir == "" {
		dir = container.DefaultCacheDir()
	}

	freed, err := container.NewCache(dir, 0, slog.Default()).Clean()
	if err != nil {
		return fmt.Errorf("cleaning catalog cache: %w", err)
	}

	w := ui.NewWriter(noColor)

	if freed > 0 {
		w.Successf("Cleaned catalog cache (%s)", formatBytes(freed))
	} else {
		w.Successf("Catalog cache already clean")
	}

	return nil
}

func formatBytes(b int64) string {
	const (
		kb = 1024
		mb = kb * 1024
	)

	switch {
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
