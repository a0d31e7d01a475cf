// Package cli implements the facadegen command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/facadegen/internal/config"
	"github.com/matzehuels/facadegen/pkg/buildinfo"
	"github.com/matzehuels/facadegen/pkg/cache"
	"github.com/matzehuels/facadegen/pkg/catalog"
	"github.com/matzehuels/facadegen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "facadegen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// catalogPath overrides Config.Catalog.Path when set by --catalog.
	catalogPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Facadegen resolves facade grammars into building blueprints",
		Long:         `Facadegen parses and validates the facade grammar, fits module groups to facade widths, stacks floors to a building height and builds per-side blueprints from building specs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "module/floor size catalog (TOML)")

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.stackCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.sanitizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	bc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(bc, c.newKeyer(), c.Logger)
	if c.Config.Cache.TTL > 0 {
		r.TTL = c.Config.Cache.TTL
	}
	return r, nil
}

// newKeyer scopes cache keys by the configured prefix. A nil keyer lets the
// runner use the default.
func (c *CLI) newKeyer() cache.Keyer {
	if c.Config.Cache.Prefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, c.Config.Cache.Prefix)
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		c.Logger.Debug("connecting to redis", "addr", c.Config.Cache.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisOptions{Addr: c.Config.Cache.RedisAddr})
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadCatalog loads the catalog named by --catalog or the config. It returns
// nil when neither names one.
func (c *CLI) loadCatalog() (*catalog.Catalog, error) {
	path := c.catalogPath
	if path == "" {
		path = c.Config.Catalog.Path
	}
	if path == "" {
		return nil, nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded catalog", "path", path, "modules", len(cat.Modules), "floors", len(cat.Floors))
	return cat, nil
}

// moduleWidth returns the configured uniform module width.
func (c *CLI) moduleWidth() int {
	if c.Config.Grammar.ModuleWidth > 0 {
		return c.Config.Grammar.ModuleWidth
	}
	return pipeline.DefaultModuleWidth
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the XDG
// standard (~/.cache/facadegen/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Input
// =============================================================================

// readInput reads the file named by args[0], or stdin when no file or "-"
// is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
