package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sevenpixels/datawalk/internal/server"
	"github.com/sevenpixels/datawalk/pkg/cache"
	"github.com/sevenpixels/datawalk/pkg/config"
	"github.com/sevenpixels/datawalk/pkg/pipeline"
	"github.com/sevenpixels/datawalk/pkg/store"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath   string
		manifestPath string
		port         int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the datawalk HTTP API",
		Long: `Run the datawalk HTTP API.

On startup the server converts every source in the manifest it can
satisfy locally (generated math sources always, file sources when their
data file exists under the data directory) and seeds the walk store.

Endpoints are served under /api, with /metrics and /healthz alongside.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, manifestPath, port)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "datawalk.toml", "settings file (TOML)")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "source manifest (YAML); built-in math sources if unset")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides settings)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, manifestPath string, port int) error {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if port != 0 {
		settings.Port = port
	}

	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipelineCache, err := serveCache(ctx, settings)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := serveStore(ctx, settings)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	server.RegisterMetrics()

	runner := pipeline.NewRunner(pipelineCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, st, manifest, settings, c.Logger)
	if err := srv.Seed(ctx); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	return srv.Run(ctx)
}

// serveCache builds the cache backend selected in settings.
func serveCache(ctx context.Context, settings config.Settings) (cache.Cache, error) {
	switch settings.Cache.Backend {
	case config.CacheBackendNone:
		return cache.NewNullCache(), nil
	case config.CacheBackendRedis:
		return cache.NewRedisCache(ctx, settings.Cache.RedisAddr)
	case config.CacheBackendFile:
		dir := settings.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	}
	return nil, fmt.Errorf("unknown cache backend %q", settings.Cache.Backend)
}

// serveStore builds the store backend selected in settings.
func serveStore(ctx context.Context, settings config.Settings) (store.Store, error) {
	switch settings.Store.Backend {
	case config.StoreBackendMemory:
		return store.NewMemoryStore(), nil
	case config.StoreBackendMongo:
		return store.NewMongoStore(ctx, settings.Store.MongoURI, settings.Store.Database)
	}
	return nil, fmt.Errorf("unknown store backend %q", settings.Store.Backend)
}
