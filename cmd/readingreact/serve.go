package readingreact

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/ingest"
	"github.com/zmzlois/readingreact/layout"
	"github.com/zmzlois/readingreact/theme"
	"github.com/zmzlois/readingreact/watch"
	"github.com/zmzlois/readingreact/web"
	"github.com/zmzlois/readingreact/web/routes"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stored grids",
	Long: `Run the web interface over the grids stored by the import command.
In dev mode caching is disabled, and --watch-dir keeps the storage in sync with the documents on disk.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := theme.Load(viper.GetViper())
		if err != nil {
			return err
		}

		policy, err := grid.ParseOverflowPolicy(overflow)
		if err != nil {
			return err
		}

		storage, err := db.NewStorageFromPath(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if dev && watchDir != "" {
			monitor, err := watch.NewDirectoryMonitor(watchDir, pattern, 200*time.Millisecond)
			if err != nil {
				return err
			}

			events, err := monitor.Channel(ctx)
			if err != nil {
				return err
			}

			go ingest.Loop(ctx, events, storage, watchDir)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())

		handler := &routes.ServerHandler{
			Storage:       storage,
			Theme:         cfg,
			Overflow:      policy,
			DefaultLocale: defaultLocale,
			Env:           os.Getenv,
			Metrics:       routes.NewMetrics(reg),
		}

		slog.InfoContext(logCtx, "Serving grids", "storage", storagePath, "overflow", policy, "dev", dev)

		return web.StartServer(ctx, port, web.BuildServer(handler, reg, dev))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 3000,
		"Port on which server should be watching")

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./grids.sqlite",
		"Path to the sqlite file with imported grids")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	serveCmd.Flags().StringVar(&watchDir,
		"watch-dir",
		"",
		"In developer mode, re-import documents from this directory when they change")

	serveCmd.Flags().StringVar(&pattern,
		"pattern",
		layout.DefaultPattern,
		"Glob of document paths, relative to the watched directory")

	serveCmd.Flags().StringVar(&overflow,
		"overflow",
		string(grid.OverflowAllow),
		"What to do with cells outside of their grid: allow, clamp or reject")

	serveCmd.Flags().StringVar(&defaultLocale,
		"default-locale",
		"en",
		"Locale whose pages are served without a locale prefix")
}
