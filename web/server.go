package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zmzlois/readingreact/logging"
	"github.com/zmzlois/readingreact/web/routes"
)

//go:embed assets
var assets embed.FS

var logCtx = logging.PackageCtx("web")

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(handler *routes.ServerHandler, reg *prometheus.Registry, dev bool) *http.ServeMux {
	mux := http.NewServeMux()

	static, err := fs.Sub(assets, "assets")
	if err != nil {
		// the embedded directory always exists
		panic(err)
	}

	mux.Handle("GET /assets/",
		disableCacheInDevMode(dev,
			http.StripPrefix("/assets",
				http.FileServer(http.FS(static)))))

	if reg != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	mux.Handle("GET /grids/{name}", disableCacheInDevMode(dev, http.HandlerFunc(handler.GridHandle)))
	mux.Handle("GET /guides", disableCacheInDevMode(dev, http.HandlerFunc(handler.GuidesHandle)))
	mux.Handle("GET /{$}", disableCacheInDevMode(dev, http.HandlerFunc(handler.IndexHandle)))

	return mux
}

// StartServer serves until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, port int, mux *http.ServeMux) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.InfoContext(logCtx, "Running interface", "port", port)

		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
		slog.InfoContext(logCtx, "Shutting down interface")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not shut down server: %w", err)
		}

		return nil
	}
}
