// Package server assembles the gin router and runs it until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github/itish2003/smartcity/web"
)

const shutdownTimeout = 5 * time.Second

// Run serves handler on addr until ctx is cancelled. When the renderer reads
// templates from disk, a watcher reloads them alongside the server.
func Run(ctx context.Context, addr string, handler http.Handler, renderer *web.Renderer) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if renderer != nil && renderer.Dir() != "" {
		eg.Go(func() error {
			return renderer.Watch(egctx)
		})
	}

	eg.Go(func() error {
		log.Printf("SERVER: Smart City Assistant listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Println("SERVER: Shutting down...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
