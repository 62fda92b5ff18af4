package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/propbrief/internal/interface/httpapi"
)

const (
	shutdownTimeout = 5 * time.Second
	cleanupInterval = time.Minute
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve wizard sessions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = env.cfg.ListenAddr()
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			Info("listening on %s", ln.Addr())
			return serve(ctx, env, ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from setting.json listen_addr)")
	return cmd
}

// serve runs the HTTP API on ln until ctx is done, then shuts down gracefully.
// Every goroutine it starts has exited when it returns.
func serve(ctx context.Context, env *environment, ln net.Listener) error {
	registry := httpapi.NewRegistry(httpapi.DefaultMaxAge, httpapi.DefaultIdleTimeout)
	handler := httpapi.NewServer(registry, env.submitUseCase(), env.regions, componentLogger("http"))
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		registry.Run(runCtx, cleanupInterval)
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			Warn("shutdown: %v", err)
		}
		serveErr = <-errCh
	}

	cancel()
	wg.Wait()
	if errors.Is(serveErr, http.ErrServerClosed) {
		Info("server stopped")
		return nil
	}
	return serveErr
}
