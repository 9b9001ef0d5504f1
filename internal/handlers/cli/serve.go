package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/handlers/rest"
	"github.com/gabapcia/maxdelta/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// serveCommand runs the HTTP API until an interrupt or termination signal.
//
//	maxdelta serve --addr :3000
func serveCommand(svc balancechange.Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the max balance change API over HTTP.",
		Usage:       "Starts the HTTP server. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Address the HTTP server listens on",
				Value:   ":3000",
				Sources: cli.EnvVars("HTTP_ADDR"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			listener, err := net.Listen("tcp", c.String("addr"))
			if err != nil {
				return err
			}

			return serve(ctx, listener, rest.NewRouter(svc))
		},
	}
}

// serve handles requests on listener until ctx is done, then drains the
// in-flight requests.
func serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		logger.Info(ctx, "http server listening", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
