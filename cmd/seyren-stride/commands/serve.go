package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"seyren-stride/infrastructure/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(provider ContainerProvider) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the notification endpoint over HTTP",
		Long: `Starts an HTTP server accepting check notifications on
POST /v1/notifications, with /healthz and /metrics alongside.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := provider()
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			if err := container.Config.ValidateCredentials(); err != nil {
				return fmt.Errorf("invalid stride credentials: %w", err)
			}
			if addr == "" {
				addr = container.Config.Server.Addr
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(container.NotifyCheckUseCase, container.Exporter.Handler(), container.Logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx := cmd.Context()
			errCh := make(chan error, 1)
			go func() {
				container.Logger.Info("Starting HTTP server", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if stderrors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("http server failed: %w", err)
			case <-ctx.Done():
			}

			container.Logger.Info("Shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down http server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, flagAddr, "", "Listen address (defaults to server.addr)")

	return cmd
}
