package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/api"
	"github.com/MilosMiki/GPGSL-boosts/internal/config"
)

func serveCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  `Serve the lineup API for the web frontend: login, lineup, title fixes and the boost announcement.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client := newForumClient()
			handler := api.NewHandler(store, client, client)
			server := api.NewServer(handler, config.ServerCORSOrigins())

			if listenAddr == "" {
				listenAddr = config.ServerListenAddr()
			}

			errChan := make(chan error, 1)
			go func() {
				errChan <- server.Start(listenAddr)
			}()
			slog.Info("serving API", "addr", listenAddr)

			select {
			case err := <-errChan:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default from config)")

	return cmd
}
