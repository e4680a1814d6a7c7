package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jonmartinstorm/profilsnusern/internal/aggregator"
	"github.com/jonmartinstorm/profilsnusern/internal/contact"
	"github.com/jonmartinstorm/profilsnusern/internal/content"
	"github.com/jonmartinstorm/profilsnusern/internal/fetcher"
	"github.com/jonmartinstorm/profilsnusern/internal/web"
)

const shutdownTimeout = 10 * time.Second

var serveOrigins []string

func init() {
	serveCmd.Flags().StringSliceVar(&serveOrigins, "ws-origin", nil, "tillatte origin-mønstre for websocket")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start porteføljeserveren",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(os.Stdout)
		if err != nil {
			return err
		}
		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		agg := aggregator.New(fetcher.NewProfileFetcher(cfg))
		defer agg.Close()
		agg.Start(ctx, cfg.Username)

		gin.SetMode(gin.ReleaseMode)
		srv := web.NewServer(ctx, agg, contact.NewRelay(cfg.FormEndpoint), site, web.Options{
			FormEndpoint:   cfg.FormEndpoint,
			OriginPatterns: serveOrigins,
		})

		httpServer := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("Starter server", "port", cfg.Port, "username", cfg.Username)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		slog.Info("SIGTERM mottatt – stopper server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}
