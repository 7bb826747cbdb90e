package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"azpoker/pkg/handlers"
	"azpoker/pkg/server"
	"azpoker/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the landing page, dashboard and class pages via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load configuration")
			}
			initCatalog()

			h := handlers.New(cfg, services.Default())
			router := server.New(cfg, h)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info().Str("addr", cfg.ServerAddress()).Msgf("dashboard at http://localhost:%s/dashboard", cfg.Port)
			if err := server.StartHTTP(ctx, cfg.ServerAddress(), router); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("server error")
			}
			log.Info().Msg("server stopped")
		},
	}
}
