package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"azpoker/pkg/catalog"
	"azpoker/pkg/config"
	"azpoker/pkg/services"
)

// Configuration flags
var (
	portNumber string
	viewsDir   string
	publicDir  string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "azpoker",
		Short: "AZ Poker serves the class library and landing site",
		Long: `AZ Poker is the web front-end for the AZ Poker coaching community.
It serves the landing page, the class library dashboard and the class
detail pages over the catalog compiled into the binary, and offers a few
commands for inspecting that catalog from the terminal.`,
	}

	// Persistent flags override the matching environment variables
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&viewsDir, "views", "", "Set the VIEWS_DIR (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&publicDir, "public", "", "Set the PUBLIC_DIR (overrides environment variable)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListSpotsCmd())
	rootCmd.AddCommand(newShowClassCmd())
	rootCmd.AddCommand(newLatestCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	_ = godotenv.Load() // best-effort

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}
	if viewsDir != "" {
		os.Setenv("VIEWS_DIR", viewsDir)
	}
	if publicDir != "" {
		os.Setenv("PUBLIC_DIR", publicDir)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// initCatalog validates the authored content and brings up the catalog
// service. A validation failure is a content-authoring defect; nothing
// should run on top of a broken catalog.
func initCatalog() {
	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}
	services.InitService()
}
