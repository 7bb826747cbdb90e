package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"azpoker/pkg/services"
)

// newExportCmd creates a new command for exporting the catalog
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export the class catalog",
		Long:  `Export the full class catalog in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := LoadConfig(); err != nil {
				log.Fatal().Err(err).Msg("failed to load configuration")
			}
			initCatalog()

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			exportCatalog(format)
		},
	}
}

// exportCatalog prints the catalog in the specified format. Spots keep
// their display order; the export is deterministic as authored.
func exportCatalog(format string) {
	if format != "json" {
		fmt.Printf("Unsupported export format: %s\n", format)
		fmt.Println("Supported formats: json")
		os.Exit(1)
	}

	data, err := json.MarshalIndent(services.Spots(), "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
