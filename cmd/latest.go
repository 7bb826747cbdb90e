package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"azpoker/pkg/models"
	"azpoker/pkg/services"
)

// newLatestCmd creates a new command for listing the latest uploads
func newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest [n]",
		Short: "List the most recently uploaded classes",
		Long:  `List the n most recently uploaded classes across all spots, most recent first. Classes without an upload date are skipped.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := LoadConfig(); err != nil {
				log.Fatal().Err(err).Msg("failed to load configuration")
			}
			initCatalog()

			n := 5
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 0 {
					log.Fatal().Str("arg", args[0]).Msg("n must be a non-negative integer")
				}
				n = parsed
			}
			listLatest(n)
		},
	}
}

// listLatest displays the latest n classes
func listLatest(n int) {
	for _, entry := range services.Latest(n) {
		fmt.Printf("%s  %-20s  %s\n", entry.Class.UploadDate, models.SpotLabel(entry.SpotKey), entry.Class.Title)
	}
}
