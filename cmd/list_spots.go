package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"azpoker/pkg/models"
	"azpoker/pkg/services"
)

// newListSpotsCmd creates a new command for listing spots
func newListSpotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-spots",
		Short: "List all spots in the catalog",
		Long:  `List all spots with the number of classes in each, in display order.`,
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := LoadConfig(); err != nil {
				log.Fatal().Err(err).Msg("failed to load configuration")
			}
			initCatalog()
			listSpots()
		},
	}
}

// listSpots displays all spots and their class counts
func listSpots() {
	spots := services.Spots()

	fmt.Println("Spots:")
	fmt.Println("======")

	for _, spot := range spots {
		fmt.Printf("%s (%s)\n", models.SpotName(spot.Key), spot.Key)
		fmt.Printf("  Classes: %d\n", len(spot.Classes))
		fmt.Println()
	}

	fmt.Printf("Total: %d spots\n", len(spots))
}
