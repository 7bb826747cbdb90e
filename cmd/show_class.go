package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"azpoker/pkg/models"
	"azpoker/pkg/services"
)

// newShowClassCmd creates a new command for showing class details
func newShowClassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-class [spot] [id]",
		Short: "Show one class in full",
		Long:  `Show detailed information about a class identified by its spot key and id.`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := LoadConfig(); err != nil {
				log.Fatal().Err(err).Msg("failed to load configuration")
			}
			initCatalog()
			showClass(args[0], args[1])
		},
	}
}

// showClass displays details about a specific class
func showClass(spotKey, id string) {
	entry, err := services.Lookup(spotKey, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	c := entry.Class
	fmt.Printf("Class: %s\n", c.Title)
	fmt.Printf("Spot: %s\n", models.SpotName(entry.SpotKey))
	fmt.Printf("ID: %s\n", c.ID)
	fmt.Printf("Video: %s\n", c.VideoURL)
	if c.UploadDate != "" {
		fmt.Printf("Uploaded: %s\n", c.UploadDate)
	}
	if c.Duration != "" {
		fmt.Printf("Duration: %s\n", c.Duration)
	}
	fmt.Println("================")

	if len(c.KeyLines) > 0 {
		fmt.Println("Key lines:")
		for _, l := range c.KeyLines {
			fmt.Printf("  - %s: %s\n", l.Title, l.Content)
		}
	}
	if len(c.Hands) > 0 {
		fmt.Println("Hands:")
		for _, h := range c.Hands {
			fmt.Printf("  - %s: %s\n", h.Hand, h.Description)
		}
	}
	if len(c.Filters) > 0 {
		fmt.Println("Filters:")
		for _, f := range c.Filters {
			fmt.Printf("  - %s (%s): %s\n", f.Name, f.Tracker, f.DownloadLink)
		}
	}
	if len(c.Tables) > 0 {
		fmt.Println("Preflop tables:")
		for _, t := range c.Tables {
			fmt.Printf("  - %s: %s\n", t.Name, t.Link)
		}
	}
}
