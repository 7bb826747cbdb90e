// Package catalog holds the course content. The catalog is authored here
// and compiled into the binary; nothing mutates it at runtime.
package catalog

import (
	"fmt"

	"azpoker/pkg/models"
)

// FeaturedSpots lists the hand-curated spots whose first class appears in
// the landing carousel. Every key must exist in Spots with at least one
// class; Validate enforces that before anything serves.
var FeaturedSpots = []string{
	"juego-recreacionales",
	"btn-bb",
	"juego-postflop",
}

// Find returns the spot for a key, in catalog order.
func Find(key string) (models.Spot, bool) {
	for _, s := range Spots {
		if s.Key == key {
			return s, true
		}
	}
	return models.Spot{}, false
}

// Validate checks the authored catalog. It runs once at startup; a failure
// here is a content-authoring defect, not a runtime condition. Upload dates
// are deliberately not validated: a record with a missing or malformed date
// still renders, it just stays out of date-based views.
func Validate() error {
	return validate(Spots, FeaturedSpots)
}

func validate(spots []models.Spot, featured []string) error {
	seenSpots := make(map[string]bool, len(spots))
	for _, s := range spots {
		if s.Key == "" {
			return fmt.Errorf("catalog: spot with empty key")
		}
		if seenSpots[s.Key] {
			return fmt.Errorf("catalog: duplicate spot %q", s.Key)
		}
		seenSpots[s.Key] = true

		// ids must be unique within their spot; across spots duplicates
		// are tolerated because identity is the (spot, id) pair.
		seenIDs := make(map[string]bool, len(s.Classes))
		for _, c := range s.Classes {
			if c.ID == "" || c.Title == "" || c.VideoURL == "" {
				return fmt.Errorf("catalog: spot %q has a class missing id, title or video url", s.Key)
			}
			if seenIDs[c.ID] {
				return fmt.Errorf("catalog: spot %q has duplicate class id %q", s.Key, c.ID)
			}
			seenIDs[c.ID] = true
		}
	}

	for _, key := range featured {
		s, ok := models.Spot{}, false
		for _, sp := range spots {
			if sp.Key == key {
				s, ok = sp, true
				break
			}
		}
		if !ok {
			return fmt.Errorf("catalog: featured spot %q does not exist", key)
		}
		if len(s.Classes) == 0 {
			return fmt.Errorf("catalog: featured spot %q has no classes", key)
		}
	}
	return nil
}
