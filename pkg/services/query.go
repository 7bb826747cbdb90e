package services

import (
	"sort"
	"strings"
	"time"

	"azpoker/pkg/models"
)

// Date windows accepted by the dashboard filter bar.
const (
	WindowAll = "all"
	Window7d  = "7d"
	Window1m  = "1m"
	Window3m  = "3m"
	Window1y  = "1y"
)

var windowDays = map[string]int{
	Window7d: 7,
	Window1m: 30,
	Window3m: 90,
	Window1y: 365,
}

// FilterBySpots keeps entries whose owning spot is selected. An empty
// selection means no restriction: that is the dashboard chip-toggle
// convention, not the empty set.
func FilterBySpots(selected map[string]bool, items []models.Entry) []models.Entry {
	if len(selected) == 0 {
		return items
	}
	out := make([]models.Entry, 0, len(items))
	for _, e := range items {
		if selected[e.SpotKey] {
			out = append(out, e)
		}
	}
	return out
}

// FilterByWindow keeps entries uploaded within the window, measured back
// from now with an inclusive boundary (exactly 7 days old passes "7d").
// "all" or an unknown window passes everything through; any other window
// drops entries without a parseable upload date.
func FilterByWindow(window string, now time.Time, items []models.Entry) []models.Entry {
	days, ok := windowDays[window]
	if !ok {
		return items
	}
	// Upload dates carry no time of day, so the cutoff is truncated to
	// midnight UTC to keep the boundary a whole-day comparison.
	cy, cm, cd := now.AddDate(0, 0, -days).Date()
	cutoff := time.Date(cy, cm, cd, 0, 0, 0, 0, time.UTC)
	out := make([]models.Entry, 0, len(items))
	for _, e := range items {
		d, ok := e.Class.ParsedUploadDate()
		if !ok {
			continue
		}
		if !d.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByTitle keeps entries whose title contains the query,
// case-insensitively. An empty query passes everything through.
func FilterByTitle(query string, items []models.Entry) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]models.Entry, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Class.Title), q) {
			out = append(out, e)
		}
	}
	return out
}

// SortByDateDesc returns a new slice sorted most recent first. The sort is
// stable: ties and entries without a date keep their catalog order, with
// dateless entries after dated ones.
func SortByDateDesc(items []models.Entry) []models.Entry {
	out := make([]models.Entry, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		di, iok := out[i].Class.ParsedUploadDate()
		dj, jok := out[j].Class.ParsedUploadDate()
		if iok && jok {
			return di.After(dj)
		}
		return iok && !jok
	})
	return out
}
