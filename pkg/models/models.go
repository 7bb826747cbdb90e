package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the lexical form every upload date in the catalog uses.
const DateLayout = "2006-01-02"

// Tracker names the tracking software a downloadable filter targets.
type Tracker string

const (
	TrackerHoldemManager Tracker = "Holdem Manager"
	TrackerPokerTracker  Tracker = "Poker Tracker"
	TrackerH2N           Tracker = "H2N"
)

// KeyLine is one teaching point shown alongside a class video.
type KeyLine struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Hand is an example card combination with commentary.
type Hand struct {
	Hand        string `json:"hand"`
	Description string `json:"description"`
}

// FilterFile is a downloadable tracker filter attached to a class.
type FilterFile struct {
	Name         string  `json:"name"`
	UploadDate   string  `json:"uploadDate"`
	Tracker      Tracker `json:"tracker"`
	DownloadLink string  `json:"downloadLink"`
}

// PreflopTable is a reference chart attached to a class.
type PreflopTable struct {
	Name       string `json:"name"`
	UploadDate string `json:"uploadDate"`
	Link       string `json:"link"`
}

// Class is one playable lesson. Thumbnail, UploadDate, Duration, Filters
// and Tables are optional; an empty Thumbnail means the UI previews the
// video itself instead of an image.
type Class struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	VideoURL   string         `json:"videoUrl"`
	Thumbnail  string         `json:"thumbnailUrl,omitempty"`
	UploadDate string         `json:"uploadDate,omitempty"`
	Duration   string         `json:"duration,omitempty"`
	KeyLines   []KeyLine      `json:"keyLines"`
	Hands      []Hand         `json:"hands"`
	Filters    []FilterFile   `json:"filters,omitempty"`
	Tables     []PreflopTable `json:"tables,omitempty"`
}

// ParsedUploadDate returns the upload date as a time.Time. The second
// return is false when the date is absent or does not parse; such records
// stay out of every date-based view.
func (c Class) ParsedUploadDate() (time.Time, bool) {
	if c.UploadDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, c.UploadDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Spot is a named grouping of classes. Catalog order is display order.
type Spot struct {
	Key     string  `json:"key"`
	Classes []Class `json:"classes"`
}

// Entry pairs a class with its owning spot. Class identity is scoped by
// (spot, id); an id alone is not unique across the catalog.
type Entry struct {
	SpotKey string `json:"spot"`
	Class   Class  `json:"class"`
}

// URL returns the detail-page path for the entry.
func (e Entry) URL() string {
	return fmt.Sprintf("/class/%s/%s", e.SpotKey, e.Class.ID)
}

// SpotName derives the display name for a spot key: "juego-preflop" -> "Juego Preflop".
func SpotName(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SpotLabel derives the short uppercase tag shown on cards: "btn-bb" -> "BTN BB".
func SpotLabel(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", " "))
}
