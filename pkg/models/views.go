package models

// View models handed to the pug templates. Everything a template shows is
// computed here or in the handlers; templates only walk fields.

// Card is one video tile (dashboard grid, carousel, suggestion row).
type Card struct {
	Title      string
	URL        string
	VideoURL   string
	Thumbnail  string
	SpotLabel  string
	UploadDate string
	Duration   string
}

// CardFor builds the tile view of an entry.
func CardFor(e Entry) Card {
	return Card{
		Title:      e.Class.Title,
		URL:        e.URL(),
		VideoURL:   e.Class.VideoURL,
		Thumbnail:  e.Class.Thumbnail,
		SpotLabel:  SpotLabel(e.SpotKey),
		UploadDate: e.Class.UploadDate,
		Duration:   e.Class.Duration,
	}
}

// Landing is the data for the landing page.
type Landing struct {
	Featured []Card
	Latest   []Card
}

// SpotOption is one category chip on the dashboard filter bar.
type SpotOption struct {
	Key      string
	Name     string
	Selected bool
}

// WindowOption is one date-window choice on the dashboard filter bar.
type WindowOption struct {
	Value    string
	Label    string
	Selected bool
}

// DashboardSection is one spot heading with its visible cards.
type DashboardSection struct {
	Key   string
	Name  string
	Cards []Card
}

// Dashboard is the data for the catalog browser page.
type Dashboard struct {
	Spots    []SpotOption
	Windows  []WindowOption
	Query    string
	Sections []DashboardSection
	Empty    bool
}

// SyllabusItem is one class link in the detail-page sidebar.
type SyllabusItem struct {
	Title  string
	URL    string
	Active bool
}

// SyllabusSpot is one expandable spot group in the sidebar.
type SyllabusSpot struct {
	Key   string
	Name  string
	Open  bool
	Items []SyllabusItem
}

// ClassPage is the data for the class detail page.
type ClassPage struct {
	Class       Class
	SpotKey     string
	SpotName    string
	DateLabel   string
	Poster      string
	Syllabus    []SyllabusSpot
	Suggestions []Card
	HasExtras   bool
}
