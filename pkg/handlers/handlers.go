package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"azpoker/pkg/config"
	"azpoker/pkg/models"
	"azpoker/pkg/services"
)

// Poster image shown on the class player before playback starts.
const videoPoster = "/static/img/logo.svg"

// timeNow is swapped out by tests that pin the date-window boundary.
var timeNow = time.Now

// Date-window choices shown on the dashboard, in display order.
var windowOptions = []struct{ Value, Label string }{
	{services.WindowAll, "Todas las fechas"},
	{services.Window7d, "Últimos 7 días"},
	{services.Window1m, "Último mes"},
	{services.Window3m, "Últimos 3 meses"},
	{services.Window1y, "Último año"},
}

// Handler renders the site pages over the catalog service.
type Handler struct {
	cfg *config.Config
	svc *services.Service
}

// New creates a page handler.
func New(cfg *config.Config, svc *services.Service) *Handler {
	return &Handler{cfg: cfg, svc: svc}
}

// render compiles a pug view and executes it with data. The views dir is
// the compiler's filesystem root so absolute and relative VIEWS_DIR values
// both work. Template failures are server defects: they log and return a
// 500, never a blank page.
func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	template, err := pug.CompileFile(name+".pug", pug.Options{Dir: compiler.FsDir(h.cfg.ViewsDir)})
	if err != nil {
		log.Error().Err(err).Str("view", name).Msg("template compile failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := template.Execute(w, data); err != nil {
		log.Error().Err(err).Str("view", name).Msg("template execution failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Landing handles the marketing front page.
func (h *Handler) Landing(w http.ResponseWriter, _ *http.Request) {
	data := models.Landing{
		Featured: cards(h.svc.Featured()),
		Latest:   cards(h.svc.Latest(4)),
	}
	h.render(w, "index", data)
}

// Dashboard handles the catalog browser. The filter controls round-trip
// through query parameters: spot (repeatable), window, q.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	window := q.Get("window")
	if window == "" {
		window = services.WindowAll
	}
	search := q.Get("q")

	selected := make(map[string]bool)
	for _, key := range q["spot"] {
		selected[key] = true
	}

	entries := h.svc.Entries()
	entries = services.FilterBySpots(selected, entries)
	entries = services.FilterByTitle(search, entries)
	entries = services.FilterByWindow(window, timeNow(), entries)
	entries = services.SortByDateDesc(entries)

	data := models.Dashboard{
		Query: search,
	}
	for _, opt := range windowOptions {
		data.Windows = append(data.Windows, models.WindowOption{
			Value:    opt.Value,
			Label:    opt.Label,
			Selected: opt.Value == window,
		})
	}
	for _, sp := range h.svc.Spots() {
		data.Spots = append(data.Spots, models.SpotOption{
			Key:      sp.Key,
			Name:     models.SpotName(sp.Key),
			Selected: selected[sp.Key],
		})
		section := models.DashboardSection{Key: sp.Key, Name: models.SpotName(sp.Key)}
		for _, e := range entries {
			if e.SpotKey == sp.Key {
				section.Cards = append(section.Cards, models.CardFor(e))
			}
		}
		if len(section.Cards) > 0 {
			data.Sections = append(data.Sections, section)
		}
	}
	data.Empty = len(data.Sections) == 0

	h.render(w, "dashboard", data)
}

// ClassDetails handles the detail page for one class. An unknown spot or
// id is never rendered as an error: it redirects to the dashboard.
func (h *Handler) ClassDetails(w http.ResponseWriter, r *http.Request) {
	spotKey := chi.URLParam(r, "spot")
	id := chi.URLParam(r, "id")

	entry, err := h.svc.Lookup(spotKey, id)
	if err != nil {
		if errors.Is(err, services.ErrClassNotFound) {
			log.Info().Str("spot", spotKey).Str("id", id).Msg("class not found, redirecting")
		} else {
			log.Error().Err(err).Msg("class lookup failed")
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := models.ClassPage{
		Class:       entry.Class,
		SpotKey:     entry.SpotKey,
		SpotName:    models.SpotName(entry.SpotKey),
		DateLabel:   entry.Class.UploadDate,
		Poster:      videoPoster,
		Suggestions: cards(h.svc.Suggestions(spotKey, id, h.cfg.SuggestionCount)),
		HasExtras:   len(entry.Class.Filters) > 0 || len(entry.Class.Tables) > 0,
	}
	if data.DateLabel == "" {
		data.DateLabel = "Sin fecha"
	}
	for _, sp := range h.svc.Spots() {
		group := models.SyllabusSpot{
			Key:  sp.Key,
			Name: models.SpotName(sp.Key),
			Open: sp.Key == entry.SpotKey,
		}
		for _, c := range sp.Classes {
			item := models.Entry{SpotKey: sp.Key, Class: c}
			group.Items = append(group.Items, models.SyllabusItem{
				Title:  c.Title,
				URL:    item.URL(),
				Active: sp.Key == entry.SpotKey && c.ID == entry.Class.ID,
			})
		}
		data.Syllabus = append(data.Syllabus, group)
	}

	h.render(w, "class", data)
}

// Profile handles the static profile page.
func (h *Handler) Profile(w http.ResponseWriter, _ *http.Request) {
	h.render(w, "profile", nil)
}

// Feed handles the JSON catalog feed.
func (h *Handler) Feed(w http.ResponseWriter, _ *http.Request) {
	data, err := h.svc.FeedJSON()
	if err != nil {
		log.Error().Err(err).Msg("feed serialization failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.Debug().Err(err).Msg("feed write failed")
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func cards(entries []models.Entry) []models.Card {
	out := make([]models.Card, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.CardFor(e))
	}
	return out
}
