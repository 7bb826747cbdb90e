package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"azpoker/pkg/config"
	"azpoker/pkg/handlers"
)

// New builds the site router. Routes declared here for easy scanning.
func New(cfg *config.Config, h *handlers.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID, withLogging)

	r.Get("/", h.Landing)
	r.Get("/dashboard", h.Dashboard)
	r.Get("/profile", h.Profile)
	r.Get("/class/{spot}/{id}", h.ClassDetails)
	r.Get("/feed", h.Feed)
	r.Get("/health", h.Health)

	fileServer := http.FileServer(http.Dir(cfg.PublicDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	return r
}
