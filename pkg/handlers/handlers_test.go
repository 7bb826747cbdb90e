package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"azpoker/pkg/catalog"
	"azpoker/pkg/config"
	"azpoker/pkg/services"
)

func testHandler() *Handler {
	cfg := &config.Config{
		Port:            "8080",
		Env:             "test",
		ViewsDir:        "../../views",
		PublicDir:       "../../public",
		SuggestionCount: 4,
	}
	return New(cfg, services.NewService(catalog.Spots, catalog.FeaturedSpots))
}

func TestLanding(t *testing.T) {
	h := testHandler()
	rec := httptest.NewRecorder()
	h.Landing(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"AZ Poker",
		"Selección de Mesas y Estrategia Deep", // first class of the first featured spot
		"Defensa de BB vs BTN Open",            // most recent upload
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("landing missing %q", want)
		}
	}
}

func TestDashboard_Unfiltered(t *testing.T) {
	h := testHandler()
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Juego Recreacionales",
		"Btn Bb",
		"Juego Preflop",
		"Juego Postflop",
		"Explotando Errores Comunes de Amateurs", // dateless classes still browseable
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
}

func TestDashboard_TitleSearch(t *testing.T) {
	h := testHandler()
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard?q=c-bet", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Introducción a la C-Bet") {
		t.Fatal("search should match case-insensitively")
	}
	if strings.Contains(body, "Rangos de Apertura Preflop") {
		t.Fatal("non-matching titles should be filtered out")
	}
}

func TestDashboard_WindowBoundary(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 7, 28, 15, 30, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	h := testHandler()
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard?window=7d", nil))

	body := rec.Body.String()
	// Uploaded exactly seven days before the pinned clock: still inside.
	if !strings.Contains(body, "Defensa de BB vs BTN Open") {
		t.Fatal("class on the window boundary should be included")
	}
	if strings.Contains(body, "Selección de Mesas y Estrategia Deep") {
		t.Fatal("older classes should be excluded")
	}
}

func TestRender_AbsoluteViewsDir(t *testing.T) {
	abs, err := filepath.Abs("../../views")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		Port:            "8080",
		Env:             "test",
		ViewsDir:        abs,
		PublicDir:       "../../public",
		SuggestionCount: 4,
	}
	h := New(cfg, services.NewService(catalog.Spots, catalog.FeaturedSpots))

	rec := httptest.NewRecorder()
	h.Profile(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("absolute views dir should render, status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDashboard_WindowSelectState(t *testing.T) {
	h := testHandler()

	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard?window=7d", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `value="7d" selected="selected"`) {
		t.Fatal("active window option should render selected")
	}
	if strings.Count(body, `selected="selected"`) != 1 {
		t.Fatal("exactly one window option should be selected")
	}

	rec = httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if !strings.Contains(rec.Body.String(), `value="all" selected="selected"`) {
		t.Fatal("default window should select the all option")
	}
}

func TestDashboard_NoMatches(t *testing.T) {
	h := testHandler()
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard?q=zzzzzz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No hay clases") {
		t.Fatal("empty result should show the empty note")
	}
}

func TestProfile(t *testing.T) {
	h := testHandler()
	rec := httptest.NewRecorder()
	h.Profile(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Zeta") {
		t.Fatal("profile page missing coach name")
	}
}
