package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"azpoker/pkg/catalog"
	"azpoker/pkg/config"
	"azpoker/pkg/handlers"
	"azpoker/pkg/models"
	"azpoker/pkg/services"
)

func testRouter() http.Handler {
	cfg := &config.Config{
		Port:            "8080",
		Env:             "test",
		ViewsDir:        "../../views",
		PublicDir:       "../../public",
		SuggestionCount: 4,
	}
	svc := services.NewService(catalog.Spots, catalog.FeaturedSpots)
	return New(cfg, handlers.New(cfg, svc))
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, testRouter(), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Fatalf("body %q", got)
	}
}

func TestPagesRender(t *testing.T) {
	router := testRouter()
	for _, path := range []string{
		"/",
		"/dashboard",
		"/profile",
		"/class/btn-bb/885996089",
	} {
		rec := get(t, router, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: content type %q", path, ct)
		}
	}
}

func TestClassPage(t *testing.T) {
	rec := get(t, testRouter(), "/class/btn-bb/885996089")
	body := rec.Body.String()
	for _, want := range []string{
		"Defensa de BB vs BTN Open",
		"class-video",
		"Líneas Clave",
		"Manos de Ejemplo",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("class page missing %q", want)
		}
	}
}

func TestClassPage_SharedIDResolvesPerSpot(t *testing.T) {
	router := testRouter()

	rec := get(t, router, "/class/btn-bb/76979871")
	if !strings.Contains(rec.Body.String(), "Estrategia de 3-Bet desde la Ciega Grande") {
		t.Fatal("btn-bb/76979871 resolved to the wrong class")
	}
	rec = get(t, router, "/class/juego-postflop/76979871")
	if !strings.Contains(rec.Body.String(), "Estrategias de Check-Raise") {
		t.Fatal("juego-postflop/76979871 resolved to the wrong class")
	}
}

func TestUnknownClassRedirects(t *testing.T) {
	router := testRouter()
	for _, path := range []string{
		"/class/btn-bb/does-not-exist",
		"/class/no-such-spot/885996089",
	} {
		rec := get(t, router, path)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/dashboard" {
			t.Fatalf("%s: location %q", path, loc)
		}
	}
}

func TestFeed(t *testing.T) {
	rec := get(t, testRouter(), "/feed")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
	var spots []models.Spot
	if err := json.NewDecoder(rec.Body).Decode(&spots); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(spots) != 4 {
		t.Fatalf("want 4 spots, got %d", len(spots))
	}
}

func TestStaticAssets(t *testing.T) {
	router := testRouter()
	for _, path := range []string{
		"/static/css/site.css",
		"/static/js/player.js",
		"/static/img/logo.svg",
	} {
		rec := get(t, router, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := get(t, testRouter(), "/health")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("response missing X-Request-Id")
	}
}
