package demo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-formgen/pkg/renderers/vanilla"
)

// Die Beispiel-Seiten verlinken Stylesheet und Browser-Runtime des Frameworks.
// Der Mux muss beides aus den eingebetteten Assets bedienen können.
func TestNeuerMuxBedientFrameworkAssets(t *testing.T) {
	mux := NeuerMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/assets/"+vanilla.StylesheetName, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /assets/%s: status %d", vanilla.StylesheetName, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("stylesheet ist leer")
	}
}

func TestNeuerMuxHealthz(t *testing.T) {
	mux := NeuerMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz: status %d", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Errorf("body = %q, want %q", got, "ok")
	}
}
