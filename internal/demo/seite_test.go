package demo

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSeiteRendern(t *testing.T) {
	seite, err := NeueSeite("Hallo Formular", "Geben Sie Ihren **Namen** ein.")
	if err != nil {
		t.Fatalf("NeueSeite: %v", err)
	}

	html, err := seite.Rendern([]byte(`<form id="probe"></form>`), []Ergebnis{
		{Beschriftung: "Begrüßung", Wert: "Hallo, Anna!! 🙂"},
	})
	if err != nil {
		t.Fatalf("Rendern: %v", err)
	}

	ausgabe := string(html)
	for _, erwartet := range []string{
		"Hallo Formular",
		"<strong>Namen</strong>",
		`<form id="probe"></form>`,
		"Ergebnis",
		"Begrüßung",
		"Hallo, Anna!! 🙂",
	} {
		if !strings.Contains(ausgabe, erwartet) {
			t.Errorf("ausgabe enthält %q nicht:\n%s", erwartet, ausgabe)
		}
	}
}

func TestSeiteOhneErgebnisse(t *testing.T) {
	seite, err := NeueSeite("Hallo Formular", "")
	if err != nil {
		t.Fatalf("NeueSeite: %v", err)
	}

	html, err := seite.Rendern([]byte("<form></form>"), nil)
	if err != nil {
		t.Fatalf("Rendern: %v", err)
	}
	if strings.Contains(string(html), "Ergebnis") {
		t.Error("ohne Ergebnisse darf kein Ergebnisblock erscheinen")
	}
}

func TestSeiteBereinigtBeschreibung(t *testing.T) {
	seite, err := NeueSeite("Hallo Formular", "Harmlos <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("NeueSeite: %v", err)
	}

	html, err := seite.Rendern([]byte("<form></form>"), nil)
	if err != nil {
		t.Fatalf("Rendern: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Error("script-Tags müssen aus der Beschreibung entfernt werden")
	}
	if !strings.Contains(string(html), "Harmlos") {
		t.Error("harmloser Text muss erhalten bleiben")
	}
}

func TestSchreibenSetztContentType(t *testing.T) {
	seite, err := NeueSeite("Hallo Formular", "")
	if err != nil {
		t.Fatalf("NeueSeite: %v", err)
	}

	rec := httptest.NewRecorder()
	seite.Schreiben(rec, []byte("<form></form>"), nil)

	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "<form></form>") {
		t.Error("formular fehlt in der antwort")
	}
}
