package demo

import (
	"embed"
	"fmt"
	"log"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"

	gotemplate "github.com/goliatone/go-formgen/pkg/render/template/gotemplate"
)

//go:embed templates/seite.tmpl
var seitenTemplates embed.FS

// Ergebnis ist ein Eintrag im Ausgabebereich der Seite: eine Beschriftung und
// der berechnete Wert, analog zu einem nicht editierbaren Ausgabefeld.
type Ergebnis struct {
	Beschriftung string
	Wert         string
}

// Seite ist der gemeinsame Seitenrahmen aller Web-Beispiele: Titel,
// Beschreibung (Markdown), das erzeugte Formular und darunter der
// Ergebnisbereich. Das Formular-HTML selbst stammt aus dem Framework; die
// Seite legt nur die Hülle darum.
type Seite struct {
	titel            string
	beschreibungHTML string
	engine           *gotemplate.Engine
}

// NeueSeite baut den Seitenrahmen auf. Die Beschreibung wird als Markdown
// gerendert und anschließend bereinigt, bevor sie in die Seite eingebettet
// wird.
func NeueSeite(titel, beschreibungMarkdown string) (*Seite, error) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(seitenTemplates),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		return nil, fmt.Errorf("demo: seiten-template laden: %w", err)
	}

	html := markdown.ToHTML([]byte(beschreibungMarkdown), nil, nil)
	sauber := bluemonday.UGCPolicy().SanitizeBytes(html)

	return &Seite{
		titel:            titel,
		beschreibungHTML: string(sauber),
		engine:           engine,
	}, nil
}

// Rendern setzt die vollständige Seite aus Rahmen, Formular-HTML und
// Ergebnissen zusammen.
func (s *Seite) Rendern(formularHTML []byte, ergebnisse []Ergebnis) ([]byte, error) {
	eintraege := make([]map[string]string, 0, len(ergebnisse))
	for _, ergebnis := range ergebnisse {
		eintraege = append(eintraege, map[string]string{
			"beschriftung": ergebnis.Beschriftung,
			"wert":         ergebnis.Wert,
		})
	}

	seite, err := s.engine.RenderTemplate("templates/seite.tmpl", map[string]any{
		"titel":             s.titel,
		"beschreibung_html": s.beschreibungHTML,
		"formular_html":     string(formularHTML),
		"ergebnisse":        eintraege,
	})
	if err != nil {
		return nil, fmt.Errorf("demo: seite rendern: %w", err)
	}
	return []byte(seite), nil
}

// Schreiben rendert die Seite und schreibt sie als HTTP-Antwort.
func (s *Seite) Schreiben(w http.ResponseWriter, formularHTML []byte, ergebnisse []Ergebnis) {
	seite, err := s.Rendern(formularHTML, ergebnisse)
	if err != nil {
		http.Error(w, fmt.Sprintf("seite rendern: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(seite); err != nil {
		log.Printf("demo: antwort schreiben: %v", err)
	}
}
