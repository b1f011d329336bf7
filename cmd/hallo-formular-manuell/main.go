// Hallo Formular, manueller Modus.
//
// Dieselbe Funktionalität wie cmd/hallo-formular, aber ohne OpenAPI-Dokument
// und ohne Orchestrator: das Formularmodell wird von Hand komponiert
// (internal/formulare), der Renderer direkt aufgerufen und jede Route
// ausdrücklich verdrahtet. Der manuelle Modus zeigt, was der deklarative Weg
// sonst im Hintergrund erledigt, und gibt dafür volle Kontrolle über Felder,
// Reihenfolge und Ablauf.
//
// Die Verarbeitungsfunktion bleibt unverändert: Backend-Logik und
// Oberflächen-Definition sind getrennt, nur die Definition wechselt den Modus.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	formgen "github.com/goliatone/go-formgen"
	"github.com/goliatone/go-formgen/pkg/render"
	"github.com/goliatone/go-formgen/pkg/renderers/vanilla"

	"github.com/gokurs/formgen-beispiele/internal/demo"
	"github.com/gokurs/formgen-beispiele/internal/formulare"
	"github.com/gokurs/formgen-beispiele/pkg/logik"
)

const beispielName = "hallo-formular-manuell"

func main() {
	addrFlag := flag.String("addr", "", "HTTP-Adresse (leer: beispiele.yaml oder :7861)")
	konfigFlag := flag.String("konfig", "beispiele.yaml", "Pfad zur optionalen Sammlungs-Konfiguration")
	flag.Parse()

	konfig, err := demo.KonfigLaden(*konfigFlag)
	if err != nil {
		log.Fatalf("konfiguration: %v", err)
	}
	addr := *addrFlag
	if addr == "" {
		addr = konfig.Adresse(beispielName, ":7861")
	}

	// Manueller Modus: das Modell steht vollständig im Code, inklusive des
	// ausdrücklich deklarierten "Begrüßen"-Knopfs.
	formular := formulare.Begruessungsformular()

	renderer, err := vanilla.New(vanilla.WithTemplatesFS(formgen.EmbeddedTemplates()))
	if err != nil {
		log.Fatalf("vanilla renderer: %v", err)
	}

	seite, err := demo.NeueSeite("Hallo Formular (manuell)",
		"Geben Sie Ihren **Namen** ein, um eine Begrüßung zu erhalten.")
	if err != nil {
		log.Fatalf("seite: %v", err)
	}

	rendern := func(w http.ResponseWriter, r *http.Request, opts render.RenderOptions, ergebnisse []demo.Ergebnis) {
		html, err := renderer.Render(r.Context(), formular, opts)
		if err != nil {
			http.Error(w, fmt.Sprintf("formular rendern: %v", err), http.StatusInternalServerError)
			return
		}
		seite.Schreiben(w, html, ergebnisse)
	}

	mux := demo.NeuerMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		rendern(w, r, render.RenderOptions{}, nil)
	})

	// Ausdrückliche Verdrahtung: der Endpunkt des Modells nimmt die
	// Übermittlung an, ruft die Verarbeitungsfunktion auf und füllt den
	// Ausgabebereich.
	mux.HandleFunc(formular.Endpoint, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		eingabe, err := demo.EingabeLesen(r, formular)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		opts := render.RenderOptions{Values: eingabe.Werte, Errors: eingabe.Fehler}
		var ergebnisse []demo.Ergebnis
		if eingabe.Gueltig() {
			ergebnisse = []demo.Ergebnis{
				{Beschriftung: "Begrüßung", Wert: logik.Begruessung(eingabe.Text("name"))},
			}
		}
		rendern(w, r, opts, ergebnisse)
	})

	if err := demo.Starten(beispielName, addr, mux); err != nil {
		log.Fatal(err)
	}
}
