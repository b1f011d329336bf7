// Komponenten Formular, manueller Modus.
//
// Dieselbe Funktionalität wie cmd/komponenten-formular, aber das Modell wird
// von Hand komponiert. Der Unterschied wird hier am deutlichsten sichtbar:
// die Autorin bestimmt die Reihenfolge der Felder selbst (Name, dann
// Auswahlliste, dann Schieberegler; im deklarativen Modus sortiert der
// Modell-Builder die Schema-Eigenschaften alphabetisch), setzt Platzhalter
// und Vorgabewerte direkt und deklariert den "Berechnen"-Knopf ausdrücklich.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	formgen "github.com/goliatone/go-formgen"
	"github.com/goliatone/go-formgen/pkg/render"
	"github.com/goliatone/go-formgen/pkg/renderers/vanilla"

	"github.com/gokurs/formgen-beispiele/internal/demo"
	"github.com/gokurs/formgen-beispiele/internal/formulare"
	"github.com/gokurs/formgen-beispiele/pkg/logik"
)

const beispielName = "komponenten-formular-manuell"

func main() {
	addrFlag := flag.String("addr", "", "HTTP-Adresse (leer: beispiele.yaml oder :7863)")
	konfigFlag := flag.String("konfig", "beispiele.yaml", "Pfad zur optionalen Sammlungs-Konfiguration")
	flag.Parse()

	konfig, err := demo.KonfigLaden(*konfigFlag)
	if err != nil {
		log.Fatalf("konfiguration: %v", err)
	}
	addr := *addrFlag
	if addr == "" {
		addr = konfig.Adresse(beispielName, ":7863")
	}

	formular := formulare.Stimmungsformular()

	renderer, err := vanilla.New(vanilla.WithTemplatesFS(formgen.EmbeddedTemplates()))
	if err != nil {
		log.Fatalf("vanilla renderer: %v", err)
	}

	seite, err := demo.NeueSeite("Komponenten Formular (manuell)",
		"Geben Sie Ihren **Namen**, Ihre **Stimmung** und die **Intensität** ein.")
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
			nachricht, wert := logik.Stimmungsbericht(
				eingabe.Text("name"),
				eingabe.Text("stimmung"),
				eingabe.Zahl("intensitaet"),
			)
			ergebnisse = []demo.Ergebnis{
				{Beschriftung: "Nachricht", Wert: nachricht},
				{Beschriftung: "Stimmungswert", Wert: strconv.Itoa(wert)},
			}
		}
		rendern(w, r, opts, ergebnisse)
	})

	if err := demo.Starten(beispielName, addr, mux); err != nil {
		log.Fatal(err)
	}
}
