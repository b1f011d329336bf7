// Hallo Formular, deklarativer Modus.
//
// Das einfachste Beispiel der Sammlung: ein Name wird zu einer Begrüßung.
// Im deklarativen Modus beschreibt ein OpenAPI-Dokument (internal/schemata)
// das Formular; der Orchestrator des Frameworks leitet daraus Felder,
// Beschriftungen und Prüfregeln ab und rendert die Oberfläche. Der Code hier
// verdrahtet nur noch: Dokument laden, Formular erzeugen, Übermittlung
// dekodieren, Ergebnis anzeigen.
//
// Das Gegenstück mit von Hand komponiertem Formularmodell steht in
// cmd/hallo-formular-manuell.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	formgen "github.com/goliatone/go-formgen"
	"github.com/goliatone/go-formgen/pkg/model"
	"github.com/goliatone/go-formgen/pkg/orchestrator"
	"github.com/goliatone/go-formgen/pkg/render"
	"github.com/goliatone/go-formgen/pkg/renderers/vanilla"

	"github.com/gokurs/formgen-beispiele/internal/demo"
	"github.com/gokurs/formgen-beispiele/internal/formulare"
	"github.com/gokurs/formgen-beispiele/internal/schemata"
	"github.com/gokurs/formgen-beispiele/pkg/logik"
)

const beispielName = "hallo-formular"

func main() {
	addrFlag := flag.String("addr", "", "HTTP-Adresse (leer: beispiele.yaml oder :7860)")
	konfigFlag := flag.String("konfig", "beispiele.yaml", "Pfad zur optionalen Sammlungs-Konfiguration")
	flag.Parse()

	konfig, err := demo.KonfigLaden(*konfigFlag)
	if err != nil {
		log.Fatalf("konfiguration: %v", err)
	}
	addr := *addrFlag
	if addr == "" {
		addr = konfig.Adresse(beispielName, ":7860")
	}

	ctx := context.Background()

	dokument, err := schemata.Laden(ctx, schemata.Begruessung)
	if err != nil {
		log.Fatalf("schema laden: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(mustVanilla())

	// Die Beschriftungstabelle sorgt dafür, dass das abgeleitete Formular
	// dieselben deutschen Feldbeschriftungen trägt wie die manuelle Variante.
	parser := formgen.NewParser()
	builder := model.NewBuilder(model.WithLabeler(formulare.Beschrifter))
	generator := formgen.NewOrchestrator(
		orchestrator.WithParser(parser),
		orchestrator.WithModelBuilder(builder),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("vanilla"),
	)

	// Dasselbe Modell, das der Orchestrator rendert, prüft auch die
	// Übermittlung.
	formular, err := demo.Formularmodell(ctx, parser, builder, dokument, schemata.OperationBegruessen)
	if err != nil {
		log.Fatalf("formularmodell: %v", err)
	}

	seite, err := demo.NeueSeite("Hallo Formular",
		"Geben Sie Ihren **Namen** ein, um eine Begrüßung zu erhalten.")
	if err != nil {
		log.Fatalf("seite: %v", err)
	}

	rendern := func(w http.ResponseWriter, r *http.Request, opts render.RenderOptions, ergebnisse []demo.Ergebnis) {
		html, err := generator.Generate(r.Context(), orchestrator.Request{
			Document:      &dokument,
			OperationID:   schemata.OperationBegruessen,
			RenderOptions: opts,
		})
		if err != nil {
			http.Error(w, fmt.Sprintf("formular erzeugen: %v", err), http.StatusInternalServerError)
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

	// Die Formular-Aktion zeigt auf den Endpunkt der Operation aus dem Schema.
	mux.HandleFunc("/begruessen", func(w http.ResponseWriter, r *http.Request) {
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

func mustVanilla() render.Renderer {
	r, err := vanilla.New(vanilla.WithTemplatesFS(formgen.EmbeddedTemplates()))
	if err != nil {
		log.Fatalf("vanilla renderer: %v", err)
	}
	return r
}
