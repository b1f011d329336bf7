// Komponenten Formular, deklarativer Modus.
//
// Dieses Beispiel kombiniert mehrere Eingabekomponenten in einem Formular:
// ein Textfeld (Name), eine Auswahlliste (Stimmung) und einen Zahlenbereich
// mit Schieberegler-Charakter (Intensität 1–10). Alle drei Felder samt
// Auswahlwerten, Wertebereich und Vorgabewert stehen im OpenAPI-Dokument;
// das Framework leitet daraus die passenden Widgets ab.
//
// Die Verarbeitungsfunktion liefert zwei Werte (eine Nachricht und einen
// berechneten Stimmungswert), die auf zwei Einträge des Ausgabebereichs
// verteilt werden.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

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

const beispielName = "komponenten-formular"

func main() {
	addrFlag := flag.String("addr", "", "HTTP-Adresse (leer: beispiele.yaml oder :7862)")
	konfigFlag := flag.String("konfig", "beispiele.yaml", "Pfad zur optionalen Sammlungs-Konfiguration")
	flag.Parse()

	konfig, err := demo.KonfigLaden(*konfigFlag)
	if err != nil {
		log.Fatalf("konfiguration: %v", err)
	}
	addr := *addrFlag
	if addr == "" {
		addr = konfig.Adresse(beispielName, ":7862")
	}

	ctx := context.Background()

	dokument, err := schemata.Laden(ctx, schemata.Stimmung)
	if err != nil {
		log.Fatalf("schema laden: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(mustVanilla())

	parser := formgen.NewParser()
	builder := model.NewBuilder(model.WithLabeler(formulare.Beschrifter))
	generator := formgen.NewOrchestrator(
		orchestrator.WithParser(parser),
		orchestrator.WithModelBuilder(builder),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("vanilla"),
	)

	formular, err := demo.Formularmodell(ctx, parser, builder, dokument, schemata.OperationStimmungsbericht)
	if err != nil {
		log.Fatalf("formularmodell: %v", err)
	}

	seite, err := demo.NeueSeite("Komponenten Formular",
		"Geben Sie Ihren **Namen**, Ihre **Stimmung** und die **Intensität** ein.")
	if err != nil {
		log.Fatalf("seite: %v", err)
	}

	rendern := func(w http.ResponseWriter, r *http.Request, opts render.RenderOptions, ergebnisse []demo.Ergebnis) {
		html, err := generator.Generate(r.Context(), orchestrator.Request{
			Document:      &dokument,
			OperationID:   schemata.OperationStimmungsbericht,
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

	mux.HandleFunc("/stimmungsbericht", func(w http.ResponseWriter, r *http.Request) {
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
			// Zwei Rückgabewerte, zwei Ausgabefelder.
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

func mustVanilla() render.Renderer {
	r, err := vanilla.New(vanilla.WithTemplatesFS(formgen.EmbeddedTemplates()))
	if err != nil {
		log.Fatalf("vanilla renderer: %v", err)
	}
	return r
}
