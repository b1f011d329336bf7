// Formular im Terminal.
//
// Dasselbe Hallo-Formular wie in den Web-Beispielen, nur ohne Browser: der
// TUI-Renderer des Frameworks führt die Felder des Formularmodells als
// Eingabeaufforderungen im Terminal durch und liefert die gesammelten Werte
// als JSON zurück. Das zeigt, dass Formularmodell und Verarbeitungsfunktion
// von der Darstellung unabhängig sind: Web-Seite und Terminal teilen sich
// beides unverändert.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/goliatone/go-formgen/pkg/render"
	"github.com/goliatone/go-formgen/pkg/renderers/tui"

	"github.com/gokurs/formgen-beispiele/internal/formulare"
	"github.com/gokurs/formgen-beispiele/pkg/logik"
)

func main() {
	einmalFlag := flag.Bool("einmal", false, "nur eine Begrüßung, keine Wiederholungs-Abfrage")
	flag.Parse()

	renderer, err := tui.New(tui.WithOutputFormat(tui.OutputFormatJSON))
	if err != nil {
		log.Fatalf("tui renderer: %v", err)
	}

	formular := formulare.Begruessungsformular()
	ctx := context.Background()

	for {
		ausgefuellt, err := renderer.Render(ctx, formular, render.RenderOptions{})
		if err != nil {
			log.Fatalf("formular ausfüllen: %v", err)
		}

		var werte map[string]any
		if err := json.Unmarshal(ausgefuellt, &werte); err != nil {
			log.Fatalf("werte dekodieren: %v", err)
		}

		fmt.Println(logik.Begruessung(fmt.Sprint(werte["name"])))

		if *einmalFlag {
			return
		}
		nochmal := false
		if err := survey.AskOne(&survey.Confirm{Message: "Noch eine Begrüßung?", Default: true}, &nochmal); err != nil {
			log.Fatalf("abfrage: %v", err)
		}
		if !nochmal {
			return
		}
	}
}
