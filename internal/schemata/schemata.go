// Package schemata bündelt die eingebetteten OpenAPI-Dokumente der
// deklarativen Beispiele.
//
// Im deklarativen Modus ist das OpenAPI-Dokument die einzige Beschreibung des
// Formulars: Felder, Pflichtangaben, Auswahllisten und Wertebereiche stehen im
// Schema, die Oberfläche wird vollständig daraus abgeleitet. Die Dokumente
// liegen als eingebettete Dateien im Binary, damit die Beispiele ohne
// Arbeitsverzeichnis-Annahmen laufen.
package schemata

import (
	"context"
	"embed"
	"fmt"

	formgen "github.com/goliatone/go-formgen"
	pkgopenapi "github.com/goliatone/go-formgen/pkg/openapi"
)

//go:embed *.json
var dokumente embed.FS

// Dateinamen der eingebetteten Dokumente.
const (
	Begruessung = "begruessung.json"
	Stimmung    = "stimmung.json"
)

// Operations-IDs, über die Formulare aus den Dokumenten ausgewählt werden.
// Die manuell komponierten Gegenstücke in internal/formulare verwenden
// dieselben IDs, damit beide Modi vergleichbar bleiben.
const (
	OperationBegruessen       = "begruessen"
	OperationStimmungsbericht = "stimmungsbericht"
)

// FS liefert das eingebettete Dateisystem, etwa für einen eigenen Loader.
func FS() embed.FS {
	return dokumente
}

// Laden liest ein eingebettetes Dokument über den Framework-Loader ein.
func Laden(ctx context.Context, name string) (pkgopenapi.Document, error) {
	loader := formgen.NewLoader(pkgopenapi.WithFileSystem(dokumente))
	doc, err := loader.Load(ctx, pkgopenapi.SourceFromFS(name))
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("schemata: lade %s: %w", name, err)
	}
	return doc, nil
}
