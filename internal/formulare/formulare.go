// Package formulare enthält die manuell komponierten Formularmodelle.
//
// Im manuellen Modus beschreibt die Autorin das Formular selbst: jedes Feld
// wird als Wert angelegt, Beschriftung, Platzhalter, Vorgabewert und
// Gültigkeitsregeln stehen direkt im Code, und der Absende-Knopf wird
// ausdrücklich deklariert. Das ist das Gegenstück zum deklarativen Modus, bei
// dem dieselben Angaben aus einem OpenAPI-Dokument abgeleitet werden.
//
// Beide Modi teilen sich Operations-IDs und Endpunkte (internal/schemata),
// damit deklarative und manuelle Variante dasselbe Formular beschreiben und
// ihre Ausgaben vergleichbar bleiben.
package formulare

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-formgen/pkg/model"
	"github.com/goliatone/go-formgen/pkg/uischema"

	"github.com/gokurs/formgen-beispiele/internal/schemata"
	"github.com/gokurs/formgen-beispiele/pkg/logik"
)

// beschriftungen bildet Feldnamen auf die deutschen Beschriftungen ab. Die
// deklarativen Beispiele speisen dieselbe Tabelle über model.WithLabeler ein,
// damit beide Modi identisch beschriftete Felder erzeugen.
var beschriftungen = map[string]string{
	"name":        "Name eingeben",
	"stimmung":    "Stimmung auswählen",
	"intensitaet": "Intensität der Stimmung",
}

// Beschrifter liefert die deutsche Beschriftung eines Feldes. Unbekannte
// Feldnamen werden lediglich großgeschrieben.
func Beschrifter(feld string) string {
	if label, ok := beschriftungen[feld]; ok {
		return label
	}
	if feld == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(feld)
	return string(unicode.ToUpper(r)) + feld[size:]
}

// Begruessungsformular komponiert das Hallo-Formular von Hand: ein einzelnes
// Pflicht-Textfeld und ein Absende-Knopf.
func Begruessungsformular() model.FormModel {
	return model.FormModel{
		OperationID: schemata.OperationBegruessen,
		Endpoint:    "/begruessen",
		Method:      "POST",
		Summary:     "Hallo Formular",
		Description: "Geben Sie Ihren Namen ein, um eine Begrüßung zu erhalten.",
		Fields: []model.Field{
			{
				Name:        "name",
				Type:        model.FieldTypeString,
				Required:    true,
				Label:       Beschrifter("name"),
				Placeholder: "z. B. Ada",
				Description: "Der Name, der begrüßt werden soll.",
				Validations: []model.ValidationRule{
					{Kind: "minLength", Params: map[string]string{"value": "1"}},
				},
			},
		},
		Metadata: map[string]string{
			"actions": aktionen("Begrüßen"),
		},
	}
}

// Stimmungsformular komponiert das Komponenten-Formular von Hand. Anders als
// im deklarativen Modus bestimmt hier die Autorin die Reihenfolge der Felder:
// erst der Name, dann die Auswahlliste, dann der Schieberegler.
func Stimmungsformular() model.FormModel {
	return model.FormModel{
		OperationID: schemata.OperationStimmungsbericht,
		Endpoint:    "/stimmungsbericht",
		Method:      "POST",
		Summary:     "Komponenten Formular",
		Description: "Geben Sie Ihren Namen, Ihre Stimmung und die Intensität ein.",
		Fields: []model.Field{
			{
				Name:        "name",
				Type:        model.FieldTypeString,
				Required:    true,
				Label:       Beschrifter("name"),
				Placeholder: "z. B. Ada",
				Description: "Der Name, der im Bericht erscheint.",
				Validations: []model.ValidationRule{
					{Kind: "minLength", Params: map[string]string{"value": "1"}},
				},
			},
			{
				Name:        "stimmung",
				Type:        model.FieldTypeString,
				Required:    true,
				Label:       Beschrifter("stimmung"),
				Description: "Auswahl aus einer festen Liste von Stimmungen.",
				Enum:        stimmungsAuswahl(),
			},
			{
				Name:        "intensitaet",
				Type:        model.FieldTypeInteger,
				Required:    true,
				Label:       Beschrifter("intensitaet"),
				Description: "Wie stark die Stimmung ist (1–10).",
				Default:     logik.IntensitaetStandard,
				Validations: []model.ValidationRule{
					{Kind: "min", Params: map[string]string{"value": strconv.Itoa(logik.IntensitaetMin)}},
					{Kind: "max", Params: map[string]string{"value": strconv.Itoa(logik.IntensitaetMax)}},
				},
			},
		},
		Metadata: map[string]string{
			"actions": aktionen("Berechnen"),
		},
	}
}

func stimmungsAuswahl() []any {
	auswahl := make([]any, 0, len(logik.Stimmungen))
	for _, s := range logik.Stimmungen {
		auswahl = append(auswahl, s)
	}
	return auswahl
}

// aktionen serialisiert einen einzelnen Absende-Knopf in das
// Metadaten-Format, das die Renderer für Formular-Aktionen auswerten.
func aktionen(beschriftung string) string {
	data, err := json.Marshal([]uischema.ActionConfig{
		{Kind: "submit", Type: "submit", Label: strings.TrimSpace(beschriftung)},
	})
	if err != nil {
		// Die Struktur ist statisch; ein Fehler hier wäre ein Programmierfehler.
		panic(err)
	}
	return string(data)
}
