package demo

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-formgen/pkg/model"
)

// Eingabe ist das Ergebnis einer dekodierten Formular-Übermittlung. Werte
// enthält die typisierten Feldwerte (auch bei Fehlern, damit das Formular mit
// den eingegebenen Werten neu gerendert werden kann), Fehler die deutschen
// Prüfmeldungen je Feldname.
type Eingabe struct {
	Werte  map[string]any
	Fehler map[string][]string
}

// EingabeLesen dekodiert eine POST-Übermittlung gegen das Formularmodell:
// Pflichtfelder, Auswahllisten und Zahlenbereiche werden geprüft, gültige
// Werte typisiert abgelegt. Die Prüfregeln stammen vollständig aus dem Modell,
// sodass deklarativ abgeleitete und manuell komponierte Formulare identisch
// geprüft werden.
func EingabeLesen(r *http.Request, form model.FormModel) (Eingabe, error) {
	if err := r.ParseForm(); err != nil {
		return Eingabe{}, fmt.Errorf("demo: formulardaten lesen: %w", err)
	}

	eingabe := Eingabe{
		Werte:  make(map[string]any, len(form.Fields)),
		Fehler: make(map[string][]string),
	}

	for _, feld := range form.Fields {
		roh := strings.TrimSpace(r.PostForm.Get(feld.Name))

		if roh == "" {
			if feld.Default != nil {
				eingabe.Werte[feld.Name] = feld.Default
			}
			if feld.Required {
				eingabe.fehler(feld.Name, "%s ist ein Pflichtfeld.", beschriftung(feld))
			}
			continue
		}

		switch feld.Type {
		case model.FieldTypeInteger:
			wert, err := strconv.Atoi(roh)
			if err != nil {
				eingabe.Werte[feld.Name] = roh
				eingabe.fehler(feld.Name, "%s muss eine ganze Zahl sein.", beschriftung(feld))
				continue
			}
			eingabe.Werte[feld.Name] = wert
			if min, max, ok := zahlenbereich(feld); ok && (wert < min || wert > max) {
				eingabe.fehler(feld.Name, "%s muss zwischen %d und %d liegen.", beschriftung(feld), min, max)
			}
		case model.FieldTypeNumber:
			wert, err := strconv.ParseFloat(roh, 64)
			if err != nil {
				eingabe.Werte[feld.Name] = roh
				eingabe.fehler(feld.Name, "%s muss eine Zahl sein.", beschriftung(feld))
				continue
			}
			eingabe.Werte[feld.Name] = wert
		case model.FieldTypeBoolean:
			eingabe.Werte[feld.Name] = roh == "on" || roh == "true" || roh == "1"
		default:
			eingabe.Werte[feld.Name] = roh
			if len(feld.Enum) > 0 && !enumEnthaelt(feld.Enum, roh) {
				eingabe.fehler(feld.Name, "%s: %q ist keine gültige Auswahl.", beschriftung(feld), roh)
			}
		}
	}

	return eingabe, nil
}

// Gueltig meldet, ob die Übermittlung ohne Prüffehler dekodiert wurde.
func (e Eingabe) Gueltig() bool {
	return len(e.Fehler) == 0
}

// Text liefert einen dekodierten Stringwert.
func (e Eingabe) Text(name string) string {
	wert, _ := e.Werte[name].(string)
	return wert
}

// Zahl liefert einen dekodierten Ganzzahlwert.
func (e Eingabe) Zahl(name string) int {
	switch wert := e.Werte[name].(type) {
	case int:
		return wert
	case float64:
		// Vorgabewerte aus JSON-Schemata kommen als float64 an.
		return int(wert)
	default:
		return 0
	}
}

func (e Eingabe) fehler(feld, format string, args ...any) {
	e.Fehler[feld] = append(e.Fehler[feld], fmt.Sprintf(format, args...))
}

func beschriftung(feld model.Field) string {
	if feld.Label != "" {
		return feld.Label
	}
	return feld.Name
}

func enumEnthaelt(auswahl []any, wert string) bool {
	for _, eintrag := range auswahl {
		if fmt.Sprint(eintrag) == wert {
			return true
		}
	}
	return false
}

// zahlenbereich liest min/max aus den Prüfregeln des Feldes. Die Regeln
// kodieren ihre Schwellwerte als Strings unter Params["value"]. Fehlt eine der
// beiden Grenzen, bleibt die jeweilige Seite offen.
func zahlenbereich(feld model.Field) (min, max int, ok bool) {
	min, max = math.MinInt, math.MaxInt
	for _, regel := range feld.Validations {
		wert, err := strconv.ParseFloat(strings.TrimSpace(regel.Params["value"]), 64)
		if err != nil {
			continue
		}
		switch regel.Kind {
		case "min":
			min = int(wert)
			ok = true
		case "max":
			max = int(wert)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
