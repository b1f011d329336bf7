// Package logik enthält die reinen Verarbeitungsfunktionen der Beispiele.
//
// Die Funktionen sind bewusst von jeder Oberfläche getrennt: dieselbe Funktion
// bedient das deklarative Formular, die manuell komponierte Variante und die
// Terminal-Variante. Dadurch lässt sich die Logik unabhängig von der
// UI-Erzeugung testen, ein Kernprinzip aller Beispiele in dieser Sammlung.
package logik

import "fmt"

// Stimmungen ist die feste Auswahlliste für das Komponenten-Beispiel. Die
// Reihenfolge bestimmt die Reihenfolge im erzeugten Auswahlfeld.
var Stimmungen = []string{"glücklich", "traurig", "aufgeregt"}

// Wertebereich des Intensitäts-Schiebereglers.
const (
	IntensitaetMin      = 1
	IntensitaetMax      = 10
	IntensitaetStandard = 5
)

// StimmungGueltig meldet, ob der Wert in der festen Auswahlliste enthalten ist.
func StimmungGueltig(stimmung string) bool {
	for _, s := range Stimmungen {
		if s == stimmung {
			return true
		}
	}
	return false
}

// IntensitaetGueltig meldet, ob der Wert im deklarierten Bereich liegt.
func IntensitaetGueltig(intensitaet int) bool {
	return intensitaet >= IntensitaetMin && intensitaet <= IntensitaetMax
}

// Begruessung baut aus dem eingegebenen Namen eine persönliche Begrüßung.
// Die Funktion ist deterministisch und total: jeder String ergibt genau eine
// Begrüßung, die den Namen unverändert enthält.
func Begruessung(name string) string {
	return fmt.Sprintf("Hallo, %s!! 🙂", name)
}

// Stimmungsbericht kombiniert Name, Stimmung und Intensität zu einer Nachricht
// und berechnet daraus einen Stimmungswert (Intensität × 10). Beide Ergebnisse
// werden auf zwei getrennte Ausgabefelder verteilt.
func Stimmungsbericht(name, stimmung string, intensitaet int) (nachricht string, wert int) {
	nachricht = fmt.Sprintf("%s fühlt sich %s", name, stimmung)
	wert = intensitaet * 10
	return nachricht, wert
}
