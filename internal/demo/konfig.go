package demo

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Konfig ist die optionale Sammlungs-Konfiguration (beispiele.yaml). Sie
// erlaubt es, den Beispielen feste Adressen zuzuweisen, ohne jede Binary mit
// Flags zu starten.
type Konfig struct {
	// Adressen bildet Beispielnamen auf HTTP-Adressen ab, z. B.
	// "hallo-formular: :7860".
	Adressen map[string]string `yaml:"adressen"`
}

// KonfigLaden liest die Konfigurationsdatei ein. Eine fehlende Datei ist kein
// Fehler: die Beispiele laufen dann mit ihren eingebauten Vorgaben.
func KonfigLaden(pfad string) (Konfig, error) {
	data, err := os.ReadFile(pfad)
	if err != nil {
		if os.IsNotExist(err) {
			return Konfig{}, nil
		}
		return Konfig{}, fmt.Errorf("demo: lese %s: %w", pfad, err)
	}

	var k Konfig
	if err := yaml.Unmarshal(data, &k); err != nil {
		return Konfig{}, fmt.Errorf("demo: parse %s: %w", pfad, err)
	}
	return k, nil
}

// Adresse liefert die konfigurierte Adresse eines Beispiels oder den
// übergebenen Vorgabewert.
func (k Konfig) Adresse(beispiel, vorgabe string) string {
	if addr, ok := k.Adressen[beispiel]; ok {
		if addr = strings.TrimSpace(addr); addr != "" {
			return addr
		}
	}
	return vorgabe
}
