package demo

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-formgen/pkg/model"
	"github.com/google/go-cmp/cmp"
)

func testFormular() model.FormModel {
	return model.FormModel{
		OperationID: "testen",
		Endpoint:    "/testen",
		Method:      "POST",
		Fields: []model.Field{
			{
				Name:     "name",
				Type:     model.FieldTypeString,
				Required: true,
				Label:    "Name eingeben",
			},
			{
				Name:  "stimmung",
				Type:  model.FieldTypeString,
				Label: "Stimmung auswählen",
				Enum:  []any{"glücklich", "traurig"},
			},
			{
				Name:    "intensitaet",
				Type:    model.FieldTypeInteger,
				Label:   "Intensität der Stimmung",
				Default: 5,
				Validations: []model.ValidationRule{
					{Kind: "min", Params: map[string]string{"value": "1"}},
					{Kind: "max", Params: map[string]string{"value": "10"}},
				},
			},
		},
	}
}

func uebermittlung(t *testing.T, form model.FormModel, werte url.Values) Eingabe {
	t.Helper()

	req := httptest.NewRequest("POST", form.Endpoint, strings.NewReader(werte.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	eingabe, err := EingabeLesen(req, form)
	if err != nil {
		t.Fatalf("EingabeLesen: %v", err)
	}
	return eingabe
}

func TestEingabeLesenGueltig(t *testing.T) {
	eingabe := uebermittlung(t, testFormular(), url.Values{
		"name":        {"  Anna  "},
		"stimmung":    {"glücklich"},
		"intensitaet": {"7"},
	})

	if !eingabe.Gueltig() {
		t.Fatalf("unerwartete Fehler: %v", eingabe.Fehler)
	}

	want := map[string]any{
		"name":        "Anna",
		"stimmung":    "glücklich",
		"intensitaet": 7,
	}
	if diff := cmp.Diff(want, eingabe.Werte); diff != "" {
		t.Errorf("Werte mismatch (-want +got):\n%s", diff)
	}
	if got := eingabe.Text("name"); got != "Anna" {
		t.Errorf("Text(name) = %q", got)
	}
	if got := eingabe.Zahl("intensitaet"); got != 7 {
		t.Errorf("Zahl(intensitaet) = %d", got)
	}
}

func TestEingabeLesenPflichtfeldFehlt(t *testing.T) {
	eingabe := uebermittlung(t, testFormular(), url.Values{
		"stimmung": {"traurig"},
	})

	if eingabe.Gueltig() {
		t.Fatal("fehlender Pflichtwert muss einen Fehler erzeugen")
	}
	meldungen := eingabe.Fehler["name"]
	if len(meldungen) != 1 || !strings.Contains(meldungen[0], "Pflichtfeld") {
		t.Errorf("Fehler[name] = %v", meldungen)
	}
	// Der Vorgabewert des leer gelassenen Feldes bleibt für das erneute
	// Rendern erhalten.
	if got := eingabe.Zahl("intensitaet"); got != 5 {
		t.Errorf("Zahl(intensitaet) = %d, want Vorgabewert 5", got)
	}
}

func TestEingabeLesenUngueltigeAuswahl(t *testing.T) {
	eingabe := uebermittlung(t, testFormular(), url.Values{
		"name":     {"Anna"},
		"stimmung": {"wütend"},
	})

	if eingabe.Gueltig() {
		t.Fatal("Wert außerhalb der Auswahlliste muss einen Fehler erzeugen")
	}
	if meldungen := eingabe.Fehler["stimmung"]; len(meldungen) == 0 || !strings.Contains(meldungen[0], "gültige Auswahl") {
		t.Errorf("Fehler[stimmung] = %v", meldungen)
	}
	// Der abgelehnte Wert bleibt in den Werten, damit er im Formular wieder
	// angezeigt werden kann.
	if got := eingabe.Text("stimmung"); got != "wütend" {
		t.Errorf("Text(stimmung) = %q", got)
	}
}

func TestEingabeLesenZahlen(t *testing.T) {
	cases := []struct {
		name    string
		wert    string
		meldung string
	}{
		{name: "keine zahl", wert: "viel", meldung: "ganze Zahl"},
		{name: "unter minimum", wert: "0", meldung: "zwischen 1 und 10"},
		{name: "ueber maximum", wert: "11", meldung: "zwischen 1 und 10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eingabe := uebermittlung(t, testFormular(), url.Values{
				"name":        {"Anna"},
				"intensitaet": {tc.wert},
			})
			if eingabe.Gueltig() {
				t.Fatalf("intensitaet=%q muss einen Fehler erzeugen", tc.wert)
			}
			meldungen := eingabe.Fehler["intensitaet"]
			if len(meldungen) == 0 || !strings.Contains(meldungen[0], tc.meldung) {
				t.Errorf("Fehler[intensitaet] = %v, erwartet Meldung mit %q", meldungen, tc.meldung)
			}
		})
	}
}
