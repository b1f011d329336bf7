package demo

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formgen/pkg/model"
	pkgopenapi "github.com/goliatone/go-formgen/pkg/openapi"
)

// Formularmodell leitet das Formularmodell einer Operation aus einem bereits
// geladenen OpenAPI-Dokument ab. Die deklarativen Beispiele benutzen es, um
// dieselbe Feldbeschreibung, die das Framework rendert, auch für die
// Übermittlungs-Prüfung in der Hand zu haben.
func Formularmodell(ctx context.Context, parser pkgopenapi.Parser, builder model.Builder, doc pkgopenapi.Document, operationID string) (model.FormModel, error) {
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("demo: operationen parsen: %w", err)
	}
	op, ok := operations[operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("demo: operation %q nicht gefunden", operationID)
	}
	form, err := builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("demo: formularmodell bauen: %w", err)
	}
	return form, nil
}
