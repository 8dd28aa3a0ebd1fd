package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/rolexfittings/pipestock-api/internal/domain"
)

// Summary arma un prompt con el stock actual filtrado y lo envía al servicio
// externo de generación de texto. Paso de anotación de solo lectura: un fallo
// aquí nunca toca el estado del libro.
func (uc *UseCase) Summary(ctx context.Context, filter StockFilter) (string, error) {
	if uc.generator == nil {
		return "", fmt.Errorf("%w: servicio de resumen no configurado", domain.ErrInvalidInput)
	}
	rows, err := uc.Stock(filter)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: no hay stock que resumir", domain.ErrInvalidInput)
	}

	var sb strings.Builder
	sb.WriteString("As an expert inventory analyst for Rolex Fittings India Pvt Ltd, ")
	sb.WriteString("analyze the following current stock data and provide a concise, insightful summary in markdown format.\n\n")
	sb.WriteString("Current stock (category | grade | size | schedule | origin | seam | location | quantity):\n")
	for _, row := range rows {
		size := row.Size1
		if row.Size2 != "" {
			size = row.Size1 + " x " + row.Size2
		}
		fmt.Fprintf(&sb, "- %s | %s | %s | %s | %s | %s | %s | %d\n",
			row.Category, row.Grade, size, row.Schedule, row.Origin,
			row.SeamCondition, row.Location, row.Quantity)
	}
	sb.WriteString("\nYour summary should highlight: overall stock health, ")
	sb.WriteString("items with notably high or low quantities, and distribution across locations. ")
	sb.WriteString("Keep the summary professional and easy to read.")

	return uc.generator.GenerateText(ctx, sb.String())
}
