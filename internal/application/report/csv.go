package report

import (
	"strconv"
	"strings"

	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
)

// csvHeaders encabezados del export, en el orden del contrato.
var csvHeaders = []string{
	"Category", "Grade", "Size 1", "Size 2", "Schedule", "Origin",
	"Seam Condition", "Location", "Current Stock", "Remarks",
}

// ExportCSV genera el reporte de stock filtrado como CSV: una fila por clave
// de identidad, todos los campos entre comillas dobles y las comillas
// internas duplicadas. (encoding/csv solo entrecomilla cuando hace falta;
// el contrato exige comillas siempre, así que se arma a mano.)
func (uc *UseCase) ExportCSV(filter StockFilter) (string, error) {
	rows, err := uc.Stock(filter)
	if err != nil {
		return "", err
	}
	return BuildCSV(rows), nil
}

// BuildCSV serializa filas agregadas según el contrato de export.
func BuildCSV(rows []inventory.StockRow) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeaders, ","))
	for _, row := range rows {
		fields := []string{
			row.Category,
			row.Grade,
			row.Size1,
			row.Size2,
			row.Schedule,
			row.Origin,
			row.SeamCondition,
			row.Location,
			strconv.FormatInt(row.Quantity, 10),
			row.Remarks,
		}
		sb.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
			sb.WriteByte('"')
		}
	}
	return sb.String()
}
