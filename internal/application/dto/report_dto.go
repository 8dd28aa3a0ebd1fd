package dto

import "github.com/rolexfittings/pipestock-api/internal/domain/inventory"

// StockRowDTO una fila del reporte de stock agregado.
type StockRowDTO struct {
	ItemKeyFields
	Quantity int64  `json:"quantity"`
	Remarks  string `json:"remarks,omitempty"`
}

// FromStockRow convierte la fila derivada a su representación API.
func FromStockRow(row inventory.StockRow) StockRowDTO {
	return StockRowDTO{
		ItemKeyFields: keyFields(row.ItemKey),
		Quantity:      row.Quantity,
		Remarks:       row.Remarks,
	}
}

// SummaryResponse respuesta del resumen narrado del reporte.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
