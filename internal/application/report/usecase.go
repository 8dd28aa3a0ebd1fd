package report

import (
	"github.com/rolexfittings/pipestock-api/internal/application/ports"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

// StockFilter filtros del reporte de stock. Campos vacíos no filtran. Query
// es búsqueda de texto libre por tokens (AND, independiente del orden).
type StockFilter struct {
	Category      string
	Grade         string
	Size          string
	Schedule      string
	Origin        string
	SeamCondition string
	Location      string
	Query         string
}

// UseCase consultas derivadas de solo lectura: reporte de stock agregado,
// historial del libro y resumen narrado. Todo se recalcula en cada lectura;
// O(lotes) por lectura es aceptable porque los lotes son pocos frente a la
// frecuencia de consulta.
type UseCase struct {
	batchRepo  repository.BatchRepository
	ledgerRepo repository.LedgerRepository
	generator  ports.TextGenerator
}

// NewUseCase construye las consultas de reporte. generator puede ser nil si
// el resumen narrado no está configurado.
func NewUseCase(batchRepo repository.BatchRepository, ledgerRepo repository.LedgerRepository, generator ports.TextGenerator) *UseCase {
	return &UseCase{batchRepo: batchRepo, ledgerRepo: ledgerRepo, generator: generator}
}

// Stock devuelve las filas agregadas (una por clave de identidad) que pasan
// los filtros.
func (uc *UseCase) Stock(filter StockFilter) ([]inventory.StockRow, error) {
	batches, err := uc.batchRepo.List()
	if err != nil {
		return nil, err
	}
	rows := inventory.Aggregate(batches)
	out := make([]inventory.StockRow, 0, len(rows))
	for _, row := range rows {
		if matchesFilter(row, filter) {
			out = append(out, row)
		}
	}
	return out, nil
}

func matchesFilter(row inventory.StockRow, f StockFilter) bool {
	if f.Category != "" && row.Category != f.Category {
		return false
	}
	if f.Grade != "" && row.Grade != f.Grade {
		return false
	}
	if f.Schedule != "" && row.Schedule != f.Schedule {
		return false
	}
	if f.Origin != "" && row.Origin != f.Origin {
		return false
	}
	if f.SeamCondition != "" && row.SeamCondition != f.SeamCondition {
		return false
	}
	if f.Location != "" && row.Location != f.Location {
		return false
	}
	if f.Size != "" {
		if entity.IsDualSizeCategory(row.Category) {
			if row.Size1 != f.Size && row.Size2 != f.Size {
				return false
			}
		} else if row.Size1 != f.Size {
			return false
		}
	}
	if f.Query != "" {
		searchable := inventory.SearchString(
			row.Category, row.Grade, row.Size1, row.Size2, row.Schedule,
			row.Origin, row.SeamCondition, row.Location, row.Remarks,
		)
		if !inventory.MatchKeywords(searchable, f.Query) {
			return false
		}
	}
	return true
}

// History devuelve registros del libro, más recientes primero, con búsqueda
// opcional por palabras clave sobre los campos desnormalizados.
func (uc *UseCase) History(limit, offset int, query string) ([]*entity.LedgerEntry, error) {
	entries, err := uc.ledgerRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return entries, nil
	}
	out := make([]*entity.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		searchable := inventory.SearchString(
			e.Category, e.Grade, e.Size1, e.Size2, e.Schedule,
			e.Origin, e.SeamCondition, e.Location, e.EntryBy, e.Remarks,
		)
		if inventory.MatchKeywords(searchable, query) {
			out = append(out, e)
		}
	}
	return out, nil
}

// BatchHistory devuelve los registros del libro de un lote concreto.
func (uc *UseCase) BatchHistory(batchID string) ([]*entity.LedgerEntry, error) {
	return uc.ledgerRepo.ListByBatch(batchID)
}
