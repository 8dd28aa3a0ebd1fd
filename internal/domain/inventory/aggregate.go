package inventory

import (
	"sort"
	"strings"

	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
)

// StockRow es una fila del reporte de stock agregado: una por clave de
// identidad distinta. Derivada, nunca persistida.
type StockRow struct {
	entity.ItemKey
	Quantity int64
	Remarks  string // unión deduplicada de los remarks de los lotes
}

// Aggregate agrupa los lotes vivos por clave de identidad, suma CurrentQuantity
// y une los remarks no vacíos sin duplicados. Función pura, recalculada en cada
// lectura; el orden de salida es determinista (categoría, medida numérica,
// resto de la clave) para que lecturas sin operación intermedia sean idénticas.
func Aggregate(batches []*entity.Batch) []StockRow {
	type group struct {
		row     StockRow
		remarks []string
		seen    map[string]bool
	}
	groups := make(map[string]*group)
	order := make([]string, 0, len(batches))

	for _, b := range batches {
		key := b.ItemKey.String()
		g, ok := groups[key]
		if !ok {
			g = &group{
				row:  StockRow{ItemKey: b.ItemKey},
				seen: make(map[string]bool),
			}
			groups[key] = g
			order = append(order, key)
		}
		g.row.Quantity += b.CurrentQuantity
		if b.Remarks != "" && !g.seen[b.Remarks] {
			g.seen[b.Remarks] = true
			g.remarks = append(g.remarks, b.Remarks)
		}
	}

	rows := make([]StockRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.row.Remarks = strings.Join(g.remarks, "; ")
		rows = append(rows, g.row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		sa, sb := ParseSize(a.Size1), ParseSize(b.Size1)
		if !sa.Equal(sb) {
			return sa.LessThan(sb)
		}
		return a.ItemKey.String() < b.ItemKey.String()
	})
	return rows
}
