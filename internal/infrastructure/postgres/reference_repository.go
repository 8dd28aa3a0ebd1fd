package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// Whitelist de tablas de referencia; el tipo viaja como nombre de tabla y no
// puede interpolarse sin validar.
var referenceTables = map[string]bool{
	entity.ReferenceCategories: true,
	entity.ReferenceGrades:     true,
	entity.ReferenceSizes:      true,
	entity.ReferenceSchedules:  true,
	entity.ReferenceLocations:  true,
}

// ReferenceRepo implementación de ReferenceRepository sobre PostgreSQL
// (usable con pool o tx). Una tabla por lista, esquema {id, name} más
// sort_value numérico en sizes.
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador de datos maestros.
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

func tableFor(kind string) (string, error) {
	if !referenceTables[kind] {
		return "", domain.ErrNotFound
	}
	return kind, nil
}

// List devuelve los nombres de una lista. sizes sale ordenado por el valor
// numérico parseado; el resto por orden de inserción.
func (r *ReferenceRepo) List(kind string) ([]string, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	orderBy := "created_at"
	if kind == entity.ReferenceSizes {
		orderBy = "sort_value"
	}
	rows, err := r.q.Query(context.Background(),
		fmt.Sprintf(`SELECT name FROM %s ORDER BY %s`, table, orderBy))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Add inserta un valor nuevo. Devuelve ErrDuplicate si el nombre ya existe.
func (r *ReferenceRepo) Add(kind, name string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	var execErr error
	if kind == entity.ReferenceSizes {
		_, execErr = r.q.Exec(context.Background(),
			fmt.Sprintf(`INSERT INTO %s (id, name, sort_value, created_at) VALUES ($1, $2, $3, now())`, table),
			uuid.New().String(), name, inventory.ParseSize(name))
	} else {
		_, execErr = r.q.Exec(context.Background(),
			fmt.Sprintf(`INSERT INTO %s (id, name, created_at) VALUES ($1, $2, now())`, table),
			uuid.New().String(), name)
	}
	if execErr != nil {
		if isUniqueViolation(execErr) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", kind, execErr)
	}
	return nil
}

// Count devuelve cuántos valores tiene una lista.
func (r *ReferenceRepo) Count(kind string) (int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.q.QueryRow(context.Background(),
		fmt.Sprintf(`SELECT count(*) FROM %s`, table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}
