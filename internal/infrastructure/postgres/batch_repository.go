package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, category, grade, size1, size2, schedule, origin, seam_condition, location,
		initial_quantity, current_quantity, in_date, remarks, entry_by, created_at`

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(b *entity.Batch) error {
	query := `
		INSERT INTO batches (id, category, grade, size1, size2, schedule, origin, seam_condition, location,
			initial_quantity, current_quantity, in_date, remarks, entry_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Category, b.Grade, b.Size1, b.Size2, b.Schedule, b.Origin, b.SeamCondition, b.Location,
		b.InitialQuantity, b.CurrentQuantity, b.InDate, b.Remarks, b.EntryBy, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.Category, &b.Grade, &b.Size1, &b.Size2, &b.Schedule, &b.Origin,
		&b.SeamCondition, &b.Location, &b.InitialQuantity, &b.CurrentQuantity,
		&b.InDate, &b.Remarks, &b.EntryBy, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByID obtiene un lote por ID. Devuelve nil sin error si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE) para que
// la secuencia leer-decidir-escribir del motor sea segura dentro de la tx.
func (r *BatchRepo) GetForUpdate(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1 FOR UPDATE`
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch for update: %w", err)
	}
	return b, nil
}

// ApplyDelta suma delta a current_quantity con guarda de no-negatividad en el
// propio UPDATE; cero filas afectadas distingue lote inexistente de stock
// insuficiente.
func (r *BatchRepo) ApplyDelta(id string, delta int64) error {
	query := `
		UPDATE batches SET current_quantity = current_quantity + $2
		WHERE id = $1 AND current_quantity + $2 >= 0`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrNegativeStock
	}
	return nil
}

// SetQuantities fija ambas cantidades (correcciones de editar/eliminar transacción).
func (r *BatchRepo) SetQuantities(id string, initial, current int64) error {
	query := `UPDATE batches SET initial_quantity = $2, current_quantity = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, initial, current)
	if err != nil {
		return fmt.Errorf("set quantities: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetIdentity actualiza los campos descriptivos del lote, nunca cantidades.
func (r *BatchRepo) SetIdentity(id string, k entity.ItemKey) error {
	query := `
		UPDATE batches SET category = $2, grade = $3, size1 = $4, size2 = $5,
			schedule = $6, origin = $7, seam_condition = $8, location = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id,
		k.Category, k.Grade, k.Size1, k.Size2, k.Schedule, k.Origin, k.SeamCondition, k.Location,
	)
	if err != nil {
		return fmt.Errorf("set identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los lotes (incluidos los de cantidad cero, que quedan
// como historial).
func (r *BatchRepo) List() ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

// ListOpenByKey devuelve los lotes con stock que coinciden con la clave de
// identidad, el de fecha de entrada más antigua primero (sugerencia FIFO).
func (r *BatchRepo) ListOpenByKey(k entity.ItemKey) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE category = $1 AND grade = $2 AND size1 = $3 AND size2 = $4
			AND schedule = $5 AND origin = $6 AND seam_condition = $7 AND location = $8
			AND current_quantity > 0
		ORDER BY in_date, created_at`
	rows, err := r.q.Query(context.Background(), query,
		k.Category, k.Grade, k.Size1, k.Size2, k.Schedule, k.Origin, k.SeamCondition, k.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("list open batches: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

func collectBatches(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
