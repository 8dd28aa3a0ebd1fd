package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const entryColumns = `id, type, quantity, batch_id, category, grade, size1, size2, schedule,
		origin, seam_condition, location, transfer_id, date, remarks, entry_by,
		original_data, updated_data, created_at`

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un registro del libro.
func (r *LedgerRepo) Create(e *entity.LedgerEntry) error {
	query := `
		INSERT INTO inventory_records (id, type, quantity, batch_id, category, grade, size1, size2,
			schedule, origin, seam_condition, location, transfer_id, date, remarks, entry_by,
			original_data, updated_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	transferID := (*string)(nil)
	if e.TransferID != "" {
		transferID = &e.TransferID
	}
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Type, e.Quantity, e.BatchID, e.Category, e.Grade, e.Size1, e.Size2,
		e.Schedule, e.Origin, e.SeamCondition, e.Location, transferID, e.Date,
		e.Remarks, e.EntryBy, []byte(e.OriginalData), []byte(e.UpdatedData), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var transferID *string
	var original, updated []byte
	err := row.Scan(
		&e.ID, &e.Type, &e.Quantity, &e.BatchID, &e.Category, &e.Grade, &e.Size1, &e.Size2,
		&e.Schedule, &e.Origin, &e.SeamCondition, &e.Location, &transferID, &e.Date,
		&e.Remarks, &e.EntryBy, &original, &updated, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if transferID != nil {
		e.TransferID = *transferID
	}
	e.OriginalData = original
	e.UpdatedData = updated
	return &e, nil
}

// GetByID obtiene un registro por ID. Devuelve nil sin error si no existe.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM inventory_records WHERE id = $1`
	e, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return e, nil
}

// Update reescribe cantidad, fecha y remarks de un registro existente. Una de
// las dos correcciones permitidas sobre el libro append-only.
func (r *LedgerRepo) Update(id string, quantity int64, date time.Time, remarks string) error {
	query := `UPDATE inventory_records SET quantity = $2, date = $3, remarks = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity, date, remarks)
	if err != nil {
		return fmt.Errorf("update ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete elimina un registro. La otra corrección permitida.
func (r *LedgerRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// List devuelve registros, más recientes primero.
func (r *LedgerRepo) List(limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM inventory_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListByBatch devuelve los registros de un lote, más recientes primero.
func (r *LedgerRepo) ListByBatch(batchID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM inventory_records WHERE batch_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list entries by batch: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
