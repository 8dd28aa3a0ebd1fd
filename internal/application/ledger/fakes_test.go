package ledger_test

import (
	"context"
	"sort"
	"time"

	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria: repositorios de lotes y libro más un TxRunner
// que simula el commit atómico con snapshot/restore. Si la función de la
// "transacción" falla, el estado vuelve al snapshot, igual que un ROLLBACK.
// ──────────────────────────────────────────────────────────────────────────────

type fakeBatchRepo struct {
	batches map[string]*entity.Batch
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{batches: make(map[string]*entity.Batch)}
}

func (r *fakeBatchRepo) Create(batch *entity.Batch) error {
	if _, ok := r.batches[batch.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *batch
	r.batches[batch.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.Batch, error) {
	b, ok := r.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBatchRepo) GetForUpdate(id string) (*entity.Batch, error) {
	return r.GetByID(id)
}

func (r *fakeBatchRepo) ApplyDelta(id string, delta int64) error {
	b, ok := r.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	if b.CurrentQuantity+delta < 0 {
		return domain.ErrNegativeStock
	}
	b.CurrentQuantity += delta
	return nil
}

func (r *fakeBatchRepo) SetQuantities(id string, initial, current int64) error {
	b, ok := r.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.InitialQuantity = initial
	b.CurrentQuantity = current
	return nil
}

func (r *fakeBatchRepo) SetIdentity(id string, key entity.ItemKey) error {
	b, ok := r.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.ItemKey = key
	return nil
}

func (r *fakeBatchRepo) List() ([]*entity.Batch, error) {
	out := make([]*entity.Batch, 0, len(r.batches))
	for _, b := range r.batches {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBatchRepo) ListOpenByKey(key entity.ItemKey) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.batches {
		if b.CurrentQuantity > 0 && b.ItemKey.String() == key.String() {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].InDate.Equal(out[j].InDate) {
			return out[i].InDate.Before(out[j].InDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{}
}

func (r *fakeLedgerRepo) Create(entry *entity.LedgerEntry) error {
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLedgerRepo) Update(id string, quantity int64, date time.Time, remarks string) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.Quantity = quantity
			e.Date = date
			e.Remarks = remarks
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *fakeLedgerRepo) Delete(id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *fakeLedgerRepo) List(limit, offset int) ([]*entity.LedgerEntry, error) {
	out := make([]*entity.LedgerEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		cp := *r.entries[i]
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLedgerRepo) ListByBatch(batchID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.BatchID == batchID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los repos compartidos a fn y restaura el snapshot si fn
// devuelve error, simulando el rollback de la transacción real.
type fakeTxRunner struct {
	batches *fakeBatchRepo
	ledger  *fakeLedgerRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	batchRepo repository.BatchRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	batchSnap := make(map[string]*entity.Batch, len(tx.batches.batches))
	for id, b := range tx.batches.batches {
		cp := *b
		batchSnap[id] = &cp
	}
	ledgerSnap := make([]*entity.LedgerEntry, len(tx.ledger.entries))
	for i, e := range tx.ledger.entries {
		cp := *e
		ledgerSnap[i] = &cp
	}

	if err := fn(tx.batches, tx.ledger); err != nil {
		tx.batches.batches = batchSnap
		tx.ledger.entries = ledgerSnap
		return err
	}
	return nil
}
