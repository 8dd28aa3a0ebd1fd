package ledger

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

// Correcciones del libro: las dos únicas excepciones al append-only
// (reescritura y eliminación de un registro) más la edición de campos
// descriptivos del lote. Cada una re-deriva CurrentQuantity del lote dentro
// de la misma transacción que toca el registro.

// EditTransactionInput entrada para reescribir cantidad/fecha/remarks de un
// registro existente.
type EditTransactionInput struct {
	EntryID  string
	Quantity int64
	Date     time.Time
	Remarks  string
}

// EditTransaction aplica diff = nuevaCantidad - cantidadOriginal al lote
// referenciado (releído con bloqueo dentro de la transacción) y reescribe el
// registro. Si el registro es IN, InitialQuantity absorbe el mismo diff para
// que la derivación cantidad-desde-registros siga cerrando. Lote ausente es
// error duro: la operación aborta completa.
func (uc *ReconciliationUseCase) EditTransaction(ctx context.Context, in EditTransactionInput) error {
	if in.EntryID == "" || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, ledgerRepo repository.LedgerRepository) error {
		entry, err := ledgerRepo.GetByID(in.EntryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrEntryNotFound
		}
		if entry.Type == entity.EntryTypeEDIT {
			return domain.ErrImmutableEntry
		}

		batch, err := batchRepo.GetForUpdate(entry.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}

		diff := in.Quantity - entry.Quantity
		newCurrent := batch.CurrentQuantity + diff
		if newCurrent < 0 {
			return domain.ErrNegativeStock
		}
		newInitial := batch.InitialQuantity
		if entry.Type == entity.EntryTypeIN {
			newInitial += diff
		}

		if err := batchRepo.SetQuantities(batch.ID, newInitial, newCurrent); err != nil {
			return err
		}
		return ledgerRepo.Update(entry.ID, in.Quantity, in.Date, in.Remarks)
	})
	if err != nil {
		return err
	}
	uc.afterCommit()
	return nil
}

// DeleteTransactionResult resultado de eliminar un registro. BatchMissing
// marca el éxito degradado: el lote ya no existía, el registro huérfano se
// eliminó igualmente y el caller debe avisar al usuario.
type DeleteTransactionResult struct {
	BatchMissing bool
}

// DeleteTransaction deshace el efecto original del registro sobre el lote
// (CurrentQuantity - cantidad del registro) y lo elimina, en una sola
// transacción. Si revertir dejaría stock negativo la eliminación se rechaza:
// primero hay que revertir las deducciones posteriores. Registros IN
// descuentan también InitialQuantity.
func (uc *ReconciliationUseCase) DeleteTransaction(ctx context.Context, entryID string) (*DeleteTransactionResult, error) {
	if entryID == "" {
		return nil, domain.ErrInvalidInput
	}

	res := &DeleteTransactionResult{}
	err := uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, ledgerRepo repository.LedgerRepository) error {
		entry, err := ledgerRepo.GetByID(entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrEntryNotFound
		}

		batch, err := batchRepo.GetForUpdate(entry.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			// Éxito degradado: el lote fue eliminado por otra vía; borrar el
			// registro huérfano y avisar en lugar de fallar.
			res.BatchMissing = true
			return ledgerRepo.Delete(entry.ID)
		}

		reverted := batch.CurrentQuantity - entry.Quantity
		if reverted < 0 {
			return domain.ErrNegativeStock
		}
		newInitial := batch.InitialQuantity
		if entry.Type == entity.EntryTypeIN {
			newInitial -= entry.Quantity
		}

		if err := batchRepo.SetQuantities(batch.ID, newInitial, reverted); err != nil {
			return err
		}
		return ledgerRepo.Delete(entry.ID)
	})
	if err != nil {
		return nil, err
	}
	uc.afterCommit()
	return res, nil
}

// EditBatchInput entrada para editar los campos descriptivos de un lote.
// Las cantidades nunca se tocan por esta vía.
type EditBatchInput struct {
	BatchID string
	Key     entity.ItemKey
	Remarks string
	EntryBy string
}

// EditBatch actualiza la clave de identidad del lote y agrega un registro
// EDIT de cantidad cero con los snapshots antes/después para auditoría,
// ambos en la misma transacción.
func (uc *ReconciliationUseCase) EditBatch(ctx context.Context, in EditBatchInput) error {
	if in.BatchID == "" {
		return domain.ErrNoBatchSelected
	}
	if !in.Key.IsComplete() {
		return domain.ErrInvalidInput
	}
	remarks := in.Remarks
	if remarks == "" {
		remarks = "Batch details updated"
	}
	entryBy := strings.TrimSpace(in.EntryBy)
	if entryBy == "" {
		entryBy = "System"
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, ledgerRepo repository.LedgerRepository) error {
		batch, err := batchRepo.GetForUpdate(in.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}

		original, err := json.Marshal(batch.ItemKey)
		if err != nil {
			return err
		}
		updated, err := json.Marshal(in.Key)
		if err != nil {
			return err
		}

		if err := batchRepo.SetIdentity(batch.ID, in.Key); err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:           uuid.New().String(),
			Type:         entity.EntryTypeEDIT,
			Quantity:     0,
			BatchID:      batch.ID,
			ItemKey:      in.Key,
			Date:         now,
			Remarks:      remarks,
			EntryBy:      entryBy,
			OriginalData: original,
			UpdatedData:  updated,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return err
	}
	uc.afterCommit()
	return nil
}
