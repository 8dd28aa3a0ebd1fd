package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

// ReconciliationUseCase es el motor de reconciliación: las operaciones que
// leen el estado de lotes/libro, validan contra los invariantes y confirman
// actualizaciones coordinadas a ambos en un solo commit atómico. Cada
// operación toca a lo más un lote y agrega a lo más dos registros (Transfer
// es el único caso de dos registros y dos lotes: origen y destino recién
// creado).
type ReconciliationUseCase struct {
	txRunner  TxRunner
	batchRepo repository.BatchRepository
	notifier  notifier
}

// NewReconciliationUseCase construye el motor.
func NewReconciliationUseCase(txRunner TxRunner, batchRepo repository.BatchRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{txRunner: txRunner, batchRepo: batchRepo}
}

// Subscribe registra un listener que recibe el snapshot completo de stock
// tras cada operación confirmada.
func (uc *ReconciliationUseCase) Subscribe(fn func(StockSnapshot)) {
	uc.notifier.subscribe(fn)
}

// afterCommit recalcula y publica el snapshot. Fallos de lectura aquí no
// afectan la operación ya confirmada.
func (uc *ReconciliationUseCase) afterCommit() {
	batches, err := uc.batchRepo.List()
	if err != nil {
		return
	}
	uc.notifier.publish(StockSnapshot{Batches: batches, Rows: inventory.Aggregate(batches)})
}

// ReceiveInput entrada para una recepción (IN): crea un lote nuevo.
type ReceiveInput struct {
	Key      entity.ItemKey
	Quantity int64
	Date     time.Time
	Remarks  string
	EntryBy  string
}

// Receive crea un lote con InitialQuantity = CurrentQuantity = Quantity y
// agrega el registro IN correspondiente en la misma transacción. Devuelve el
// ID del lote creado.
func (uc *ReconciliationUseCase) Receive(ctx context.Context, in ReceiveInput) (string, error) {
	if !in.Key.IsComplete() || strings.TrimSpace(in.EntryBy) == "" || in.Date.IsZero() {
		return "", domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return "", fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidQuantity)
	}

	now := time.Now()
	batch := &entity.Batch{
		ID:              uuid.New().String(),
		ItemKey:         in.Key,
		InitialQuantity: in.Quantity,
		CurrentQuantity: in.Quantity,
		InDate:          in.Date,
		Remarks:         in.Remarks,
		EntryBy:         strings.TrimSpace(in.EntryBy),
		CreatedAt:       now,
	}
	err := uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, ledgerRepo repository.LedgerRepository) error {
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:        uuid.New().String(),
			Type:      entity.EntryTypeIN,
			Quantity:  in.Quantity,
			BatchID:   batch.ID,
			ItemKey:   in.Key,
			Date:      in.Date,
			Remarks:   in.Remarks,
			EntryBy:   batch.EntryBy,
			CreatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}
	uc.afterCommit()
	return batch.ID, nil
}

// IssueInput entrada para una salida (OUT) contra un lote concreto.
type IssueInput struct {
	BatchID  string
	Quantity int64
	Date     time.Time
	Remarks  string
	EntryBy  string
}

// Issue descuenta Quantity del lote seleccionado y agrega el registro OUT.
// El lote se relee con bloqueo dentro de la transacción; la selección FIFO
// es una sugerencia del caller (ver OpenBatches), no se impone aquí.
func (uc *ReconciliationUseCase) Issue(ctx context.Context, in IssueInput) error {
	if in.BatchID == "" {
		return domain.ErrNoBatchSelected
	}
	if strings.TrimSpace(in.EntryBy) == "" || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidQuantity)
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
		if in.Quantity > batch.CurrentQuantity {
			return fmt.Errorf("%w: solo hay %d disponibles", domain.ErrInsufficientStock, batch.CurrentQuantity)
		}
		if err := batchRepo.ApplyDelta(batch.ID, -in.Quantity); err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:        uuid.New().String(),
			Type:      entity.EntryTypeOUT,
			Quantity:  -in.Quantity,
			BatchID:   batch.ID,
			ItemKey:   batch.ItemKey,
			Date:      in.Date,
			Remarks:   in.Remarks,
			EntryBy:   strings.TrimSpace(in.EntryBy),
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}
	uc.afterCommit()
	return nil
}

// AdjustInput entrada para un ajuste con signo sobre un lote.
type AdjustInput struct {
	BatchID string
	Delta   int64
	Remarks string
	EntryBy string
}

// Adjust aplica un delta con signo al lote y agrega el registro ADJUSTMENT
// con el mismo signo. Rechaza ajustes que dejarían stock negativo.
func (uc *ReconciliationUseCase) Adjust(ctx context.Context, in AdjustInput) error {
	if in.BatchID == "" {
		return domain.ErrNoBatchSelected
	}
	if in.Delta == 0 {
		return domain.ErrInvalidQuantity
	}
	remarks := in.Remarks
	if remarks == "" {
		remarks = "Quantity adjustment"
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
		if batch.CurrentQuantity+in.Delta < 0 {
			return domain.ErrNegativeStock
		}
		if err := batchRepo.ApplyDelta(batch.ID, in.Delta); err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:        uuid.New().String(),
			Type:      entity.EntryTypeADJUSTMENT,
			Quantity:  in.Delta,
			BatchID:   batch.ID,
			ItemKey:   batch.ItemKey,
			Date:      now,
			Remarks:   remarks,
			EntryBy:   strings.TrimSpace(in.EntryBy),
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}
	uc.afterCommit()
	return nil
}

// TransferInput entrada para un traslado entre ubicaciones.
type TransferInput struct {
	SourceBatchID       string
	DestinationLocation string
	Quantity            int64
	Remarks             string
	EntryBy             string
}

// TransferResult identifica el lote destino creado y el enlace entre las dos
// mitades del traslado.
type TransferResult struct {
	DestinationBatchID string
	TransferID         string
}

// Transfer descuenta del lote origen, crea un lote nuevo en la ubicación
// destino (copia de la clave de identidad con la ubicación cambiada,
// InitialQuantity = CurrentQuantity = Quantity) y agrega los registros
// TRANSFER_OUT/TRANSFER_IN enlazados por un mismo TransferID, todo en una
// sola transacción.
func (uc *ReconciliationUseCase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	if in.SourceBatchID == "" {
		return nil, domain.ErrNoBatchSelected
	}
	if in.DestinationLocation == "" || strings.TrimSpace(in.EntryBy) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidQuantity)
	}

	now := time.Now()
	entryBy := strings.TrimSpace(in.EntryBy)
	res := &TransferResult{TransferID: uuid.New().String()}

	err := uc.txRunner.Run(ctx, func(batchRepo repository.BatchRepository, ledgerRepo repository.LedgerRepository) error {
		source, err := batchRepo.GetForUpdate(in.SourceBatchID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if source.Location == in.DestinationLocation {
			return domain.ErrSameLocation
		}
		if in.Quantity > source.CurrentQuantity {
			return fmt.Errorf("%w: solo hay %d disponibles", domain.ErrInsufficientStock, source.CurrentQuantity)
		}

		if err := batchRepo.ApplyDelta(source.ID, -in.Quantity); err != nil {
			return err
		}

		destKey := source.ItemKey
		destKey.Location = in.DestinationLocation
		destRemarks := in.Remarks
		if destRemarks == "" {
			destRemarks = fmt.Sprintf("Transferred from %s", source.Location)
		}
		dest := &entity.Batch{
			ID:              uuid.New().String(),
			ItemKey:         destKey,
			InitialQuantity: in.Quantity,
			CurrentQuantity: in.Quantity,
			InDate:          now,
			Remarks:         destRemarks,
			EntryBy:         entryBy,
			CreatedAt:       now,
		}
		if err := batchRepo.Create(dest); err != nil {
			return err
		}
		res.DestinationBatchID = dest.ID

		outRemarks := in.Remarks
		if outRemarks == "" {
			outRemarks = fmt.Sprintf("Transfer OUT to %s", in.DestinationLocation)
		}
		if err := ledgerRepo.Create(&entity.LedgerEntry{
			ID:         uuid.New().String(),
			Type:       entity.EntryTypeTRANSFEROUT,
			Quantity:   -in.Quantity,
			BatchID:    source.ID,
			ItemKey:    source.ItemKey,
			TransferID: res.TransferID,
			Date:       now,
			Remarks:    outRemarks,
			EntryBy:    entryBy,
			CreatedAt:  now,
		}); err != nil {
			return err
		}

		inRemarks := in.Remarks
		if inRemarks == "" {
			inRemarks = fmt.Sprintf("Transfer IN from %s", source.Location)
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:         uuid.New().String(),
			Type:       entity.EntryTypeTRANSFERIN,
			Quantity:   in.Quantity,
			BatchID:    dest.ID,
			ItemKey:    destKey,
			TransferID: res.TransferID,
			Date:       now,
			Remarks:    inRemarks,
			EntryBy:    entryBy,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.afterCommit()
	return res, nil
}

// OpenBatches devuelve el pool de selección para salidas: lotes que coinciden
// con la clave de identidad y tienen stock, el de InDate más antiguo primero.
func (uc *ReconciliationUseCase) OpenBatches(key entity.ItemKey) ([]*entity.Batch, error) {
	if !key.IsComplete() {
		return nil, domain.ErrInvalidInput
	}
	return uc.batchRepo.ListOpenByKey(key)
}
