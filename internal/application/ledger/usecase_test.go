package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolexfittings/pipestock-api/internal/application/ledger"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testKey(location string) entity.ItemKey {
	return entity.ItemKey{
		Category:      "LR ELBOW",
		Grade:         "304",
		Size1:         `2"`,
		Schedule:      "S40",
		Origin:        "IMPORTED",
		SeamCondition: "SEAMLESS",
		Location:      location,
	}
}

// newTestEngine construye el motor sobre repos en memoria compartidos con el
// TxRunner, igual que en producción comparten el pool.
func newTestEngine() (*ledger.ReconciliationUseCase, *fakeBatchRepo, *fakeLedgerRepo) {
	batches := newFakeBatchRepo()
	entries := newFakeLedgerRepo()
	uc := ledger.NewReconciliationUseCase(&fakeTxRunner{batches: batches, ledger: entries}, batches)
	return uc, batches, entries
}

func receive(t *testing.T, uc *ledger.ReconciliationUseCase, key entity.ItemKey, qty int64) string {
	t.Helper()
	id, err := uc.Receive(context.Background(), ledger.ReceiveInput{
		Key:      key,
		Quantity: qty,
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Remarks:  "Heat no. 8841",
		EntryBy:  "Suresh",
	})
	require.NoError(t, err, "la recepción de prueba debe confirmarse")
	return id
}

// entryOfType devuelve el único registro del tipo dado para un lote.
func entryOfType(t *testing.T, entries *fakeLedgerRepo, batchID, entryType string) *entity.LedgerEntry {
	t.Helper()
	var found *entity.LedgerEntry
	list, err := entries.ListByBatch(batchID)
	require.NoError(t, err)
	for _, e := range list {
		if e.Type == entryType {
			require.Nil(t, found, "debe haber exactamente un registro %s para el lote", entryType)
			found = e
		}
	}
	require.NotNil(t, found, "debe existir un registro %s para el lote", entryType)
	return found
}

// ──────────────────────────────────────────────────────────────────────────────
// Receive
// ──────────────────────────────────────────────────────────────────────────────

func TestReceive_CreaLoteYRegistroIN(t *testing.T) {
	uc, batches, entries := newTestEngine()

	id := receive(t, uc, testKey("TALOJA GODOWN"), 100)

	batch, err := batches.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, int64(100), batch.InitialQuantity)
	assert.Equal(t, int64(100), batch.CurrentQuantity, "el lote nace con CurrentQuantity = cantidad recibida")
	assert.Equal(t, "TALOJA GODOWN", batch.Location)
	assert.Equal(t, "Suresh", batch.EntryBy)

	in := entryOfType(t, entries, id, entity.EntryTypeIN)
	assert.Equal(t, int64(100), in.Quantity)
	assert.Equal(t, batch.ItemKey, in.ItemKey, "el registro lleva el snapshot de la clave de identidad")
	assert.Empty(t, in.TransferID)
}

func TestReceive_ValidaEntrada(t *testing.T) {
	uc, _, _ := newTestEngine()
	ctx := context.Background()

	incomplete := testKey("TALOJA GODOWN")
	incomplete.Grade = ""
	_, err := uc.Receive(ctx, ledger.ReceiveInput{Key: incomplete, Quantity: 10, Date: time.Now(), EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "clave incompleta debe rechazarse")

	_, err = uc.Receive(ctx, ledger.ReceiveInput{Key: testKey("TALOJA GODOWN"), Quantity: 0, Date: time.Now(), EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad cero debe rechazarse")

	_, err = uc.Receive(ctx, ledger.ReceiveInput{Key: testKey("TALOJA GODOWN"), Quantity: -5, Date: time.Now(), EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad negativa debe rechazarse")

	_, err = uc.Receive(ctx, ledger.ReceiveInput{Key: testKey("TALOJA GODOWN"), Quantity: 10, Date: time.Now()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "EntryBy vacío debe rechazarse")
}

func TestReceive_DobleMedidaRequiereSize2(t *testing.T) {
	uc, _, _ := newTestEngine()

	key := testKey("TALOJA GODOWN")
	key.Category = "CON RED"
	_, err := uc.Receive(context.Background(), ledger.ReceiveInput{Key: key, Quantity: 10, Date: time.Now(), EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "CON RED sin Size2 debe rechazarse")

	key.Size2 = `1"`
	_, err = uc.Receive(context.Background(), ledger.ReceiveInput{Key: key, Quantity: 10, Date: time.Now(), EntryBy: "Suresh"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Issue
// ──────────────────────────────────────────────────────────────────────────────

func TestIssue_DescuentaYAgregaOUT(t *testing.T) {
	uc, batches, entries := newTestEngine()
	id := receive(t, uc, testKey("TALOJA GODOWN"), 100)

	err := uc.Issue(context.Background(), ledger.IssueInput{
		BatchID:  id,
		Quantity: 30,
		Date:     time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Remarks:  "Despacho obra Panvel",
		EntryBy:  "Suresh",
	})
	require.NoError(t, err)

	batch, _ := batches.GetByID(id)
	assert.Equal(t, int64(70), batch.CurrentQuantity)
	assert.Equal(t, int64(100), batch.InitialQuantity, "InitialQuantity no cambia en salidas")

	out := entryOfType(t, entries, id, entity.EntryTypeOUT)
	assert.Equal(t, int64(-30), out.Quantity, "OUT se registra con signo negativo")
}

func TestIssue_RechazaStockInsuficiente(t *testing.T) {
	uc, batches, _ := newTestEngine()
	id := receive(t, uc, testKey("TALOJA GODOWN"), 100)

	require.NoError(t, uc.Issue(context.Background(), ledger.IssueInput{
		BatchID: id, Quantity: 30, Date: time.Now(), EntryBy: "Suresh",
	}))

	err := uc.Issue(context.Background(), ledger.IssueInput{
		BatchID: id, Quantity: 80, Date: time.Now(), EntryBy: "Suresh",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.ErrorContains(t, err, "70", "el error debe informar el stock disponible")

	batch, _ := batches.GetByID(id)
	assert.Equal(t, int64(70), batch.CurrentQuantity, "una salida rechazada no toca el lote")
}

func TestIssue_RequiereLoteSeleccionado(t *testing.T) {
	uc, _, _ := newTestEngine()

	err := uc.Issue(context.Background(), ledger.IssueInput{Quantity: 10, Date: time.Now(), EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrNoBatchSelected)

	err = uc.Issue(context.Background(), ledger.IssueInput{BatchID: "no-existe", Quantity: 10, Date: time.Now(), EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_DeltaConSigno(t *testing.T) {
	uc, batches, entries := newTestEngine()
	id := receive(t, uc, testKey("TALOJA GODOWN"), 70)

	require.NoError(t, uc.Adjust(context.Background(), ledger.AdjustInput{
		BatchID: id, Delta: -70, EntryBy: "Suresh",
	}))

	batch, _ := batches.GetByID(id)
	assert.Equal(t, int64(0), batch.CurrentQuantity, "un lote puede quedar exactamente en cero")

	adj := entryOfType(t, entries, id, entity.EntryTypeADJUSTMENT)
	assert.Equal(t, int64(-70), adj.Quantity)
	assert.Equal(t, "Quantity adjustment", adj.Remarks, "sin remarks se usa el texto por defecto")
}

func TestAdjust_RechazaBajoCero(t *testing.T) {
	uc, batches, _ := newTestEngine()
	id := receive(t, uc, testKey("TALOJA GODOWN"), 70)

	require.NoError(t, uc.Adjust(context.Background(), ledger.AdjustInput{BatchID: id, Delta: -70, EntryBy: "Suresh"}))

	err := uc.Adjust(context.Background(), ledger.AdjustInput{BatchID: id, Delta: -1, EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	batch, _ := batches.GetByID(id)
	assert.Equal(t, int64(0), batch.CurrentQuantity)
}

func TestAdjust_RechazaDeltaCero(t *testing.T) {
	uc, _, _ := newTestEngine()
	id := receive(t, uc, testKey("TALOJA GODOWN"), 10)

	err := uc.Adjust(context.Background(), ledger.AdjustInput{BatchID: id, Delta: 0, EntryBy: "Suresh"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transfer
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_CreaLoteDestinoYParEnlazado(t *testing.T) {
	uc, batches, entries := newTestEngine()
	sourceID := receive(t, uc, testKey("TALOJA GODOWN"), 100)

	res, err := uc.Transfer(context.Background(), ledger.TransferInput{
		SourceBatchID:       sourceID,
		DestinationLocation: "DONGRI GODOWN",
		Quantity:            40,
		EntryBy:             "Suresh",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.DestinationBatchID)
	require.NotEmpty(t, res.TransferID)

	source, _ := batches.GetByID(sourceID)
	assert.Equal(t, int64(60), source.CurrentQuantity)
	assert.Equal(t, int64(100), source.InitialQuantity)

	dest, _ := batches.GetByID(res.DestinationBatchID)
	require.NotNil(t, dest)
	assert.Equal(t, int64(40), dest.InitialQuantity)
	assert.Equal(t, int64(40), dest.CurrentQuantity)
	assert.Equal(t, "DONGRI GODOWN", dest.Location)
	assert.Equal(t, source.Category, dest.Category, "el resto de la clave se copia del origen")
	assert.Equal(t, source.Grade, dest.Grade)

	outEntry := entryOfType(t, entries, sourceID, entity.EntryTypeTRANSFEROUT)
	inEntry := entryOfType(t, entries, res.DestinationBatchID, entity.EntryTypeTRANSFERIN)
	assert.Equal(t, int64(-40), outEntry.Quantity)
	assert.Equal(t, int64(40), inEntry.Quantity)
	assert.Equal(t, res.TransferID, outEntry.TransferID)
	assert.Equal(t, res.TransferID, inEntry.TransferID, "las dos mitades comparten el mismo TransferID")
}

func TestTransfer_RechazaMismaUbicacion(t *testing.T) {
	uc, _, _ := newTestEngine()
	sourceID := receive(t, uc, testKey("TALOJA GODOWN"), 100)

	_, err := uc.Transfer(context.Background(), ledger.TransferInput{
		SourceBatchID:       sourceID,
		DestinationLocation: "TALOJA GODOWN",
		Quantity:            10,
		EntryBy:             "Suresh",
	})
	assert.ErrorIs(t, err, domain.ErrSameLocation)
}

func TestTransfer_RechazaStockInsuficiente(t *testing.T) {
	uc, batches, entries := newTestEngine()
	sourceID := receive(t, uc, testKey("TALOJA GODOWN"), 100)

	_, err := uc.Transfer(context.Background(), ledger.TransferInput{
		SourceBatchID:       sourceID,
		DestinationLocation: "DONGRI GODOWN",
		Quantity:            150,
		EntryBy:             "Suresh",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	source, _ := batches.GetByID(sourceID)
	assert.Equal(t, int64(100), source.CurrentQuantity, "un traslado rechazado no toca el origen")
	list, _ := entries.List(0, 0)
	assert.Len(t, list, 1, "solo debe quedar el registro IN de la recepción")
}

// ──────────────────────────────────────────────────────────────────────────────
// OpenBatches y notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestOpenBatches_OrdenFIFOYExcluyeVacios(t *testing.T) {
	uc, _, _ := newTestEngine()
	key := testKey("TALOJA GODOWN")

	older, err := uc.Receive(context.Background(), ledger.ReceiveInput{
		Key: key, Quantity: 50, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), EntryBy: "Suresh",
	})
	require.NoError(t, err)
	newer, err := uc.Receive(context.Background(), ledger.ReceiveInput{
		Key: key, Quantity: 30, Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), EntryBy: "Suresh",
	})
	require.NoError(t, err)
	empty, err := uc.Receive(context.Background(), ledger.ReceiveInput{
		Key: key, Quantity: 10, Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), EntryBy: "Suresh",
	})
	require.NoError(t, err)
	require.NoError(t, uc.Issue(context.Background(), ledger.IssueInput{
		BatchID: empty, Quantity: 10, Date: time.Now(), EntryBy: "Suresh",
	}))

	open, err := uc.OpenBatches(key)
	require.NoError(t, err)
	require.Len(t, open, 2, "los lotes en cero no entran al pool de selección")
	assert.Equal(t, older, open[0].ID, "el lote con InDate más antiguo va primero")
	assert.Equal(t, newer, open[1].ID)
}

func TestSubscribe_PublicaSnapshotTrasCommit(t *testing.T) {
	uc, _, _ := newTestEngine()

	var snapshots []ledger.StockSnapshot
	uc.Subscribe(func(s ledger.StockSnapshot) { snapshots = append(snapshots, s) })

	id := receive(t, uc, testKey("TALOJA GODOWN"), 100)
	require.NoError(t, uc.Issue(context.Background(), ledger.IssueInput{
		BatchID: id, Quantity: 25, Date: time.Now(), EntryBy: "Suresh",
	}))

	require.Len(t, snapshots, 2, "cada operación confirmada publica un snapshot")
	last := snapshots[1]
	require.Len(t, last.Rows, 1)
	assert.Equal(t, int64(75), last.Rows[0].Quantity)
}

func TestSubscribe_NoPublicaEnOperacionRechazada(t *testing.T) {
	uc, _, _ := newTestEngine()
	id := receive(t, uc, testKey("TALOJA GODOWN"), 10)

	var count int
	uc.Subscribe(func(ledger.StockSnapshot) { count++ })

	err := uc.Issue(context.Background(), ledger.IssueInput{
		BatchID: id, Quantity: 50, Date: time.Now(), EntryBy: "Suresh",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, count, "una operación rechazada no genera notificación")
}
