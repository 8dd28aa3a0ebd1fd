package dto

import (
	"encoding/json"
	"time"

	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
)

// ItemKeyFields campos de la clave de identidad tal como viajan por la API.
// Size2 solo aplica a categorías de doble medida.
type ItemKeyFields struct {
	Category      string `json:"category"`
	Grade         string `json:"grade"`
	Size1         string `json:"size1"`
	Size2         string `json:"size2,omitempty"`
	Schedule      string `json:"schedule"`
	Origin        string `json:"origin"`
	SeamCondition string `json:"seam_condition"`
	Location      string `json:"location"`
}

// ToItemKey convierte a la clave de dominio.
func (f ItemKeyFields) ToItemKey() entity.ItemKey {
	return entity.ItemKey{
		Category:      f.Category,
		Grade:         f.Grade,
		Size1:         f.Size1,
		Size2:         f.Size2,
		Schedule:      f.Schedule,
		Origin:        f.Origin,
		SeamCondition: f.SeamCondition,
		Location:      f.Location,
	}
}

func keyFields(k entity.ItemKey) ItemKeyFields {
	return ItemKeyFields{
		Category:      k.Category,
		Grade:         k.Grade,
		Size1:         k.Size1,
		Size2:         k.Size2,
		Schedule:      k.Schedule,
		Origin:        k.Origin,
		SeamCondition: k.SeamCondition,
		Location:      k.Location,
	}
}

// ReceiveRequest body para POST /api/inventory/in.
type ReceiveRequest struct {
	ItemKeyFields
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD
	Remarks  string `json:"remarks,omitempty"`
	EntryBy  string `json:"entry_by"`
}

// IssueRequest body para POST /api/inventory/out.
type IssueRequest struct {
	BatchID  string `json:"batch_id"`
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"`
	Remarks  string `json:"remarks,omitempty"`
	EntryBy  string `json:"entry_by"`
}

// AdjustRequest body para POST /api/inventory/adjustments.
type AdjustRequest struct {
	BatchID string `json:"batch_id"`
	Delta   int64  `json:"delta"`
	Remarks string `json:"remarks,omitempty"`
	EntryBy string `json:"entry_by"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	SourceBatchID       string `json:"source_batch_id"`
	DestinationLocation string `json:"destination_location"`
	Quantity            int64  `json:"quantity"`
	Remarks             string `json:"remarks,omitempty"`
	EntryBy             string `json:"entry_by"`
}

// TransferResponse respuesta de un traslado confirmado.
type TransferResponse struct {
	DestinationBatchID string `json:"destination_batch_id"`
	TransferID         string `json:"transfer_id"`
}

// EditTransactionRequest body para PUT /api/inventory/records/:id.
type EditTransactionRequest struct {
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"`
	Remarks  string `json:"remarks"`
}

// EditBatchRequest body para PUT /api/batches/:id. Solo campos descriptivos.
type EditBatchRequest struct {
	ItemKeyFields
	Remarks string `json:"remarks,omitempty"`
	EntryBy string `json:"entry_by,omitempty"`
}

// BatchResponse representación de un lote en la API.
type BatchResponse struct {
	ID string `json:"id"`
	ItemKeyFields
	InitialQuantity int64  `json:"initial_quantity"`
	CurrentQuantity int64  `json:"current_quantity"`
	InDate          string `json:"in_date"`
	Remarks         string `json:"remarks,omitempty"`
	EntryBy         string `json:"entry_by"`
}

// FromBatch convierte la entidad a su representación API.
func FromBatch(b *entity.Batch) BatchResponse {
	return BatchResponse{
		ID:              b.ID,
		ItemKeyFields:   keyFields(b.ItemKey),
		InitialQuantity: b.InitialQuantity,
		CurrentQuantity: b.CurrentQuantity,
		InDate:          b.InDate.Format("2006-01-02"),
		Remarks:         b.Remarks,
		EntryBy:         b.EntryBy,
	}
}

// LedgerEntryResponse representación de un registro del libro en la API.
type LedgerEntryResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Quantity int64  `json:"quantity"`
	BatchID  string `json:"batch_id"`
	ItemKeyFields
	TransferID   string          `json:"transfer_id,omitempty"`
	Date         string          `json:"date"`
	Remarks      string          `json:"remarks,omitempty"`
	EntryBy      string          `json:"entry_by"`
	OriginalData json.RawMessage `json:"original_data,omitempty"`
	UpdatedData  json.RawMessage `json:"updated_data,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FromLedgerEntry convierte la entidad a su representación API.
func FromLedgerEntry(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:            e.ID,
		Type:          e.Type,
		Quantity:      e.Quantity,
		BatchID:       e.BatchID,
		ItemKeyFields: keyFields(e.ItemKey),
		TransferID:    e.TransferID,
		Date:          e.Date.Format("2006-01-02"),
		Remarks:       e.Remarks,
		EntryBy:       e.EntryBy,
		OriginalData:  e.OriginalData,
		UpdatedData:   e.UpdatedData,
		CreatedAt:     e.CreatedAt,
	}
}
