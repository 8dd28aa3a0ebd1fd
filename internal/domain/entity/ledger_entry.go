package entity

import (
	"encoding/json"
	"time"
)

// Tipos de registro del libro de inventario.
const (
	EntryTypeIN          = "IN"
	EntryTypeOUT         = "OUT"
	EntryTypeADJUSTMENT  = "ADJUSTMENT"
	EntryTypeTRANSFEROUT = "TRANSFER_OUT"
	EntryTypeTRANSFERIN  = "TRANSFER_IN"
	EntryTypeEDIT        = "EDIT" // cambio de campos descriptivos del lote, cantidad 0
)

// LedgerEntry es un registro del libro append-only de inventario. Cada registro
// referencia exactamente un lote y lleva una copia desnormalizada de su clave
// de identidad al momento de escribirse (snapshot histórico, nunca se
// resincroniza). La suma con signo de los registros de un lote (excluyendo
// EDIT) deriva su CurrentQuantity desde cero.
type LedgerEntry struct {
	ID       string
	Type     string
	Quantity int64 // delta con signo: + para IN/ajuste+/TRANSFER_IN, - para OUT/ajuste-/TRANSFER_OUT, 0 para EDIT
	BatchID  string
	ItemKey
	TransferID string // solo en pares TRANSFER_OUT/TRANSFER_IN; enlaza las dos mitades
	Date       time.Time
	Remarks    string
	EntryBy    string
	// Snapshots antes/después de la clave de identidad, solo en registros EDIT.
	OriginalData json.RawMessage
	UpdatedData  json.RawMessage
	CreatedAt    time.Time
}

// IsQuantityBearing indica si el registro afecta la cantidad del lote.
func (e *LedgerEntry) IsQuantityBearing() bool {
	return e.Type != EntryTypeEDIT
}
