package repository

import "github.com/rolexfittings/pipestock-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia para lotes. Toda mutación
// de cantidad debe ejecutarse dentro de la misma transacción que el registro
// de inventario correspondiente (ver TxRunner).
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) para que la
	// secuencia leer-decidir-escribir sea segura frente a escrituras concurrentes.
	GetForUpdate(id string) (*entity.Batch, error)
	// ApplyDelta suma delta a CurrentQuantity con guarda de no-negatividad.
	// Devuelve domain.ErrNegativeStock si el resultado sería negativo.
	ApplyDelta(id string, delta int64) error
	// SetQuantities fija ambas cantidades (solo correcciones del motor de
	// reconciliación: editar/eliminar transacciones).
	SetQuantities(id string, initial, current int64) error
	// SetIdentity actualiza los campos descriptivos del lote, nunca cantidades.
	SetIdentity(id string, key entity.ItemKey) error
	List() ([]*entity.Batch, error)
	// ListOpenByKey devuelve los lotes con stock (>0) que coinciden con la
	// clave de identidad, el más antiguo por InDate primero (sugerencia FIFO).
	ListOpenByKey(key entity.ItemKey) ([]*entity.Batch, error)
}
