package repository

import (
	"time"

	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para el libro de
// inventario. El libro es append-only salvo dos correcciones explícitas:
// Update (reescribe cantidad/fecha/remarks) y Delete (elimina el registro);
// ambas se coordinan con la re-derivación de cantidades del lote en el motor
// de reconciliación.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	Update(id string, quantity int64, date time.Time, remarks string) error
	Delete(id string) error
	// List devuelve registros más recientes primero.
	List(limit, offset int) ([]*entity.LedgerEntry, error)
	ListByBatch(batchID string) ([]*entity.LedgerEntry, error)
}
