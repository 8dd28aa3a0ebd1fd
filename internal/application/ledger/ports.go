package ledger

import (
	"context"

	"github.com/rolexfittings/pipestock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Es la primitiva de commit atómico
// multi-documento: el registro del libro y la mutación del lote se confirman
// juntos o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
