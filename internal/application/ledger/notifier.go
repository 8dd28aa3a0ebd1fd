package ledger

import (
	"sync"

	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
	"github.com/rolexfittings/pipestock-api/internal/domain/inventory"
)

// StockSnapshot es el estado completo publicado a los suscriptores tras cada
// operación confirmada: los lotes vivos y la vista agregada derivada de ellos.
type StockSnapshot struct {
	Batches []*entity.Batch
	Rows    []inventory.StockRow
}

// notifier implementa el modelo de suscripción: cada cambio confirmado emite
// el snapshot completo; los consumidores son funciones puras sobre snapshots,
// sin estado incremental.
type notifier struct {
	mu        sync.RWMutex
	listeners []func(StockSnapshot)
}

func (n *notifier) subscribe(fn func(StockSnapshot)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

func (n *notifier) publish(snap StockSnapshot) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, fn := range n.listeners {
		fn(snap)
	}
}
