// Package memory implementa los puertos del motor de stock sobre estructuras
// en memoria. Se usa en tests y en el modo DB_DRIVER=memory (demos sin
// PostgreSQL). No persiste nada entre arranques.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var (
	_ repository.OrderLineRepository        = (*OrderLineStore)(nil)
	_ repository.StockTransactionRepository = (*StockTransactionStore)(nil)
)

// OrderLineStore líneas de pedido en memoria, indexadas por agente.
type OrderLineStore struct {
	mu    sync.RWMutex
	lines map[string][]entity.OrderLine // agentID -> líneas
}

// NewOrderLineStore construye el almacén vacío.
func NewOrderLineStore() *OrderLineStore {
	return &OrderLineStore{lines: make(map[string][]entity.OrderLine)}
}

// AddOrder registra las líneas de un pedido bajo su agente.
func (s *OrderLineStore) AddOrder(order *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[order.AgentID] = append(s.lines[order.AgentID], order.Lines...)
}

// AddLines registra líneas sueltas para un agente.
func (s *OrderLineStore) AddLines(agentID string, lines ...entity.OrderLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[agentID] = append(s.lines[agentID], lines...)
}

// FetchByAgent devuelve las líneas del agente; itemCode vacío = todas.
func (s *OrderLineStore) FetchByAgent(_ context.Context, agentID, itemCode string) ([]entity.OrderLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.OrderLine
	for _, line := range s.lines[agentID] {
		if itemCode != "" && line.ItemCode != itemCode {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// StockTransactionStore log append-only en memoria. Con SetUnavailable(true)
// simula la ausencia de la tabla (lecturas devuelven
// domain.ErrTransactionLogUnavailable).
type StockTransactionStore struct {
	mu          sync.RWMutex
	txs         []entity.StockTransaction
	unavailable bool
}

// NewStockTransactionStore construye el log vacío.
func NewStockTransactionStore() *StockTransactionStore {
	return &StockTransactionStore{}
}

// SetUnavailable activa o desactiva la simulación de log ausente.
func (s *StockTransactionStore) SetUnavailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = v
}

// FetchByAgent devuelve los asientos del agente en orden de inserción.
func (s *StockTransactionStore) FetchByAgent(_ context.Context, agentID, itemCode string) ([]entity.StockTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return nil, domain.ErrTransactionLogUnavailable
	}
	var out []entity.StockTransaction
	for _, tx := range s.txs {
		if tx.AgentID != agentID {
			continue
		}
		if itemCode != "" && tx.ItemCode != itemCode {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// FetchByReference devuelve los asientos ligados a un documento origen.
func (s *StockTransactionStore) FetchByReference(_ context.Context, referenceType, referenceID string) ([]entity.StockTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return nil, domain.ErrTransactionLogUnavailable
	}
	var out []entity.StockTransaction
	for _, tx := range s.txs {
		if tx.ReferenceType == referenceType && tx.ReferenceID == referenceID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Append agrega un asiento al log.
func (s *StockTransactionStore) Append(_ context.Context, tx *entity.StockTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return domain.ErrTransactionLogUnavailable
	}
	s.txs = append(s.txs, *tx)
	return nil
}

// Len cantidad de asientos en el log (tests).
func (s *StockTransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}
