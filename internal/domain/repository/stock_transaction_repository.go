package repository

import (
	"context"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// StockTransactionRepository puerto del log append-only de asientos de stock.
// Fuente opcional: si el log no existe (tabla ausente), las lecturas retornan
// domain.ErrTransactionLogUnavailable y el motor degrada a totales derivados
// solo de pedidos. Append nunca degrada: una escritura que no puede
// persistirse es un error del caller.
type StockTransactionRepository interface {
	// FetchByAgent devuelve los asientos del agente en orden de creación;
	// itemCode vacío = todos los ítems.
	FetchByAgent(ctx context.Context, agentID, itemCode string) ([]entity.StockTransaction, error)
	// FetchByReference devuelve los asientos ligados a un documento origen.
	FetchByReference(ctx context.Context, referenceType, referenceID string) ([]entity.StockTransaction, error)
	// Append persiste un asiento nuevo e inmutable.
	Append(ctx context.Context, tx *entity.StockTransaction) error
}
