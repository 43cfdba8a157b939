package repository

import (
	"context"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// OrderLineRepository puerto de lectura de líneas de pedido unidas a su
// pedido padre (de ahí salen order_type y agent_id). Fuente obligatoria
// del motor de stock.
type OrderLineRepository interface {
	// FetchByAgent devuelve las líneas del agente; itemCode vacío = todos los ítems.
	FetchByAgent(ctx context.Context, agentID, itemCode string) ([]entity.OrderLine, error)
}
