package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.OrderLineRepository = (*OrderLineRepo)(nil)

// OrderLineRepo lectura de líneas de pedido unidas a su pedido padre.
// Usable con pool o tx (Querier).
type OrderLineRepo struct {
	q Querier
}

// NewOrderLineRepository construye el adaptador.
func NewOrderLineRepository(q Querier) *OrderLineRepo {
	return &OrderLineRepo{q: q}
}

// FetchByAgent devuelve las líneas del agente; itemCode vacío = todos los
// ítems. Los flags de trade return nulos en la tabla se resuelven a false
// aquí, en la frontera, nunca dentro del cálculo.
func (r *OrderLineRepo) FetchByAgent(ctx context.Context, agentID, itemCode string) ([]entity.OrderLine, error) {
	query := `
		SELECT o.order_type, l.item_code, l.quantity,
		       COALESCE(l.is_trade_return, false),
		       COALESCE(l.trade_return_is_good, false)
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.agent_id = $1`
	args := []any{agentID}
	if itemCode != "" {
		query += " AND l.item_code = $2"
		args = append(args, itemCode)
	}
	query += " ORDER BY l.id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch order lines: %w", err)
	}
	defer rows.Close()

	var list []entity.OrderLine
	for rows.Next() {
		var line entity.OrderLine
		if err := rows.Scan(&line.OrderType, &line.ItemCode, &line.Quantity,
			&line.IsTradeReturn, &line.TradeReturnIsGood); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, line)
	}
	return list, rows.Err()
}
