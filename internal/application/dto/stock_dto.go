package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// OrderLineRequest línea de pedido tal como llega del caller. Los flags de
// trade return ausentes quedan en false al decodificar (resueltos una sola
// vez en la frontera, no dentro del cálculo).
type OrderLineRequest struct {
	OrderType         string          `json:"order_type"`
	ItemCode          string          `json:"item_code"`
	Quantity          decimal.Decimal `json:"quantity"`
	IsTradeReturn     bool            `json:"is_trade_return"`
	TradeReturnIsGood bool            `json:"trade_return_is_good"`
}

// ToEntity convierte la línea al value object del dominio.
func (r OrderLineRequest) ToEntity() entity.OrderLine {
	return entity.OrderLine{
		OrderType:         r.OrderType,
		ItemCode:          r.ItemCode,
		Quantity:          r.Quantity,
		IsTradeReturn:     r.IsTradeReturn,
		TradeReturnIsGood: r.TradeReturnIsGood,
	}
}

// ValidateStockRequest body para POST /api/stock/validate.
type ValidateStockRequest struct {
	AgentID string             `json:"agent_id"`
	Lines   []OrderLineRequest `json:"lines"`
}

// RecordMovementRequest body para POST /api/stock/movements.
type RecordMovementRequest struct {
	AgentID       string          `json:"agent_id"`
	ItemCode      string          `json:"item_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	Type          string          `json:"type"` // in, out, adjustment, invoice_sale, invoice_return
	ReferenceType string          `json:"reference_type,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// RecordOrderRequest body para registrar/reversar los movimientos de un pedido.
type RecordOrderRequest struct {
	OrderID string             `json:"order_id"`
	OrderNo string             `json:"order_no,omitempty"`
	AgentID string             `json:"agent_id"`
	Lines   []OrderLineRequest `json:"lines"`
}

// ToEntity convierte el pedido al value object del dominio.
func (r RecordOrderRequest) ToEntity() *entity.Order {
	lines := make([]entity.OrderLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, l.ToEntity())
	}
	return &entity.Order{ID: r.OrderID, OrderNo: r.OrderNo, AgentID: r.AgentID, Lines: lines}
}

// StockTotalsResponse totales derivados de un (agente, ítem).
type StockTotalsResponse struct {
	AgentID    string          `json:"agent_id"`
	ItemCode   string          `json:"item_code"`
	StockIn    decimal.Decimal `json:"stock_in"`
	StockOut   decimal.Decimal `json:"stock_out"`
	ReturnGood decimal.Decimal `json:"return_good"`
	ReturnBad  decimal.Decimal `json:"return_bad"` // solo display, no entra al disponible
	Available  decimal.Decimal `json:"available"`
}

// StockTransactionResponse asiento registrado en el log.
type StockTransactionResponse struct {
	ID              string          `json:"id"`
	AgentID         string          `json:"agent_id"`
	ItemCode        string          `json:"item_code"`
	TransactionType string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	StockBefore     decimal.Decimal `json:"stock_before"`
	StockAfter      decimal.Decimal `json:"stock_after"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by"`
}

// FromTransaction arma la respuesta desde la entidad.
func FromTransaction(tx *entity.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		ID:              tx.ID,
		AgentID:         tx.AgentID,
		ItemCode:        tx.ItemCode,
		TransactionType: tx.TransactionType,
		Quantity:        tx.Quantity,
		ReferenceType:   tx.ReferenceType,
		ReferenceID:     tx.ReferenceID,
		StockBefore:     tx.StockBefore,
		StockAfter:      tx.StockAfter,
		Notes:           tx.Notes,
		CreatedBy:       tx.CreatedBy,
	}
}
