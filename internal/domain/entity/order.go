package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido que alimentan el libro de stock.
const (
	OrderTypeDO  = "DO"  // Delivery Order: entrada de stock al agente
	OrderTypeINV = "INV" // Invoice: venta de salida (o devolución si trade return)
	OrderTypeCN  = "CN"  // Credit Note: documento de devolución/ajuste
)

// OrderLine línea inmutable de un pedido. Una vez persistida nunca se muta:
// las correcciones se hacen con pedidos nuevos o con reversas.
// Los flags de trade return se resuelven una sola vez al ingestar la línea
// (los nulos del origen quedan en false aquí, nunca dentro del cálculo).
type OrderLine struct {
	OrderType         string
	ItemCode          string
	Quantity          decimal.Decimal // magnitud >= 0
	IsTradeReturn     bool
	TradeReturnIsGood bool // en INV solo aplica si IsTradeReturn; en CN aplica siempre
}

// Order pedido inmutable con sus líneas tipadas.
type Order struct {
	ID        string
	OrderNo   string
	AgentID   string
	Lines     []OrderLine
	CreatedAt time.Time
}
