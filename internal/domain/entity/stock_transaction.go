package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de stock. La dirección vive en el tipo, nunca en el
// signo de la cantidad.
const (
	TransactionTypeIn            = "in"
	TransactionTypeOut           = "out"
	TransactionTypeAdjustment    = "adjustment"
	TransactionTypeInvoiceSale   = "invoice_sale"
	TransactionTypeInvoiceReturn = "invoice_return"
)

// Tipos de referencia hacia el documento que originó el asiento.
const (
	ReferenceTypeOrder         = "order"
	ReferenceTypeOrderReversal = "order_reversal"
	ReferenceTypeManual        = "manual"
)

// IsValidTransactionType reporta si t es uno de los tipos conocidos.
func IsValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeIn, TransactionTypeOut, TransactionTypeAdjustment,
		TransactionTypeInvoiceSale, TransactionTypeInvoiceReturn:
		return true
	}
	return false
}

// TransactionDirection devuelve +1 para tipos que suman stock y -1 para los
// que restan. "adjustment" se trata como entrada (la magnitud es absoluta;
// una corrección de salida usa "out").
func TransactionDirection(t string) int {
	switch t {
	case TransactionTypeOut, TransactionTypeInvoiceSale:
		return -1
	default:
		return 1
	}
}

// ReversalType devuelve el tipo compensatorio de t: "in"↔"out" según la
// dirección del asiento original.
func ReversalType(t string) string {
	if TransactionDirection(t) > 0 {
		return TransactionTypeOut
	}
	return TransactionTypeIn
}

// StockTransaction asiento append-only del libro de stock. Nunca se actualiza
// ni se borra: las correcciones entran como asientos compensatorios con
// ReferenceType "order_reversal". StockBefore/StockAfter son una foto del
// disponible al momento de escribir; pueden quedar obsoletas si hay escrituras
// concurrentes y no se re-derivan.
type StockTransaction struct {
	ID              string
	AgentID         string
	ItemCode        string
	TransactionType string
	Quantity        decimal.Decimal // magnitud, siempre >= 0
	ReferenceType   string
	ReferenceID     string
	StockBefore     decimal.Decimal
	StockAfter      decimal.Decimal
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
