package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de factura electrónica capturada.
const (
	EInvoiceStatusCaptured = "captured"
)

// EInvoiceRequest solicitud de factura electrónica asociada a un pedido.
// Solo captura: el sistema guarda la solicitud y su XML; la firma y el envío
// al proveedor quedan fuera de alcance.
type EInvoiceRequest struct {
	ID            string
	OrderID       string
	AgentID       string
	CustomerName  string
	CustomerTaxID string
	TotalAmount   decimal.Decimal
	Status        string
	XMLPayload    string
	CreatedBy     string
	CreatedAt     time.Time
}
