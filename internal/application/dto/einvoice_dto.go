package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaptureEInvoiceRequest body para POST /api/einvoice-requests.
type CaptureEInvoiceRequest struct {
	OrderID       string          `json:"order_id"`
	AgentID       string          `json:"agent_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerTaxID string          `json:"customer_tax_id,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// EInvoiceResponse solicitud capturada.
type EInvoiceResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	AgentID     string          `json:"agent_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	XMLPayload  string          `json:"xml_payload,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
