package repository

import (
	"context"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// EInvoiceRequestRepository puerto de persistencia de solicitudes de factura
// electrónica capturadas.
type EInvoiceRequestRepository interface {
	Create(ctx context.Context, req *entity.EInvoiceRequest) error
	GetByID(ctx context.Context, id string) (*entity.EInvoiceRequest, error)
}
