// Package einvoice captura solicitudes de factura electrónica asociadas a
// pedidos: construye el XML de la solicitud y la persiste. La firma y el
// envío al proveedor fiscal quedan fuera de alcance.
package einvoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// RequestXMLBuilder construye el XML de una solicitud capturada.
type RequestXMLBuilder interface {
	BuildRequestXML(req *entity.EInvoiceRequest) (string, error)
}

// CaptureUseCase captura de solicitudes de factura electrónica.
type CaptureUseCase struct {
	repo    repository.EInvoiceRequestRepository
	builder RequestXMLBuilder
	actor   stock.ActorFunc
}

// NewCaptureUseCase construye el caso de uso. actor nil usa el actor del contexto.
func NewCaptureUseCase(repo repository.EInvoiceRequestRepository, builder RequestXMLBuilder, actor stock.ActorFunc) *CaptureUseCase {
	if actor == nil {
		actor = stock.ActorFromContext
	}
	return &CaptureUseCase{repo: repo, builder: builder, actor: actor}
}

// Capture valida la solicitud, arma su XML y la persiste con estado "captured".
func (uc *CaptureUseCase) Capture(ctx context.Context, in dto.CaptureEInvoiceRequest) (*dto.EInvoiceResponse, error) {
	if in.OrderID == "" || in.AgentID == "" || in.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}
	createdBy := uc.actor(ctx)
	if createdBy == "" {
		createdBy = "system"
	}
	req := &entity.EInvoiceRequest{
		ID:            uuid.New().String(),
		OrderID:       in.OrderID,
		AgentID:       in.AgentID,
		CustomerName:  in.CustomerName,
		CustomerTaxID: in.CustomerTaxID,
		TotalAmount:   in.TotalAmount,
		Status:        entity.EInvoiceStatusCaptured,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
	}
	xml, err := uc.builder.BuildRequestXML(req)
	if err != nil {
		return nil, fmt.Errorf("construir XML de solicitud: %w", err)
	}
	req.XMLPayload = xml
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("persistir solicitud: %w", err)
	}
	return toResponse(req), nil
}

// GetByID recupera una solicitud capturada.
func (uc *CaptureUseCase) GetByID(ctx context.Context, id string) (*dto.EInvoiceResponse, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(req), nil
}

func toResponse(req *entity.EInvoiceRequest) *dto.EInvoiceResponse {
	return &dto.EInvoiceResponse{
		ID:          req.ID,
		OrderID:     req.OrderID,
		AgentID:     req.AgentID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		XMLPayload:  req.XMLPayload,
		CreatedAt:   req.CreatedAt,
	}
}
