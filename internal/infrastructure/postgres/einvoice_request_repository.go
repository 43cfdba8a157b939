package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.EInvoiceRequestRepository = (*EInvoiceRequestRepo)(nil)

// EInvoiceRequestRepo persistencia de solicitudes de factura electrónica.
type EInvoiceRequestRepo struct {
	q Querier
}

// NewEInvoiceRequestRepository construye el adaptador.
func NewEInvoiceRequestRepository(q Querier) *EInvoiceRequestRepo {
	return &EInvoiceRequestRepo{q: q}
}

// Create inserta una solicitud capturada con su XML.
func (r *EInvoiceRequestRepo) Create(ctx context.Context, req *entity.EInvoiceRequest) error {
	query := `
		INSERT INTO einvoice_requests
			(id, order_id, agent_id, customer_name, customer_tax_id, total_amount, status, xml_payload, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.OrderID, req.AgentID, req.CustomerName, nullable(req.CustomerTaxID),
		req.TotalAmount, req.Status, req.XMLPayload, req.CreatedBy, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("crear solicitud de factura: %w", err)
	}
	return nil
}

// GetByID busca por ID. nil, nil cuando no existe.
func (r *EInvoiceRequestRepo) GetByID(ctx context.Context, id string) (*entity.EInvoiceRequest, error) {
	query := `
		SELECT id, order_id, agent_id, customer_name, customer_tax_id, total_amount, status, xml_payload, created_by, created_at
		FROM einvoice_requests WHERE id = $1`

	var req entity.EInvoiceRequest
	var taxID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.OrderID, &req.AgentID, &req.CustomerName, &taxID,
		&req.TotalAmount, &req.Status, &req.XMLPayload, &req.CreatedBy, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar solicitud de factura: %w", err)
	}
	if taxID != nil {
		req.CustomerTaxID = *taxID
	}
	return &req, nil
}
