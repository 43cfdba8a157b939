package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.EInvoiceRequestRepository = (*EInvoiceRequestStore)(nil)

// EInvoiceRequestStore solicitudes de factura electrónica en memoria.
type EInvoiceRequestStore struct {
	mu   sync.RWMutex
	byID map[string]entity.EInvoiceRequest
}

// NewEInvoiceRequestStore construye el almacén vacío.
func NewEInvoiceRequestStore() *EInvoiceRequestStore {
	return &EInvoiceRequestStore{byID: make(map[string]entity.EInvoiceRequest)}
}

// Create inserta una solicitud capturada.
func (s *EInvoiceRequestStore) Create(_ context.Context, req *entity.EInvoiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[req.ID] = *req
	return nil
}

// GetByID busca por ID. nil, nil cuando no existe.
func (s *EInvoiceRequestStore) GetByID(_ context.Context, id string) (*entity.EInvoiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}
