package memory

import (
	"sync"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore usuarios en memoria, indexados por ID y email.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string // email -> ID
}

// NewUserStore construye el almacén vacío.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
	}
}

// Create inserta un usuario. Email duplicado -> ErrEmailAlreadyExists.
func (s *UserStore) Create(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	s.byID[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return nil
}

// GetByID busca por ID. nil, nil cuando no existe.
func (s *UserStore) GetByID(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail busca por email. nil, nil cuando no existe.
func (s *UserStore) GetByEmail(email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := s.byID[id]
	return &u, nil
}
