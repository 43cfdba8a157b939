package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
