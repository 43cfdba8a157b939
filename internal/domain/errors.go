package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrTransactionLogUnavailable señala que el log de transacciones de stock
	// no está disponible (p. ej. tabla ausente). El motor lo trata como fuente
	// opcional: degrada a totales derivados solo de pedidos.
	ErrTransactionLogUnavailable = errors.New("log de transacciones de stock no disponible")
)
