package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrItemNotFound      = errors.New("artículo no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrDuplicateUsername = errors.New("el nombre de usuario ya existe")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("error de almacenamiento")
)

// InsufficientStockError indica que la cantidad pedida supera el stock disponible.
// errors.Is(err, ErrInsufficientStock) es verdadero.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: solo hay %d disponibles", e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// StorageError envuelve un fallo inesperado de persistencia.
// errors.Is(err, ErrStorage) es verdadero y Unwrap expone la causa.
type StorageError struct {
	Err error
}

// NewStorageError envuelve err; nil si err es nil.
func NewStorageError(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("error de almacenamiento: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
