package repository

import (
	"context"

	"github.com/jhoicas/hotel-pos/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
// Usable con pool o dentro de una transacción (ver order.TxRunner).
type InventoryRepository interface {
	// Create persiste un artículo nuevo. Devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, item *entity.InventoryItem) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetByName devuelve (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.InventoryItem, error)
	// List devuelve todos los artículos ordenados por categoría y luego por nombre.
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	// DecrementStock resta quantity solo si hay stock suficiente (update condicional).
	// ok=false significa que no se modificó ninguna fila.
	DecrementStock(ctx context.Context, id string, quantity int64) (ok bool, err error)
}
