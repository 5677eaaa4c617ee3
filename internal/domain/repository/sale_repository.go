package repository

import (
	"context"

	"github.com/jhoicas/hotel-pos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (solo inserción: las ventas son inmutables).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
}
