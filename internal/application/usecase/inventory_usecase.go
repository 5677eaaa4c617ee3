package usecase

import (
	"context"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
)

// InventoryUseCase consultas de solo lectura sobre el catálogo. El stock se modifica únicamente vía pedidos.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve el catálogo (categoría, nombre) con los indicadores de stock.
func (uc *InventoryUseCase) List(ctx context.Context) (*dto.InventoryListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}

	out := &dto.InventoryListResponse{
		Items:         make([]dto.InventoryItemResponse, 0, len(items)),
		LowStockItems: make([]dto.InventoryItemResponse, 0),
	}
	categories := make(map[string]struct{})
	for _, it := range items {
		r := toInventoryItemResponse(it)
		out.Items = append(out.Items, r)
		categories[it.Category] = struct{}{}
		if it.IsLowStock() {
			out.Status.LowStock++
			out.LowStockItems = append(out.LowStockItems, r)
		}
		if it.IsOutOfStock() {
			out.Status.OutOfStock++
		}
	}
	out.Status.TotalItems = len(items)
	out.Status.Categories = len(categories)
	return out, nil
}

func toInventoryItemResponse(i *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:       i.ID,
		Name:     i.Name,
		Price:    i.Price,
		Quantity: i.Quantity,
		Category: i.Category,
	}
}
