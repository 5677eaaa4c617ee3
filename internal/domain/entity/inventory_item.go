package entity

// Categorías usadas por el inventario por defecto. La categoría es texto libre.
const (
	CategoryAccommodation = "accommodation"
	CategoryFood          = "food"
	CategoryDrink         = "drink"
)

// LowStockThreshold cantidad a partir de la cual un artículo se considera con stock bajo (inclusive).
const LowStockThreshold = 5

// InventoryItem artículo vendible. Price en unidades enteras de moneda; Quantity nunca negativa.
// Solo el servicio de pedidos modifica Quantity.
type InventoryItem struct {
	ID       string
	Name     string
	Price    int64
	Quantity int64
	Category string
}

// IsLowStock stock bajo (incluye agotado).
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= LowStockThreshold
}

// IsOutOfStock sin unidades disponibles.
func (i *InventoryItem) IsOutOfStock() bool {
	return i.Quantity == 0
}
