package dto

// InventoryItemResponse artículo del catálogo.
type InventoryItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Category string `json:"category"`
}

// InventoryStatusDTO indicadores del panel de inventario.
type InventoryStatusDTO struct {
	TotalItems int `json:"total_items"`
	Categories int `json:"categories"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// InventoryListResponse catálogo ordenado por categoría y nombre, con alertas de stock bajo.
type InventoryListResponse struct {
	Items         []InventoryItemResponse `json:"items"`
	Status        InventoryStatusDTO      `json:"status"`
	LowStockItems []InventoryItemResponse `json:"low_stock_items"`
}
