package dto

import "time"

// PlaceOrderRequest entrada de POST /api/orders. El usuario sale de la sesión.
type PlaceOrderRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
}

// ReceiptResponse comprobante de un pedido exitoso.
type ReceiptResponse struct {
	SaleID    string    `json:"sale_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"`
	Total     int64     `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
