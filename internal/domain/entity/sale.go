package entity

import "time"

// Sale registro inmutable de un pedido completado.
// TotalPrice se captura al vender (Quantity × precio unitario) y no se recalcula.
type Sale struct {
	ID         string
	ItemID     string
	Quantity   int64
	TotalPrice int64
	UserID     string
	Timestamp  time.Time
}
