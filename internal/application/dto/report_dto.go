package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemSalesDTO fila del resumen diario por artículo.
type ItemSalesDTO struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	QuantitySold int64  `json:"quantity_sold"`
	Revenue      int64  `json:"revenue"`
}

// CategorySalesDTO unidades vendidas por categoría (datos de gráfico).
type CategorySalesDTO struct {
	Category     string `json:"category"`
	QuantitySold int64  `json:"quantity_sold"`
	Revenue      int64  `json:"revenue"`
}

// SalesTotalsDTO métricas del día.
type SalesTotalsDTO struct {
	Revenue       int64           `json:"revenue"`
	ItemsSold     int64           `json:"items_sold"`
	Transactions  int64           `json:"transactions"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// DailySummaryResponse resumen de ventas del día.
type DailySummaryResponse struct {
	Date       string             `json:"date"` // YYYY-MM-DD
	Items      []ItemSalesDTO     `json:"items"`
	ByCategory []CategorySalesDTO `json:"by_category"`
	Totals     SalesTotalsDTO     `json:"totals"`
}

// SaleDetailDTO una venta del día.
type SaleDetailDTO struct {
	SaleID     string    `json:"sale_id"`
	Timestamp  time.Time `json:"timestamp"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      int64     `json:"price"`
	Quantity   int64     `json:"quantity"`
	TotalPrice int64     `json:"total_price"`
	Username   string    `json:"username"`
}

// DailyDetailResponse ventas del día, una fila por venta.
type DailyDetailResponse struct {
	Date  string          `json:"date"`
	Sales []SaleDetailDTO `json:"sales"`
}
