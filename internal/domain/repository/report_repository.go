package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ItemSalesResult fila agregada por artículo para el resumen diario.
type ItemSalesResult struct {
	ItemID       string
	Name         string
	Category     string
	QuantitySold int64
	Revenue      int64
}

// SaleDetailResult una venta con los datos del artículo y del usuario que la procesó.
type SaleDetailResult struct {
	SaleID     string
	Timestamp  time.Time
	ItemName   string
	Category   string
	UnitPrice  int64
	Quantity   int64
	TotalPrice int64
	Username   string
}

// SalesTotals totales de un período. AverageTicket = Revenue / Transactions (0 sin ventas).
type SalesTotals struct {
	Transactions  int64
	ItemsSold     int64
	Revenue       int64
	AverageTicket decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre ventas en el rango [start, end).
// Las implementaciones devuelven slices vacíos (no error) cuando no hay ventas.
type ReportRepository interface {
	// SalesByItem agrupa por artículo, ordenado por categoría y nombre.
	SalesByItem(ctx context.Context, start, end time.Time) ([]ItemSalesResult, error)
	// SalesDetail una fila por venta, ordenada por timestamp ascendente.
	SalesDetail(ctx context.Context, start, end time.Time) ([]SaleDetailResult, error)
	Totals(ctx context.Context, start, end time.Time) (*SalesTotals, error)
	// SaleByID detalle de una venta; (nil, nil) si no existe.
	SaleByID(ctx context.Context, saleID string) (*SaleDetailResult, error)
}
