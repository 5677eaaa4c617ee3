package order

import (
	"context"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error la transacción se revierte completa: ni descuento de stock ni venta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación PDF de un comprobante de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, businessName string, sale dto.SaleDetailDTO) ([]byte, error)
}
