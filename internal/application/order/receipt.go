package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante (PDF) de una venta ya registrada.
type ReceiptUseCase struct {
	reportRepo   repository.ReportRepository
	generator    ReceiptPDFGenerator
	businessName string
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(reportRepo repository.ReportRepository, generator ReceiptPDFGenerator, businessName string) *ReceiptUseCase {
	return &ReceiptUseCase{reportRepo: reportRepo, generator: generator, businessName: businessName}
}

// DownloadReceiptPDF devuelve (pdfBytes, filename). domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	if saleID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	detail, err := uc.reportRepo.SaleByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener venta: %w", err)
	}
	if detail == nil {
		return nil, "", domain.ErrNotFound
	}

	pdf, err := uc.generator.GenerateReceiptPDF(ctx, uc.businessName, dto.SaleDetailDTO{
		SaleID:     detail.SaleID,
		Timestamp:  detail.Timestamp,
		Name:       detail.ItemName,
		Category:   detail.Category,
		Price:      detail.UnitPrice,
		Quantity:   detail.Quantity,
		TotalPrice: detail.TotalPrice,
		Username:   detail.Username,
	})
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("receipt_%s_%s.pdf", detail.Timestamp.Format("20060102"), shortID(detail.SaleID))
	return pdf, filename, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
