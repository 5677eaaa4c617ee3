// Package report contiene los reportes de ventas del día y la exportación CSV.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CSVExporter serializa las ventas del día a CSV en el charset pedido ("" = UTF-8).
type CSVExporter interface {
	ExportSales(rows []dto.SaleDetailDTO, charset string) ([]byte, error)
}

// ReportUseCase reportes diarios. "Hoy" sale del reloj inyectado en la zona horaria del negocio,
// nunca de la fecha del servidor de BD.
type ReportUseCase struct {
	repo     repository.ReportRepository
	exporter CSVExporter
	now      func() time.Time
	loc      *time.Location
}

// NewReportUseCase construye el caso de uso. now nil = time.Now; loc nil = time.Local.
func NewReportUseCase(repo repository.ReportRepository, exporter CSVExporter, now func() time.Time, loc *time.Location) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{repo: repo, exporter: exporter, now: now, loc: loc}
}

// Today fecha actual en la zona horaria del negocio.
func (uc *ReportUseCase) Today() time.Time {
	return uc.now().In(uc.loc)
}

// DayRange devuelve [00:00 del día, 00:00 del día siguiente) en loc.
func DayRange(day time.Time, loc *time.Location) (time.Time, time.Time) {
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// DailySalesSummary resumen por artículo de las ventas de hoy.
func (uc *ReportUseCase) DailySalesSummary(ctx context.Context) (*dto.DailySummaryResponse, error) {
	return uc.SummaryFor(ctx, uc.Today())
}

// SummaryFor resumen por artículo del día indicado.
//
// Dos consultas en paralelo:
//  1. SalesByItem → filas por artículo (categoría, nombre)
//  2. Totals      → ingresos, unidades, transacciones, ticket promedio
func (uc *ReportUseCase) SummaryFor(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error) {
	start, end := DayRange(day, uc.loc)

	type itemsResult struct {
		rows []repository.ItemSalesResult
		err  error
	}
	type totalsResult struct {
		totals *repository.SalesTotals
		err    error
	}
	itemsCh := make(chan itemsResult, 1)
	totalsCh := make(chan totalsResult, 1)

	go func() {
		rows, err := uc.repo.SalesByItem(ctx, start, end)
		itemsCh <- itemsResult{rows, err}
	}()
	go func() {
		totals, err := uc.repo.Totals(ctx, start, end)
		totalsCh <- totalsResult{totals, err}
	}()

	items := <-itemsCh
	totals := <-totalsCh
	if items.err != nil {
		return nil, domain.NewStorageError(fmt.Errorf("report: ventas por artículo: %w", items.err))
	}
	if totals.err != nil {
		return nil, domain.NewStorageError(fmt.Errorf("report: totales: %w", totals.err))
	}

	out := &dto.DailySummaryResponse{
		Date:       start.Format(dateLayout),
		Items:      make([]dto.ItemSalesDTO, 0, len(items.rows)),
		ByCategory: make([]dto.CategorySalesDTO, 0),
		Totals:     dto.SalesTotalsDTO{AverageTicket: decimal.Zero},
	}
	byCategory := make(map[string]int)
	for _, r := range items.rows {
		out.Items = append(out.Items, dto.ItemSalesDTO{
			Name:         r.Name,
			Category:     r.Category,
			QuantitySold: r.QuantitySold,
			Revenue:      r.Revenue,
		})
		idx, ok := byCategory[r.Category]
		if !ok {
			idx = len(out.ByCategory)
			byCategory[r.Category] = idx
			out.ByCategory = append(out.ByCategory, dto.CategorySalesDTO{Category: r.Category})
		}
		out.ByCategory[idx].QuantitySold += r.QuantitySold
		out.ByCategory[idx].Revenue += r.Revenue
	}
	if t := totals.totals; t != nil {
		out.Totals = dto.SalesTotalsDTO{
			Revenue:       t.Revenue,
			ItemsSold:     t.ItemsSold,
			Transactions:  t.Transactions,
			AverageTicket: t.AverageTicket.Round(2),
		}
	}
	return out, nil
}

// DailySalesDetail ventas de hoy, una fila por venta en orden cronológico.
func (uc *ReportUseCase) DailySalesDetail(ctx context.Context) (*dto.DailyDetailResponse, error) {
	return uc.DetailFor(ctx, uc.Today())
}

// DetailFor ventas del día indicado, una fila por venta en orden cronológico.
func (uc *ReportUseCase) DetailFor(ctx context.Context, day time.Time) (*dto.DailyDetailResponse, error) {
	start, end := DayRange(day, uc.loc)
	rows, err := uc.repo.SalesDetail(ctx, start, end)
	if err != nil {
		return nil, domain.NewStorageError(fmt.Errorf("report: detalle: %w", err))
	}
	out := &dto.DailyDetailResponse{
		Date:  start.Format(dateLayout),
		Sales: make([]dto.SaleDetailDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Sales = append(out.Sales, dto.SaleDetailDTO{
			SaleID:     r.SaleID,
			Timestamp:  r.Timestamp.In(uc.loc),
			Name:       r.ItemName,
			Category:   r.Category,
			Price:      r.UnitPrice,
			Quantity:   r.Quantity,
			TotalPrice: r.TotalPrice,
			Username:   r.Username,
		})
	}
	return out, nil
}

// ExportDailyCSV devuelve (csvBytes, filename) con las ventas de hoy.
// filename = sales_report_<YYYYMMDD>.csv según la fecha del negocio.
func (uc *ReportUseCase) ExportDailyCSV(ctx context.Context, charset string) ([]byte, string, error) {
	today := uc.Today()
	detail, err := uc.DetailFor(ctx, today)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportSales(detail.Sales, charset)
	if err != nil {
		return nil, "", err
	}
	return data, ExportFilename(today), nil
}

// ExportFilename nombre del archivo de exportación para el día dado.
func ExportFilename(day time.Time) string {
	return fmt.Sprintf("sales_report_%s.csv", day.Format("20060102"))
}
