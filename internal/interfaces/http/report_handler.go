package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hotel-pos/internal/application/report"
)

// ReportHandler reportes de ventas del día.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DailySummary godoc
// @Summary      Resumen de ventas de hoy por artículo
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DailySummaryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) DailySummary(c *fiber.Ctx) error {
	out, err := h.uc.DailySalesSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailySales godoc
// @Summary      Ventas de hoy, una fila por venta
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DailyDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/daily/sales [get]
func (h *ReportHandler) DailySales(c *fiber.Ctx) error {
	out, err := h.uc.DailySalesDetail(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportDaily godoc
// @Summary      Exportar ventas de hoy a CSV
// @Tags         reports
// @Produce      text/csv
// @Security     BearerAuth
// @Param        charset  query  string  false  "utf-8 (defecto) o windows-1252"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/daily/export [get]
func (h *ReportHandler) ExportDaily(c *fiber.Ctx) error {
	charset := c.Query("charset")
	data, filename, err := h.uc.ExportDailyCSV(c.UserContext(), charset)
	if err != nil {
		return respondError(c, err)
	}
	contentType := "text/csv; charset=utf-8"
	if charset != "" {
		contentType = "text/csv; charset=" + charset
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
