package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hotel-pos/internal/application/usecase"
)

// InventoryHandler consulta del inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario completo con estado de stock
// @Description  Artículos ordenados por categoría y nombre, conteos de stock bajo (<= 5) y agotados.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
