package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/application/order"
)

// OrderHandler registra pedidos y entrega sus recibos.
type OrderHandler struct {
	orderUC   *order.OrderUseCase
	receiptUC *order.ReceiptUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(orderUC *order.OrderUseCase, receiptUC *order.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, receiptUC: receiptUC}
}

// PlaceOrder godoc
// @Summary      Registrar un pedido
// @Description  Descuenta stock y registra la venta en una sola transacción. El usuario sale de la sesión.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.PlaceOrderRequest  true  "item_id, quantity"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id es requerido"})
	}
	if in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser mayor que 0"})
	}
	receipt, err := h.orderUC.PlaceOrder(c.UserContext(), in.ItemID, in.Quantity, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// DownloadReceipt godoc
// @Summary      Recibo PDF de una venta
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *OrderHandler) DownloadReceipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receiptUC.DownloadReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
