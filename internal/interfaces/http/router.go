package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hotel-pos/internal/application/auth"
	"github.com/jhoicas/hotel-pos/internal/application/order"
	"github.com/jhoicas/hotel-pos/internal/application/report"
	"github.com/jhoicas/hotel-pos/internal/application/usecase"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *order.OrderUseCase
	ReceiptUC   *order.ReceiptUseCase
	ReportUC    *report.ReportUseCase
	UserUC      *usecase.UserUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Get("/inventory", inventoryHandler.List)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Get("/sales/:id/receipt", orderHandler.DownloadReceipt)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/daily", reportHandler.DailySummary)
	protected.Get("/reports/daily/sales", reportHandler.DailySales)
	protected.Get("/reports/daily/export", RequireRole(entity.RoleAdmin), reportHandler.ExportDaily)

	// Usuarios (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("", userHandler.List)
	users.Post("", userHandler.Create)
}
