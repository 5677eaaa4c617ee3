package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
	"github.com/jhoicas/hotel-pos/pkg/logger"
)

// OrderUseCase procesa pedidos: valida stock, lo descuenta y registra la venta en una sola transacción.
// Es el único camino que modifica inventory.quantity.
type OrderUseCase struct {
	txRunner TxRunner
	now      func() time.Time
	log      *logger.Logger
}

// NewOrderUseCase construye el caso de uso. now nil = time.Now.
func NewOrderUseCase(txRunner TxRunner, now func() time.Time, log *logger.Logger) *OrderUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{txRunner: txRunner, now: now, log: log}
}

// PlaceOrder vende quantity unidades de itemID a nombre de userID.
//
// Errores:
//   - domain.ErrInvalidInput             ids vacíos o quantity <= 0.
//   - domain.ErrItemNotFound             el artículo no existe.
//   - *domain.InsufficientStockError     quantity supera el stock (Is ErrInsufficientStock).
//   - *domain.StorageError               cualquier otro fallo; la transacción se revierte.
//
// El descuento es un UPDATE condicional (quantity >= pedido): dos pedidos concurrentes
// nunca dejan el stock en negativo; el perdedor recibe InsufficientStockError.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, itemID string, quantity int64, userID string) (*dto.ReceiptResponse, error) {
	if itemID == "" || userID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var receipt *dto.ReceiptResponse
	err := uc.txRunner.Run(ctx, func(
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		item, err := inventoryRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if quantity > item.Quantity {
			return &domain.InsufficientStockError{Available: item.Quantity}
		}

		ok, err := inventoryRepo.DecrementStock(ctx, itemID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			// Otra transacción consumió el stock entre la lectura y el update.
			current, err := inventoryRepo.GetByID(ctx, itemID)
			if err != nil {
				return err
			}
			available := int64(0)
			if current != nil {
				available = current.Quantity
			}
			return &domain.InsufficientStockError{Available: available}
		}

		sale := &entity.Sale{
			ID:         uuid.New().String(),
			ItemID:     itemID,
			Quantity:   quantity,
			TotalPrice: item.Price * quantity,
			UserID:     userID,
			Timestamp:  uc.now(),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		receipt = &dto.ReceiptResponse{
			SaleID:    sale.ID,
			Name:      item.Name,
			Quantity:  quantity,
			Price:     item.Price,
			Total:     sale.TotalPrice,
			Timestamp: sale.Timestamp,
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("item_id", itemID).Str("user_id", userID).Msg("pedido revertido")
		return nil, domain.NewStorageError(err)
	}

	uc.log.Info().
		Str("sale_id", receipt.SaleID).
		Str("item", receipt.Name).
		Int64("quantity", receipt.Quantity).
		Int64("total", receipt.Total).
		Str("user_id", userID).
		Msg("pedido procesado")
	return receipt, nil
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrItemNotFound) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrStorage)
}
