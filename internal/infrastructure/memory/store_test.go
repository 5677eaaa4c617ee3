package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "u1", Username: "alice", Role: entity.RoleStaff}))
	require.NoError(t, s.Inventory().Create(ctx, &entity.InventoryItem{ID: "i1", Name: "Shake", Price: 120, Quantity: 3, Category: "drink"}))
	require.NoError(t, s.Inventory().Create(ctx, &entity.InventoryItem{ID: "i2", Name: "Burger", Price: 120, Quantity: 50, Category: "food"}))
	require.NoError(t, s.Inventory().Create(ctx, &entity.InventoryItem{ID: "i3", Name: "Pasta", Price: 250, Quantity: 50, Category: "food"}))
	return s
}

func TestStore_DuplicadosDevuelvenSentinel(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()
	err := s.Users().Create(ctx, &entity.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	err = s.Inventory().Create(ctx, &entity.InventoryItem{ID: "i9", Name: "Burger", Price: 1, Category: "food"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStore_ListOrdenaPorCategoriaYNombre(t *testing.T) {
	s := seedStore(t)
	items, err := s.Inventory().List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Shake", "Burger", "Pasta"}, names)
}

func TestStore_DecrementStockCondicional(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	ok, err := s.Inventory().DecrementStock(ctx, "i1", 4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Inventory().DecrementStock(ctx, "i1", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	it, _ := s.Inventory().GetByID(ctx, "i1")
	assert.Equal(t, int64(0), it.Quantity)
}

func TestStore_RunRevierteSiFalla(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(inv repository.InventoryRepository, sales repository.SaleRepository) error {
		ok, err := inv.DecrementStock(ctx, "i2", 2)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "s1", ItemID: "i2", Quantity: 2, TotalPrice: 240, UserID: "u1", Timestamp: time.Now()}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	it, _ := s.Inventory().GetByID(ctx, "i2")
	assert.Equal(t, int64(50), it.Quantity)
	assert.Equal(t, 0, s.Sales().Count())
}

func TestStore_ReportesFiltranPorRango(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	sales := s.Sales()
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "a", ItemID: "i2", Quantity: 2, TotalPrice: 240, UserID: "u1", Timestamp: day.Add(9 * time.Hour)}))
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "b", ItemID: "i2", Quantity: 1, TotalPrice: 120, UserID: "u1", Timestamp: day.Add(8 * time.Hour)}))
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "c", ItemID: "i3", Quantity: 1, TotalPrice: 250, UserID: "u1", Timestamp: day.Add(24 * time.Hour)}))

	rows, err := s.Reports().SalesByItem(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, repository.ItemSalesResult{ItemID: "i2", Name: "Burger", Category: "food", QuantitySold: 3, Revenue: 360}, rows[0])

	detail, err := s.Reports().SalesDetail(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, detail, 2)
	assert.Equal(t, "b", detail[0].SaleID)
	assert.Equal(t, "alice", detail[0].Username)

	totals, err := s.Reports().Totals(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.Transactions)
	assert.Equal(t, "180", totals.AverageTicket.String())

	got, err := s.Reports().SaleByID(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, got)
}
