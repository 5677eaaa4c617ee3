//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/hotel-pos/internal/application/bootstrap"
	"github.com/jhoicas/hotel-pos/internal/application/order"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/hotel-pos/pkg/config"
	"github.com/jhoicas/hotel-pos/pkg/logger"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

// setupTestDB levanta PostgreSQL en un contenedor y aplica las migraciones embebidas.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "levantar contenedor postgres")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminar contenedor: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	require.NotEmpty(t, applied)
	return pool
}

func TestIntegration_MigrateEsIdempotente(t *testing.T) {
	pool := setupTestDB(t)
	applied, err := postgres.Migrate(context.Background(), pool)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestIntegration_SeedIdempotenteYOrdenDeInventario(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	seeder := bootstrap.NewSeeder(postgres.NewUserRepository(pool), postgres.NewInventoryRepository(pool), password.MD5{}, "", logger.Nop())

	for i := 0; i < 2; i++ {
		_, err := seeder.Seed(ctx)
		require.NoError(t, err)
	}

	users, err := postgres.NewUserRepository(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "0192023a7bbd73250516f069df18b500", users[0].PasswordHash)

	items, err := postgres.NewInventoryRepository(pool).List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Room", "Shake", "Burger", "Chicken Roll", "Noodles", "Pasta"}, names)
}

func TestIntegration_UsernameDuplicado(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Username: "admin", PasswordHash: "x", Role: "admin", CreatedAt: time.Now()}))
	err := repo.Create(ctx, &entity.User{ID: "u2", Username: "admin", PasswordHash: "y", Role: "staff", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestIntegration_PedidosConcurrentesYReporte(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	inventory := postgres.NewInventoryRepository(pool)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Username: "alice", PasswordHash: "x", Role: "staff", CreatedAt: time.Now()}))
	require.NoError(t, inventory.Create(ctx, &entity.InventoryItem{ID: "room", Name: "Room", Price: 1200, Quantity: 3, Category: "accommodation"}))

	now := time.Now().UTC().Truncate(time.Microsecond)
	uc := order.NewOrderUseCase(postgres.NewTxRunner(pool), func() time.Time { return now }, logger.Nop())

	const workers = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.PlaceOrder(ctx, "room", 1, "u1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrInsufficientStock):
				rejected++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, workers-3, rejected)
	room, err := inventory.GetByID(ctx, "room")
	require.NoError(t, err)
	assert.Equal(t, int64(0), room.Quantity)

	reports := postgres.NewReportRepository(pool)
	start, end := now.Add(-time.Hour), now.Add(time.Hour)
	totals, err := reports.Totals(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals.Transactions)
	assert.Equal(t, int64(3600), totals.Revenue)
	assert.Equal(t, "1200", totals.AverageTicket.Round(2).String())

	rows, err := reports.SalesByItem(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].QuantitySold)

	detail, err := reports.SalesDetail(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, detail, 3)
	assert.Equal(t, "alice", detail[0].Username)

	// un día sin ventas
	empty, err := reports.Totals(ctx, end, end.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Transactions)
	assert.True(t, empty.AverageTicket.IsZero())
}

func TestIntegration_CheckImpideStockNegativo(t *testing.T) {
	pool := setupTestDB(t)
	err := postgres.NewInventoryRepository(pool).Create(context.Background(), &entity.InventoryItem{
		ID: "bad", Name: "Bad", Price: 10, Quantity: -1, Category: "food",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
