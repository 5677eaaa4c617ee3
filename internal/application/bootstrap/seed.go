// Package bootstrap siembra el estado inicial: cuenta admin e inventario por defecto.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
	"github.com/jhoicas/hotel-pos/pkg/logger"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

// AdminUsername cuenta administradora sembrada en el primer arranque.
const AdminUsername = "admin"

// DefaultAdminPassword contraseña inicial del admin si no se configura otra.
const DefaultAdminPassword = "admin123"

// DefaultItems inventario inicial (nombre, precio, cantidad, categoría).
var DefaultItems = []entity.InventoryItem{
	{Name: "Room", Price: 1200, Quantity: 10, Category: entity.CategoryAccommodation},
	{Name: "Pasta", Price: 250, Quantity: 50, Category: entity.CategoryFood},
	{Name: "Burger", Price: 120, Quantity: 50, Category: entity.CategoryFood},
	{Name: "Noodles", Price: 140, Quantity: 50, Category: entity.CategoryFood},
	{Name: "Shake", Price: 120, Quantity: 50, Category: entity.CategoryDrink},
	{Name: "Chicken Roll", Price: 150, Quantity: 50, Category: entity.CategoryFood},
}

// Result cuántas filas creó la siembra (0/0 en ejecuciones repetidas).
type Result struct {
	AdminCreated bool
	ItemsCreated int
}

// Seeder siembra de forma idempotente: busca por clave única antes de insertar y
// tolera el duplicado si otro proceso insertó primero.
type Seeder struct {
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	hasher        password.Hasher
	adminPassword string
	log           *logger.Logger
}

// NewSeeder construye el seeder. adminPassword vacío = DefaultAdminPassword.
func NewSeeder(
	userRepo repository.UserRepository,
	inventoryRepo repository.InventoryRepository,
	hasher password.Hasher,
	adminPassword string,
	log *logger.Logger,
) *Seeder {
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		hasher:        hasher,
		adminPassword: adminPassword,
		log:           log,
	}
}

// Seed asegura la cuenta admin y los artículos por defecto.
func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	res := &Result{}

	created, err := s.ensureAdmin(ctx)
	if err != nil {
		return nil, err
	}
	res.AdminCreated = created

	for _, item := range DefaultItems {
		created, err := s.ensureItem(ctx, item)
		if err != nil {
			return nil, err
		}
		if created {
			res.ItemsCreated++
		}
	}

	s.log.Info().
		Bool("admin_created", res.AdminCreated).
		Int("items_created", res.ItemsCreated).
		Msg("siembra inicial completada")
	return res, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context) (bool, error) {
	existing, err := s.userRepo.GetByUsername(ctx, AdminUsername)
	if err != nil {
		return false, fmt.Errorf("bootstrap: buscar admin: %w", err)
	}
	if existing != nil {
		return false, nil
	}
	hash, err := s.hasher.Hash(s.adminPassword)
	if err != nil {
		return false, err
	}
	err = s.userRepo.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Username:     AdminUsername,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, domain.ErrDuplicateUsername) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bootstrap: crear admin: %w", err)
	}
	return true, nil
}

func (s *Seeder) ensureItem(ctx context.Context, item entity.InventoryItem) (bool, error) {
	existing, err := s.inventoryRepo.GetByName(ctx, item.Name)
	if err != nil {
		return false, fmt.Errorf("bootstrap: buscar %s: %w", item.Name, err)
	}
	if existing != nil {
		return false, nil
	}
	item.ID = uuid.New().String()
	err = s.inventoryRepo.Create(ctx, &item)
	if errors.Is(err, domain.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bootstrap: crear %s: %w", item.Name, err)
	}
	return true, nil
}
