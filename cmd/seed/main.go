// seed aplica las migraciones y siembra la cuenta admin y el inventario por defecto.
// Es idempotente: se puede ejecutar en cada despliegue.
//
// Uso: go run ./cmd/seed [migrate]
// Con "migrate" solo aplica las migraciones.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/hotel-pos/internal/application/bootstrap"
	"github.com/jhoicas/hotel-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/hotel-pos/pkg/config"
	"github.com/jhoicas/hotel-pos/pkg/logger"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("migrations", applied).Msg("migraciones al día")

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		return
	}

	hasher, err := password.New(cfg.Security.PasswordHasher, cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de contraseñas")
	}
	seeder := bootstrap.NewSeeder(
		postgres.NewUserRepository(pool),
		postgres.NewInventoryRepository(pool),
		hasher,
		cfg.Bootstrap.AdminPassword,
		log,
	)
	res, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra")
	}
	fmt.Printf("admin creado: %v, artículos creados: %d\n", res.AdminCreated, res.ItemsCreated)
}
