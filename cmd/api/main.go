package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/hotel-pos/docs"
	"github.com/jhoicas/hotel-pos/internal/application/auth"
	"github.com/jhoicas/hotel-pos/internal/application/bootstrap"
	"github.com/jhoicas/hotel-pos/internal/application/order"
	"github.com/jhoicas/hotel-pos/internal/application/report"
	"github.com/jhoicas/hotel-pos/internal/application/usecase"
	infraexport "github.com/jhoicas/hotel-pos/internal/infrastructure/export"
	"github.com/jhoicas/hotel-pos/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/hotel-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/hotel-pos/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/hotel-pos/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/hotel-pos/internal/interfaces/http"
	"github.com/jhoicas/hotel-pos/pkg/config"
	"github.com/jhoicas/hotel-pos/pkg/logger"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

// @title                       Hotel POS API
// @version                     1.0
// @description                 Punto de venta e inventario para hotel: pedidos, stock y reportes diarios.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	hasher, err := password.New(cfg.Security.PasswordHasher, cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de contraseñas")
	}
	if hasher.Algorithm() == password.AlgorithmMD5 {
		log.Warn().Msg("hash de contraseñas MD5 sin sal (compatibilidad con credenciales existentes); use SECURITY_PASSWORD_HASHER=bcrypt")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	if cfg.Bootstrap.Enabled {
		seeder := bootstrap.NewSeeder(userRepo, inventoryRepo, hasher, cfg.Bootstrap.AdminPassword, log.Named("bootstrap"))
		if _, err := seeder.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("siembra inicial")
		}
	}

	// Revocación de sesiones: Redis si está configurado (compartido entre instancias), si no en memoria.
	var revoker auth.TokenRevoker
	if cfg.Redis.Enabled() {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		revoker = infraredis.NewTokenRevoker(redisClient)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: las sesiones revocadas se guardan en memoria")
		revoker = memory.NewTokenRevoker()
	}

	authUC := auth.NewAuthUseCase(userRepo, hasher, revoker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	now := func() time.Time { return time.Now().In(loc) }
	orderUC := order.NewOrderUseCase(txRunner, now, log.Named("orders"))
	receiptUC := order.NewReceiptUseCase(reportRepo, infrapdf.NewMarotoReceiptGenerator(), cfg.App.Name)
	reportUC := report.NewReportUseCase(reportRepo, infraexport.NewCSVWriter(), now, loc)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	userUC := usecase.NewUserUseCase(userRepo, hasher, log.Named("users"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		ReportUC:    reportUC,
		UserUC:      userUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
