package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/stock-ledger-api/docs"
	appanalytics "github.com/jhoicas/stock-ledger-api/internal/application/analytics"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stock-ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

// ledgerStore agrupa los adaptadores de un driver de almacenamiento.
type ledgerStore struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
	users     repository.UserRepository
	analytics repository.AnalyticsRepository
	tx        inventory.TxRunner
	pinger    httpRouter.Pinger
	close     func()
}

// @title                       Stock Ledger API
// @version                     1.0
// @description                 Ledger de movimientos de inventario y motor de saldos.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("negative_stock", cfg.Inventory.NegativeStock).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store := openStore(ctx, cfg, log)
	defer store.close()

	app, err := buildApp(cfg, log, store)
	if err != nil {
		// Fatal sale sin ejecutar los defer
		store.close()
		log.Fatal().Err(err).Msg("armar aplicación")
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Ledger API",
	}))

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

// buildApp arma el motor de saldos, los casos de uso y la app Fiber sobre un store ya abierto.
// No cierra el store: eso queda a cargo de quien lo abrió.
func buildApp(cfg *config.Config, log *logger.Logger, store ledgerStore) (*fiber.App, error) {
	var m *metrics.Metrics
	var observer inventory.MovementObserver
	if cfg.Metrics.Enabled {
		m = metrics.New("stock_ledger")
		observer = m
	}

	engine, err := inventory.NewBalanceEngine(store.tx, store.movements, inventory.EngineConfig{
		NegativeStock: cfg.Inventory.NegativeStock,
		Observer:      observer,
		Logger:        log.Component("balance_engine"),
	})
	if err != nil {
		return nil, fmt.Errorf("motor de saldos: %w", err)
	}

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	return httpRouter.NewApp(httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		ItemUC:      usecase.NewItemUseCase(store.items),
		Engine:      engine,
		LowStockUC:  inventory.NewLowStockUseCase(store.items),
		KardexUC:    inventory.NewKardexUseCase(store.items, store.movements, infrapdf.NewMarotoKardexGenerator(cfg.App.Name)),
		AnalyticsUC: usecase.NewAnalyticsUseCase(store.analytics),
		DashboardUC: appanalytics.NewDashboardUseCase(store.analytics, store.items),
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(store.users),
		JWTSecret:   cfg.JWT.Secret,
		Store:       store.pinger,
		Logger:      log,
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
	}), nil
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) ledgerStore {
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		s := memory.New()
		return ledgerStore{
			items:     s.Items(),
			movements: s.Movements(),
			users:     s.Users(),
			analytics: s.Analytics(),
			tx:        s,
			pinger:    s,
			close:     func() {},
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("migraciones")
		}
		for _, name := range applied {
			log.Info().Str("file", name).Msg("migración aplicada")
		}
	}
	return ledgerStore{
		items:     postgres.NewItemRepository(pool),
		movements: postgres.NewMovementRepository(pool),
		users:     postgres.NewUserRepository(pool),
		analytics: postgres.NewAnalyticsRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		pinger:    pool,
		close:     pool.Close,
	}
}
