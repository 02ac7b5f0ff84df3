package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/stock-ledger-api/internal/application/analytics"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	ItemUC      *usecase.ItemUseCase
	Engine      *inventory.BalanceEngine
	LowStockUC  *inventory.LowStockUseCase
	KardexUC    *inventory.KardexUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
	Store       Pinger
	Logger      *logger.Logger
	Metrics     *metrics.Metrics // nil = sin /metrics
	MetricsPath string
}

// NewApp crea la app Fiber con el middleware transversal y todas las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.ServiceName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	app.Use(RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.ServiceName, deps.Store))
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.LowStockUC, deps.KardexUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id/kardex.pdf", itemHandler.Kardex)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Engine)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", userHandler.GetByID)

	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.DashboardUC)
	analytics.Get("/rotation", analyticsHandler.GetRotation)
	analytics.Get("/dashboard", analyticsHandler.GetDashboard)
}
