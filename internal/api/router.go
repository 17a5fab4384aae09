package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/abikefoods/storefront-api/docs"
	"github.com/abikefoods/storefront-api/internal/api/handler"
	"github.com/abikefoods/storefront-api/internal/api/middleware"
	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/service"
	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
	mongodb "github.com/abikefoods/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/abikefoods/storefront-api/internal/infrastructure/db/redis"
	"github.com/abikefoods/storefront-api/internal/infrastructure/remote"
	"github.com/abikefoods/storefront-api/pkg/logger"
)

// RouterDeps carries the external resources the router wires together.
type RouterDeps struct {
	Store     kv.Store
	Redis     *redis.Client
	Mongo     *mongo.Database
	Remote    *remote.OrdersClient
	JWTSecret string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	log := logger.Get()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	orderRepo := kv.NewOrderRepository(deps.Store)
	studentRepo := kv.NewStudentRepository(deps.Store)
	userRepo := kv.NewUserRepository(deps.Store)
	transactionRepo := kv.NewTransactionRepository(deps.Store)
	classRepo := kv.NewClassRepository(deps.Store)
	paymentRepo := kv.NewPaymentRepository(deps.Store)
	registrationRepo := mongodb.NewRegistrationRepository(deps.Mongo)
	deduper := redisdb.NewPaymentDeduper(deps.Redis)

	// --- Services ---
	orderService := service.NewOrderService(orderRepo, deps.Remote, log)
	reportingService := service.NewReportingService(orderRepo, studentRepo, userRepo, transactionRepo, paymentRepo, log)
	walletService := service.NewWalletService(transactionRepo, reportingService, log)
	studentService := service.NewStudentService(studentRepo, registrationRepo, classRepo, log)
	userService := service.NewUserService(userRepo)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo, deduper, log)
	authService := service.NewAuthService(userRepo, deps.JWTSecret, 24*time.Hour)

	// --- Handlers ---
	orderHandler := handler.NewOrderHandler(orderService)
	studentHandler := handler.NewStudentHandler(studentService)
	userHandler := handler.NewUserHandler(userService)
	walletHandler := handler.NewWalletHandler(walletService)
	reportHandler := handler.NewReportHandler(reportingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"redis": func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() },
		"mongo": func(ctx context.Context) error { return deps.Mongo.Client().Ping(ctx, nil) },
	})

	authRequired := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Probes, metrics, docs ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	v1 := e.Group("/v1")

	// Storefront: order placement and listing stay public, the payment
	// callback is authenticated by reference dedup rather than a bearer token.
	v1.GET("/orders", orderHandler.List)
	v1.POST("/orders", orderHandler.Create)
	v1.POST("/payments/callback", paymentHandler.Callback)

	// Wallet: any logged-in account.
	wallet := v1.Group("/wallet", authRequired)
	wallet.GET("", walletHandler.Summary)
	wallet.GET("/balance", walletHandler.Balance)
	wallet.GET("/transactions", walletHandler.Transactions)
	wallet.POST("/deposit", walletHandler.Deposit)
	wallet.POST("/withdraw", walletHandler.Withdraw)

	// Back office: admin accounts only.
	admin := v1.Group("", authRequired, adminOnly)
	admin.PUT("/orders/:id", orderHandler.Update)
	admin.DELETE("/orders/:id", orderHandler.Delete)
	admin.POST("/orders/:id/complete", orderHandler.Complete)

	admin.GET("/students", studentHandler.List)
	admin.POST("/students", studentHandler.Add)
	admin.PUT("/students/:id", studentHandler.Update)
	admin.DELETE("/students/:id", studentHandler.Delete)
	admin.POST("/students/sync", studentHandler.Sync)
	admin.POST("/students/:id/lessons/complete", studentHandler.CompleteLesson)

	admin.GET("/classes", studentHandler.ListClasses)
	admin.POST("/classes", studentHandler.AddClass)
	admin.DELETE("/classes/:id", studentHandler.DeleteClass)

	admin.GET("/users", userHandler.List)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/reports/dashboard", reportHandler.Dashboard)
	admin.GET("/reports/finance", reportHandler.Finance)
	admin.GET("/reports/export", reportHandler.Export)

	return e
}
