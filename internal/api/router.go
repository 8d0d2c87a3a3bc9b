package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/qkart/commerce-api/docs"
	"github.com/qkart/commerce-api/internal/api/handler"
	"github.com/qkart/commerce-api/internal/api/middleware"
	"github.com/qkart/commerce-api/internal/core/service"
	"github.com/qkart/commerce-api/internal/infrastructure/config"
	mongodb "github.com/qkart/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/qkart/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("qkart"))

	// --- Repositories ---
	cartRepo := mongodb.NewCartRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	txRunner := mongodb.NewTxRunner(client)

	// Single-product reads go through Redis; listings stay on Mongo.
	catalog := redisdb.NewProductCache(rdb, productRepo, cfg.ProductCacheTTL, log)

	// --- Services ---
	cartService := service.NewCartService(cartRepo, catalog, userRepo, orderRepo, txRunner, log)
	productService := service.NewProductService(productRepo, catalog, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.DefaultWalletBalance)

	// --- Handlers ---
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(cartService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Catalog routes (public) ---
	e.GET("/v1/products", productHandler.List)
	e.GET("/v1/products/:productId", productHandler.Get)

	// --- User routes (owner only) ---
	users := e.Group("/v1/users", auth, middleware.Owner("userId"))
	users.GET("/:userId", userHandler.Get)
	users.PUT("/:userId", userHandler.SetAddress)

	// --- Cart routes ---
	cart := e.Group("/v1/cart", auth)
	cart.GET("", cartHandler.Get)
	cart.POST("", cartHandler.Add)
	cart.PUT("", cartHandler.Update)
	cart.PUT("/checkout", cartHandler.Checkout)
	cart.DELETE("/:productId", cartHandler.Remove)

	// --- Order routes ---
	e.GET("/v1/orders", orderHandler.List, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
