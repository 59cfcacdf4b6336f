package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"shop-service/internal/handler"
	mid "shop-service/internal/middleware"
	"shop-service/internal/repository"
	"shop-service/internal/service"
	"shop-service/pkg/config"
	"shop-service/pkg/database"
	"shop-service/pkg/jwtutil"
	"shop-service/pkg/logger"
	"shop-service/pkg/media"
	shopmetrics "shop-service/prometheus"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting shop-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize database: connect, migrate, seed lookup tables. A
	// missing lookup row the order engine depends on is fatal here.
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	db := database.GetDB()

	// Repositories
	products := repository.NewProductRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	categories := repository.NewCategoryRepository(db)
	tags := repository.NewTagRepository(db)
	discounts := repository.NewDiscountRepository(db)
	reviews := repository.NewReviewRepository(db)
	carts := repository.NewCartRepository(db)
	orders := repository.NewOrderRepository(db)
	lookups := repository.NewLookupRepository(db)
	profiles := repository.NewProfileRepository(db)

	// Services
	catalogService := service.NewCatalogService(catalogRepo, products, categories, tags, discounts)
	cartService := service.NewCartService(products, carts, log)
	orderService := service.NewOrderService(orders, products, carts, lookups, log)
	reviewService := service.NewReviewService(products, reviews, log)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	basketHandler := handler.NewBasketHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, profiles)
	profileHandler := handler.NewProfileHandler(media.NewStore(appConfig.Media.Root))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomw.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics and health endpoints
	e.GET("/metrics", echo.WrapHandler(shopmetrics.GetPrometheusHandler()))
	e.GET("/health", handler.HealthCheck)

	// Uploaded images
	e.Static("/media", appConfig.Media.Root)

	api := e.Group("/api")

	// Public catalog routes
	api.GET("/categories", catalogHandler.Categories)
	api.GET("/tags", catalogHandler.Tags)
	api.GET("/catalog", catalogHandler.Catalog)
	api.GET("/product/:id", catalogHandler.Product)
	api.POST("/product/:id/reviews", reviewHandler.Create)
	api.GET("/products/popular", catalogHandler.Popular)
	api.GET("/products/limited", catalogHandler.Limited)
	api.GET("/banners", catalogHandler.Banners)
	api.GET("/sales", catalogHandler.Sales)

	// Account lifecycle
	api.POST("/sign-up", handler.SignUp)
	api.POST("/sign-in", handler.SignIn)
	api.POST("/sign-out", handler.SignOut, mid.AuthMiddleware)

	// Authenticated shop routes
	basket := api.Group("/basket", mid.AuthMiddleware)
	basket.GET("", basketHandler.Get)
	basket.POST("", basketHandler.Add)
	basket.DELETE("", basketHandler.Remove)

	ordersAPI := api.Group("", mid.AuthMiddleware)
	ordersAPI.GET("/orders", orderHandler.List)
	ordersAPI.POST("/orders", orderHandler.Place)
	ordersAPI.GET("/order/:id", orderHandler.Get)
	ordersAPI.POST("/order/:id", orderHandler.Finalize)
	ordersAPI.GET("/payment/:id", orderHandler.PaymentState)
	ordersAPI.POST("/payment/:id", orderHandler.Pay)

	// Profile management
	profile := api.Group("/profile", mid.AuthMiddleware)
	profile.GET("", profileHandler.Get)
	profile.POST("", profileHandler.Update)
	profile.POST("/password", profileHandler.ChangePassword)
	profile.POST("/avatar", profileHandler.UploadAvatar)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != http.ErrServerClosed {
		log.Fatal("Server error", zap.Error(err))
	}
}
