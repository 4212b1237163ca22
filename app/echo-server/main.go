package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ballisticmarket/app/echo-server/router"
	"ballisticmarket/business/cart"
	"ballisticmarket/business/checkout"
	"ballisticmarket/business/orders"
	"ballisticmarket/business/product"
	userService "ballisticmarket/business/user"
	"ballisticmarket/internal/middleware"
	"ballisticmarket/internal/repository/notification"
	"ballisticmarket/internal/repository/steam"
	"ballisticmarket/internal/repository/store"
	"ballisticmarket/internal/rest"
	"ballisticmarket/pkg/config"
	"ballisticmarket/pkg/database"
	"ballisticmarket/pkg/logger"
	"ballisticmarket/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting BallisticWorks Market", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.Init(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully", "driver", cfg.Database.Driver)

	// Init mail notification
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	steamRepo := steam.NewSteamRepository(
		steam.SteamConfig{
			APIKey:    cfg.Steam.APIKey,
			ServerURL: cfg.App.ServerURL,
		},
	)

	// Init repo
	userRepo := store.NewUserRepository(db)
	productRepo := store.NewProductRepository(db)
	cartRepo := store.NewCartRepository(db)
	orderRepo := store.NewOrderRepository(db)
	orderItemRepo := store.NewOrderItemRepository(db)
	recentPurchaseRepo := store.NewRecentPurchaseRepository(db)
	txManager := store.NewTxManager(db)

	// Init service
	usersService := userService.NewUserService(userRepo)
	productsService := product.NewProductService(productRepo)
	cartsService := cart.NewCartService(cartRepo, productRepo)
	checkoutService := checkout.NewCheckoutService(txManager, userRepo, cartRepo, mailjetEmail, cfg.Shop.AdminEmail)
	ordersService := orders.NewOrdersService(orderRepo, orderItemRepo)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	secureCookies := cfg.App.Environment == "production"

	// Init handler
	authHandler := rest.NewAuthHandler(usersService, steamRepo, cfg.Session.Secret, sessionTTL, cfg.App.ServerURL, cfg.App.ClientURL, secureCookies)
	shopHandler := rest.NewShopHandler(productsService, checkoutService, recentPurchaseRepo)
	userHandler := rest.NewUserHandler(usersService, cartsService)
	adminHandler := rest.NewAdminHandler(productsService, ordersService, usersService, cfg.Shop.UploadDir)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.App.ClientURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	// Session middleware
	authRequired := middleware.SessionMiddleware(cfg.Session.Secret)
	optionalSession := middleware.OptionalSession(cfg.Session.Secret)
	adminOnly := middleware.AdminOnly(usersService)

	// Operational endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Uploaded product images
	e.Static("/uploads", cfg.Shop.UploadDir)

	// Setup routes
	router.SetupAuthRoutes(e, authHandler, optionalSession)
	api := e.Group("/api")
	router.SetupShopRoutes(api, shopHandler, authRequired)
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupAdminRoutes(api, adminHandler, authRequired, adminOnly, optionalSession)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
