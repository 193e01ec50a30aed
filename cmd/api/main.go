package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tingtingtong/udup-restaurant-backend/internal/cache"
	"github.com/tingtingtong/udup-restaurant-backend/internal/config"
	"github.com/tingtingtong/udup-restaurant-backend/internal/handler"
	"github.com/tingtingtong/udup-restaurant-backend/internal/middleware"
	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
	"github.com/tingtingtong/udup-restaurant-backend/internal/router"
	"github.com/tingtingtong/udup-restaurant-backend/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Udupi restaurant backend...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize the persistence store based on config
	var (
		store repository.Store
		err   error
	)
	switch cfg.Store.Type {
	case "sqlite":
		store, err = repository.NewSQLStore("sqlite", cfg.Store.SQLitePath)
	case "mysql":
		store, err = repository.NewSQLStore("mysql", cfg.Store.MySQLDSN())
	default: // mongodb
		store, err = repository.NewMongoStore(cfg.Store.MongoURI, cfg.Store.MongoDatabase)
	}
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.Store.Type, err)
	}
	defer store.Close()
	log.Printf("%s store initialized", cfg.Store.Type)

	// Initialize the token denylist: Redis when configured, otherwise
	// in-process
	var denylist cache.Denylist
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Printf("Warning: Redis connection failed, falling back to memory denylist: %v", err)
			denylist = cache.NewMemoryDenylist()
		} else {
			denylist = cache.NewRedisDenylist(redisClient)
			log.Println("Redis denylist initialized")
		}
	} else {
		denylist = cache.NewMemoryDenylist()
	}
	defer denylist.Close()

	// Initialize services
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		log.Println("Warning: JWT_SECRET not set, using insecure development secret")
		secret = "secret"
	}
	tokenService := service.NewTokenService(secret, cfg.Auth.TokenTTL, denylist)
	inventoryService := service.NewInventoryService(store.Inventory())

	// Initialize handlers
	statusHandler := handler.New()
	authHandler := handler.NewAuthHandler(tokenService, store.Users())
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	orderHandler := handler.NewOrderHandler(store.Orders())
	itemHandler := handler.NewItemHandler(store.Items())
	dashboardHandler := handler.NewDashboardHandler(store.Inventory(), store.Orders())

	// Create auth middleware with injected dependencies
	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthConfig{
		TokenService: tokenService,
	})

	// Create router
	r := router.New(router.Config{
		StatusHandler:    statusHandler,
		AuthHandler:      authHandler,
		InventoryHandler: inventoryHandler,
		OrderHandler:     orderHandler,
		ItemHandler:      itemHandler,
		DashboardHandler: dashboardHandler,
		AuthMiddleware:   authMiddleware,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
