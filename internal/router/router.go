package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/tingtingtong/udup-restaurant-backend/internal/handler"
	"github.com/tingtingtong/udup-restaurant-backend/internal/middleware"
)

// Config holds the configuration for creating a router.
type Config struct {
	StatusHandler    *handler.Handler
	AuthHandler      *handler.AuthHandler
	InventoryHandler *handler.InventoryHandler
	OrderHandler     *handler.OrderHandler
	ItemHandler      *handler.ItemHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   func(http.Handler) http.Handler
}

// New creates and configures the HTTP router. The routing table is
// built once here; register, login, logout and the status probe are
// public, everything else sits behind the auth middleware.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// PUBLIC routes (no auth required)
	if cfg.StatusHandler != nil {
		r.Get("/api/status", cfg.StatusHandler.Status)
	}

	if cfg.AuthHandler != nil {
		r.Route("/api/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})
	}

	// AUTHENTICATED routes
	r.Group(func(r chi.Router) {
		if cfg.AuthMiddleware != nil {
			r.Use(cfg.AuthMiddleware)
		}

		if cfg.InventoryHandler != nil {
			r.Route("/api/inventory", func(r chi.Router) {
				r.Post("/add", cfg.InventoryHandler.Add)
				r.Get("/list", cfg.InventoryHandler.ListByRange)
				r.Get("/list/{timeFrame}", cfg.InventoryHandler.ListByTimeFrame)
				r.Put("/update/{id}", cfg.InventoryHandler.Update)
				r.Delete("/delete/{id}", cfg.InventoryHandler.Delete)
			})
		}

		if cfg.OrderHandler != nil {
			r.Route("/api/orders", func(r chi.Router) {
				r.Post("/create", cfg.OrderHandler.Create)
				r.Get("/list", cfg.OrderHandler.List)
			})
		}

		if cfg.ItemHandler != nil {
			r.Route("/api/items", func(r chi.Router) {
				r.Post("/add", cfg.ItemHandler.Add)
				r.Get("/list", cfg.ItemHandler.List)
			})
		}

		if cfg.DashboardHandler != nil {
			r.Get("/api/dashboard/stats", cfg.DashboardHandler.Stats)
		}
	})

	return r
}
