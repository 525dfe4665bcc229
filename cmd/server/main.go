package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/vape-store/internal/config"
	"github.com/Lixing-Zhang/vape-store/internal/handlers"
	"github.com/Lixing-Zhang/vape-store/internal/middleware"
	"github.com/Lixing-Zhang/vape-store/internal/repository"
	"github.com/Lixing-Zhang/vape-store/internal/service"
	"github.com/Lixing-Zhang/vape-store/internal/session"
	"github.com/Lixing-Zhang/vape-store/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting vape store api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"session_ttl", cfg.Session.TTL,
		"session_max", cfg.Session.MaxSessions,
	)

	productRepo := repository.NewInMemoryProductRepository()
	store := session.NewStore(repository.Catalog(), cfg.Session.TTL, cfg.Session.MaxSessions)

	productService := service.NewProductService(productRepo)
	sessionService := service.NewSessionService(productRepo, store)

	healthHandler := handlers.NewHealthHandler(log, sessionService)
	productHandler := handlers.NewProductHandler(productService, log)
	sessionHandler := handlers.NewSessionHandler(sessionService, log)
	adminHandler := handlers.NewAdminHandler(sessionService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/featured", productHandler.FeaturedProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/filters", productHandler.FilterMetadata)

		// Visitor sessions
		r.Route("/session", func(r chi.Router) {
			r.Post("/", sessionHandler.CreateSession)
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", sessionHandler.GetSession)
				r.Delete("/", sessionHandler.EndSession)
				r.Get("/products", sessionHandler.VisibleProducts)
				r.Put("/section", sessionHandler.SetSection)
				r.Put("/categories/{category}", sessionHandler.SetCategory)
				r.Put("/flavors/{flavor}", sessionHandler.SetFlavor)
				r.Put("/price", sessionHandler.SetPriceRange)
				r.Put("/nicotine", sessionHandler.SetNicotineRange)
				r.Post("/reset", sessionHandler.ResetFilters)
				r.Post("/cart", sessionHandler.AddToCart)
			})
		})

		// Operator endpoints
		r.With(middleware.APIKeyAuth(cfg.Auth)).Get("/admin/stats", adminHandler.GetStats)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepSessions(sweepCtx, store, cfg.Session.SweepInterval, log)

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// sweepSessions evicts idle sessions until ctx is cancelled
func sweepSessions(ctx context.Context, store *session.Store, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				log.Debug("expired sessions removed", "count", removed)
			}
		}
	}
}
