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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/structcodes/assistant/api"
	"github.com/structcodes/assistant/checklist"
	"github.com/structcodes/assistant/config"
	"github.com/structcodes/assistant/genai"
	"github.com/structcodes/assistant/metrics"
	"github.com/structcodes/assistant/service"
	"github.com/structcodes/assistant/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting assistant backend...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)

	// Static table integrity: fail fast if a key refers to an element the
	// registry no longer knows, instead of silently falling back to the model.
	if err := checklist.Validate(); err != nil {
		log.Fatalf("Static checklist table is inconsistent: %v", err)
	}

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize genai client
	client := genai.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.ModelTimeout)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	// Initialize service
	svc := service.New(client, db, m)

	// Initialize handler
	h := api.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down assistant backend...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Assistant backend stopped")
}
