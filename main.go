package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"generation-service/config"
	"generation-service/gemini"
	"generation-service/handlers"
	"generation-service/metrics"
	"generation-service/uploads"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EndPointHealth       = "/health"
	EndPointMetrics      = "/metrics"
	EndPointText         = "/generate-text"
	EndPointFromImage    = "/generate-from-image"
	EndPointFromDocument = "/generate-from-document"
	EndPointFromAudio    = "/generate-from-audio"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	log.Info("Starting the generation service...")

	// Initialize the Gemini client
	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer client.Close()

	// Initialize the scratch file store
	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	// Initialize handlers
	h := handlers.NewHandlers(cfg, client, store)

	// Register Prometheus metrics
	metrics.Register()

	// Setup router
	router := gin.Default()

	router.GET(EndPointHealth, h.HealthCheck)
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))
	router.POST(EndPointText, h.GenerateText)
	router.POST(EndPointFromImage, h.GenerateFromImage)
	router.POST(EndPointFromDocument, h.GenerateFromDocument)
	router.POST(EndPointFromAudio, h.GenerateFromAudio)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Infof("Generation service listening on port %s (provider: %s)", cfg.Port, client.SourceName())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
