package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pulse-uk/culture-pulse/internal/config"
	"github.com/pulse-uk/culture-pulse/internal/intelligence"
	"github.com/pulse-uk/culture-pulse/internal/notifications"
	"github.com/pulse-uk/culture-pulse/internal/scheduler"
	"github.com/pulse-uk/culture-pulse/internal/storage"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting Culture Pulse")

	// Initialize Azure storage for snapshot and report archives
	var storageClient storage.StorageInterface
	if cfg.StorageAccount != "" {
		storageClient, err = storage.NewAzureStorage(cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			logrus.Fatalf("Failed to initialize storage: %v", err)
		}
	} else {
		logrus.Warn("No storage account configured, snapshots will not be archived")
	}

	// Initialize notification services
	notificationService := notifications.NewService(cfg)

	// Initialize intelligence service
	intelligenceService := intelligence.NewService(cfg, storageClient, notificationService)

	// Initialize scheduler
	schedulerService, err := scheduler.NewService(cfg, intelligenceService)
	if err != nil {
		logrus.Fatalf("Failed to initialize scheduler: %v", err)
	}

	// Start scheduler
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	// Set up HTTP server for health checks and on-demand analysis
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Metrics endpoint
	router.HandleFunc("/metrics", metricsHandler(intelligenceService)).Methods("GET")

	// Manual trigger endpoint (for testing)
	router.HandleFunc("/trigger", triggerHandler(intelligenceService)).Methods("POST")

	// On-demand analysis endpoints
	analysis := router.PathPrefix("/analysis").Subrouter()
	analysis.HandleFunc("/patterns", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzePatterns(ctx)
	})).Methods("GET")
	analysis.HandleFunc("/insights", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzeInsights(ctx)
	})).Methods("GET")
	analysis.HandleFunc("/regional", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzeRegional(ctx)
	})).Methods("GET")
	analysis.HandleFunc("/network", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzeNetwork(ctx)
	})).Methods("GET")
	analysis.HandleFunc("/temporal", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzeTemporal(ctx)
	})).Methods("GET")
	analysis.HandleFunc("/opportunities", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzeOpportunities(ctx)
	})).Methods("GET")
	analysis.HandleFunc("/report", analysisHandler(func(ctx context.Context) (interface{}, error) {
		return intelligenceService.AnalyzeReport(ctx)
	})).Methods("GET")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // analysis endpoints collect live data
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
}

func metricsHandler(intelligenceService *intelligence.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := intelligenceService.GetMetrics()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(metrics))
	}
}

func triggerHandler(intelligenceService *intelligence.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := intelligenceService.RunPulse(); err != nil {
				logrus.Errorf("Manual pulse trigger failed: %v", err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Pulse run triggered successfully"}`))
	}
}

func analysisHandler(run func(ctx context.Context) (interface{}, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := run(r.Context())
		if err != nil {
			logrus.Errorf("Analysis request failed: %v", err)
			http.Error(w, `{"error":"analysis failed"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Errorf("Failed to encode analysis response: %v", err)
		}
	}
}
