package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"medical-report-analyzer/internal/config"
	"medical-report-analyzer/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring. Missing model credentials abort startup.
	container, err := config.NewContainer(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Handlers
	analysisHandler := handler.NewAnalysisHandler(
		container.Fetcher,
		container.Extractor,
		container.Analyzer,
		container.Logger,
	)

	healthHandler := handler.NewHealthHandler(
		container.ModelClient,
		container.Cache,
	)

	// Router
	router := handler.NewRouter(
		analysisHandler,
		healthHandler,
		container.Logger,
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
