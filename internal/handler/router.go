package handler

import (
	"net/http"

	"medical-report-analyzer/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	analysisHandler *AnalysisHandler,
	healthHandler *HealthHandler,
	logger domain.Logger,
) http.Handler {
	router := mux.NewRouter()

	router.Use(RequestLogger(logger))
	router.Use(GzipResponse)

	router.HandleFunc("/", healthHandler.ServiceInfo).Methods("GET")
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/analyze-pdf", analysisHandler.AnalyzePDF).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		// Frontends are deployed on changing hosts; restricting origins is
		// handled at the edge in production.
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
