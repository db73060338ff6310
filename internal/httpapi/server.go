package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/phishsense/threatscan/internal/logging"
	"github.com/phishsense/threatscan/internal/service"
)

// NewServer creates and configures a new HTTP server
func NewServer(addr string, logger *logging.Logger, svc *service.Service) *http.Server {
	mux := http.NewServeMux()

	// Register the health endpoint
	mux.HandleFunc("/health", healthHandler)

	// Register the analysis endpoints
	mux.HandleFunc("/check", checkHandler(svc))
	mux.HandleFunc("/batch-check", batchCheckHandler(svc))

	// Register the hostname metadata endpoint
	mux.HandleFunc("/host-info", hostInfoHandler)

	// Wrap the mux with request-ID and logging middleware
	handler := requestIDMiddleware(loggingMiddleware(logger, mux))

	return &http.Server{
		Addr:    addr,
		Handler: handler,
	}
}

// healthHandler handles GET requests to /health
// Returns a simple JSON response indicating the service is healthy
func healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "ok",
		"service": "threatscan-api",
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON is a helper function to write JSON responses
// It sets the correct Content-Type header and encodes the data as JSON
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encoding errors are ignored; the status line has already been sent
	json.NewEncoder(w).Encode(data)
}
