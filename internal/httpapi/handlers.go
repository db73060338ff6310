package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/phishsense/threatscan/internal/analyzer"
	"github.com/phishsense/threatscan/internal/hostinfo"
	"github.com/phishsense/threatscan/internal/service"
)

// checkRequest represents the JSON request body for the /check endpoint
type checkRequest struct {
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}

// batchCheckRequest represents the JSON request body for /batch-check
type batchCheckRequest struct {
	URLs []string `json:"urls"`
}

// batchCheckResponse wraps the ordered report list for /batch-check
type batchCheckResponse struct {
	Reports []*analyzer.ThreatReport `json:"reports"`
}

// checkHandler handles POST requests to /check
// Accepts a JSON body with a URL and optional content, returns a ThreatReport.
// A malformed URL inside a valid body still yields a 200 report; the engine
// fails open to a best-effort verdict.
func checkHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
				"error": "Method not allowed",
			})
			return
		}

		var req checkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid JSON",
			})
			return
		}

		if req.URL == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "URL is required",
			})
			return
		}

		report := svc.CheckURL(r.Context(), req.URL, req.Content)

		writeJSON(w, http.StatusOK, report)
	}
}

// batchCheckHandler handles POST requests to /batch-check
// Accepts a JSON body with a list of URLs; each is evaluated independently
// and results preserve input order
func batchCheckHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
				"error": "Method not allowed",
			})
			return
		}

		var req batchCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid JSON",
			})
			return
		}

		if len(req.URLs) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "At least one URL is required",
			})
			return
		}

		reports := svc.BatchCheck(r.Context(), req.URLs)

		writeJSON(w, http.StatusOK, batchCheckResponse{Reports: reports})
	}
}

// hostInfoHandler handles GET requests to /host-info?host=<hostname>
// Returns offline hostname metadata (IDNA forms, registrable domain,
// script composition) for audit display
func hostInfoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error": "Method not allowed",
		})
		return
	}

	host := r.URL.Query().Get("host")
	if host == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "host query parameter is required",
		})
		return
	}

	writeJSON(w, http.StatusOK, hostinfo.Inspect(host))
}
