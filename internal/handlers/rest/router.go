// Package rest exposes the max balance change computation over HTTP.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// requestIDHeader carries the request id, echoed back or generated.
const requestIDHeader = "X-Request-ID"

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	svc balancechange.Service
}

// NewRouter returns the HTTP routes served by the application.
func NewRouter(svc balancechange.Service) *mux.Router {
	h := handler{svc: svc}

	r := mux.NewRouter()
	r.Use(withRequestLogging)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/api/max-balance-change", h.maxBalanceChange).Methods(http.MethodGet)

	return r
}

func (h handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// maxBalanceChange answers 200 with the result or 400 with a public error
// message. Internal causes are never part of the body.
func (h handler) maxBalanceChange(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MaxBalanceChange(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: publicMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// publicMessage returns the caller-facing text for a computation error.
func publicMessage(err error) string {
	var fetchErr *balancechange.BlockFetchError
	switch {
	case errors.Is(err, balancechange.ErrTipUnavailable):
		return balancechange.ErrTipUnavailable.Error()
	case errors.As(err, &fetchErr):
		return fetchErr.Error()
	default:
		return balancechange.ErrUnexpected.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusRecorder captures the status code written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags the request context with a request id and logs
// the outcome of every request.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := logger.Derive(r.Context(), "request_id", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		startedAt := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "request served",
			"http.method", r.Method,
			"http.path", r.URL.Path,
			"http.status", rec.status,
			"duration", time.Since(startedAt),
		)
	})
}
