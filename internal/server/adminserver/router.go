package adminserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yndnr/msgserver-go/internal/core/domain"
	"github.com/yndnr/msgserver-go/internal/infra/buildinfo"
	"github.com/yndnr/msgserver-go/internal/storage/memory"
	"github.com/yndnr/msgserver-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the admin router.
type RouterConfig struct {
	// Store is inspected by the message lookup route.
	Store *memory.Store

	// Metrics backs /metrics. Nil disables the route.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger *slog.Logger
}

// NewRouter creates the admin router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(Recover(logger)), mux.MiddlewareFunc(RequestID()), mux.MiddlewareFunc(AccessLog(logger)))

	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/version", handleVersion).Methods(http.MethodGet)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}
	if cfg.Store != nil {
		r.HandleFunc("/messages/{key}", messageHandler(cfg.Store)).Methods(http.MethodGet)
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

type messageResponse struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

func messageHandler(store *memory.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]
		if err := domain.ValidateKey(key); err != nil {
			writeDomainError(w, http.StatusBadRequest, err)
			return
		}

		msg, ok := store.Get(key)
		if !ok {
			writeDomainError(w, http.StatusNotFound, domain.ErrKeyNotFound)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Key: key, Message: msg})
	}
}

func writeDomainError(w http.ResponseWriter, status int, err error) {
	code := domain.GetErrorCode(err)
	w.Header().Set("X-Error-Code", code)
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": err.Error(),
	})
}
