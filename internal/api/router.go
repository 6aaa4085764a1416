package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/honeynil/CampusMarket/internal/handler"
	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, RequestDuration)
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Handler     *handler.Handler
	RedisClient redis.RedisClient
	Issuer      *auth.TokenIssuer
	Metrics     http.Handler
	Checks      map[string]HealthCheck
}

func SetupRouter(d Deps) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, metricsMiddleware)
	r.NotFoundHandler = statusHandler(http.StatusNotFound)
	r.MethodNotAllowedHandler = statusHandler(http.StatusMethodNotAllowed)

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", healthHandler(d.Checks)).Methods(http.MethodGet)

	public := r.NewRoute().Subrouter()
	public.Use(auth.OptionalAuthMiddleware(d.RedisClient, d.Issuer))
	d.Handler.RegisterPublicRoutes(public)

	authHandler := auth.AuthMiddleware(d.RedisClient, d.Issuer)

	protected := r.NewRoute().Subrouter()
	protected.Use(authHandler)
	d.Handler.RegisterProtectedRoutes(protected)

	seller := r.PathPrefix("/seller").Subrouter()
	seller.Use(authHandler)
	d.Handler.RegisterSellerRoutes(seller)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authHandler)
	d.Handler.RegisterAdminRoutes(admin)

	return r
}

// metricsMiddleware labels requests by route template so path ids do not explode cardinality.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}

		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)
		if recorder.status == 0 {
			recorder.status = http.StatusOK
		}

		RequestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.status)).Inc()
		RequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// requestIDMiddleware echoes X-Request-ID, minting one when the client sent none.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// statusHandler answers unmatched requests with the same JSON envelope the handlers use.
func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": http.StatusText(status),
		})
	})
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		report := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				slog.Warn("health check failed", "dependency", name, "error", err)
				report[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			report[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": status == http.StatusOK,
			"message": http.StatusText(status),
			"data":    report,
		})
	}
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}
