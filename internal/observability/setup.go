package observability

import (
	"context"
	"net/http"

	"github.com/honeynil/CampusMarket/internal/config"
	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup initialises logs, metrics and traces for the process.
func Setup(ctx context.Context, cfg *config.Config) (func(context.Context) error, http.Handler) {
	observability.InitLogger(cfg.LogLevel)
	observability.InitMetrics()
	tracerShutdown := observability.InitTracing(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	return tracerShutdown, promhttp.Handler()
}
