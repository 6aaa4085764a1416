package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartRepositoryCall opens a span for a repository method. The returned
// function records the outcome in the span and the repository metrics.
func StartRepositoryCall(ctx context.Context, method string) (context.Context, trace.Span, func(error)) {
	ctx, span := otel.Tracer("repository").Start(ctx, method)
	start := time.Now()
	return ctx, span, func(err error) {
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		RepositoryCalls.WithLabelValues(method, status).Inc()
		RepositoryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		span.End()
	}
}
