package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/honeynil/CampusMarket/internal/services AccountService,CatalogService,OrderService,BountyService,MessageService,CartService,ReviewService,AdminService

const tracerName = "campus-market"

// timeNow is replaced in tests.
var timeNow = time.Now

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, op)
}

// fail records err on the span and returns it unchanged.
func fail(span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return err
}

func transitioned(entity string, to fmt.Stringer) {
	observability.Transitions.WithLabelValues(entity, to.String()).Inc()
}

// textField trims v and checks its length in characters.
func textField(field, v string, min, max int) (string, error) {
	v = strings.TrimSpace(v)
	n := utf8.RuneCountInString(v)
	if n < min {
		if min == 1 {
			return "", pkgerrors.Invalid("%s is required", field)
		}
		return "", pkgerrors.Invalid("%s must be at least %d characters", field, min)
	}
	if max > 0 && n > max {
		return "", pkgerrors.Invalid("%s must be at most %d characters", field, max)
	}
	return v, nil
}

// maxAmount is the smallest value a NUMERIC(10,2) column cannot hold.
var maxAmount = decimal.NewFromInt(100_000_000)

// validateAmount checks that d is a positive amount in whole cents that fits the money columns.
func validateAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return pkgerrors.Invalid("%s must be positive", field)
	}
	if !d.Equal(d.Round(2)) {
		return pkgerrors.Invalid("%s must have at most 2 decimal places", field)
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return pkgerrors.Invalid("%s must be less than %s", field, maxAmount.String())
	}
	return nil
}

// newOrderNo returns a 12 character upper-case token.
func newOrderNo() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
}

func ptr[T any](v T) *T {
	return &v
}
