package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/CampusMarket/internal/handler"
	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	redismocks "github.com/honeynil/CampusMarket/internal/infrastructure/redis/mocks"
	"github.com/honeynil/CampusMarket/internal/models"
	servicemocks "github.com/honeynil/CampusMarket/internal/services/mocks"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router   http.Handler
	redis    *redismocks.MockRedisClient
	catalog  *servicemocks.MockCatalogService
	bounties *servicemocks.MockBountyService
	orders   *servicemocks.MockOrderService
}

func newRouterFixture(t *testing.T, checks map[string]HealthCheck) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		redis:    redismocks.NewMockRedisClient(ctrl),
		catalog:  servicemocks.NewMockCatalogService(ctrl),
		bounties: servicemocks.NewMockBountyService(ctrl),
		orders:   servicemocks.NewMockOrderService(ctrl),
	}
	h := handler.NewHandler(handler.Services{
		Accounts: servicemocks.NewMockAccountService(ctrl),
		Catalog:  f.catalog,
		Orders:   f.orders,
		Bounties: f.bounties,
		Messages: servicemocks.NewMockMessageService(ctrl),
		Carts:    servicemocks.NewMockCartService(ctrl),
		Reviews:  servicemocks.NewMockReviewService(ctrl),
		Admin:    servicemocks.NewMockAdminService(ctrl),
	})
	f.router = SetupRouter(Deps{
		Handler:     h,
		RedisClient: f.redis,
		Issuer:      auth.NewTokenIssuer("secret", time.Hour),
		Checks:      checks,
	})
	return f
}

func TestSetupRouter_ProtectedRequiresToken(t *testing.T) {
	f := newRouterFixture(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/bounties", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSetupRouter_PublicAndProtectedShareAPath(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.bounties.EXPECT().OpenBounties(gomock.Any()).Return([]models.Bounty{{ID: 1}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bounties", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestSetupRouter_AuthenticatedRequest(t *testing.T) {
	f := newRouterFixture(t, nil)
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.GenerateToken(&models.User{ID: 1, Role: models.RoleBuyer})
	require.NoError(t, err)

	f.redis.EXPECT().Get(gomock.Any(), "user:1:token").Return(token, nil)
	f.orders.EXPECT().BuyerOrders(gomock.Any(), int64(1)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupRouter_UnmatchedRequestsUseEnvelope(t *testing.T) {
	f := newRouterFixture(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"unknown path", http.MethodGet, "/nowhere", http.StatusNotFound},
		{"wrong method", http.MethodPut, "/bounties", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, http.StatusText(tt.status), body["message"])
		})
	}
}

func requestCount(t *testing.T, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, RequestCounter.WithLabelValues(labels...).Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.catalog.EXPECT().ProductDetail(gomock.Any(), gomock.Nil(), int64(42)).Return(&models.ProductView{}, nil)

	before := requestCount(t, http.MethodGet, "/products/{id:[0-9]+}", "200")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	after := requestCount(t, http.MethodGet, "/products/{id:[0-9]+}", "200")
	assert.Equal(t, before+1, after)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]HealthCheck
		want   int
	}{
		{"all healthy", map[string]HealthCheck{"redis": func(context.Context) error { return nil }}, http.StatusOK},
		{"dependency down", map[string]HealthCheck{
			"redis":    func(context.Context) error { return nil },
			"postgres": func(context.Context) error { return errors.New("connection refused") },
		}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, tt.checks)

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.want, rec.Code)

			var body struct {
				Success bool              `json:"success"`
				Data    map[string]string `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want == http.StatusOK, body.Success)
			assert.Len(t, body.Data, len(tt.checks))
		})
	}
}
