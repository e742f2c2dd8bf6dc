package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubInitiator struct {
	req dto.InitiatePaymentRequest
}

func (s *stubInitiator) Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (*dto.InitiatePaymentResult, error) {
	s.req = req
	return &dto.InitiatePaymentResult{RedirectURL: "https://pay/tok", Token: "tok", BookingID: 5, PaymentID: 1}, nil
}

type stubReconciler struct{}

func (stubReconciler) Reconcile(ctx context.Context, n *dto.Notification) (*dto.ReconcileResult, error) {
	return &dto.ReconcileResult{Success: true}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Service.Name = "sportfy-payment"
	cfg.JWT.Secret = "test-secret"
	cfg.Server.HTTP.CORSOrigins = []string{"http://localhost:3000"}
	return cfg
}

func TestServer_Routes(t *testing.T) {
	initiator := &stubInitiator{}
	server := NewServer(testConfig(), zap.NewNop(), Dependencies{
		Initiator:  initiator,
		Reconciler: stubReconciler{},
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"sportfy-payment","database":"up"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("payment requires token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/bookings/5", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("payment with token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7", "email": "budi@example.com"}).
			SignedString([]byte("test-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/bookings/5", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Equal(t, dto.InitiatePaymentRequest{BookingID: "5", RequesterID: "7", RequesterEmail: "budi@example.com"}, initiator.req)
	})

	t.Run("webhook is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhook/midtrans", strings.NewReader(`{"order_id":"o"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("unknown route uses JSON error body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

func TestServer_HealthReportsDatabaseDown(t *testing.T) {
	server := NewServer(testConfig(), zap.NewNop(), Dependencies{
		Initiator:   &stubInitiator{},
		Reconciler:  stubReconciler{},
		HealthCheck: func(ctx context.Context) error { return errors.New("connection refused") },
	})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"down"`)
}
