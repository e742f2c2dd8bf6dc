package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	handlers "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/adapter/handler/http"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/middleware/auth"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Dependencies are the use cases served over HTTP.
type Dependencies struct {
	Initiator  handlers.PaymentInitiator
	Reconciler handlers.NotificationReconciler
	// Verifier checks notification signatures; nil disables the check.
	Verifier handlers.SignatureVerifier
	// HealthCheck reports database reachability; nil always reports up.
	HealthCheck func(ctx context.Context) error
}

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	deps   Dependencies
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		deps:   deps,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	logger.WithEchoLogger(s.echo, s.logger)

	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(middleware.Recover())
	s.echo.Use(logger.NewEchoRequestLogger(s.logger))

	if origins := s.config.Server.HTTP.CORSOrigins; len(origins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", s.health)

	paymentHandler := handlers.NewPaymentHandler(s.deps.Initiator, s.logger)
	notificationHandler := handlers.NewMidtransNotificationHandler(s.deps.Reconciler, s.deps.Verifier, s.logger)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
	}

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Protected routes (require JWT authentication)
	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))
	protected.POST("/payments/bookings/:bookingId", paymentHandler.CreateBookingPayment)

	// Gateway notifications (outside API versioning, no JWT)
	s.echo.POST("/webhook/midtrans", notificationHandler.Handle)
}

func (s *Server) health(c echo.Context) error {
	body := echo.Map{
		"status":   "healthy",
		"service":  s.config.Service.Name,
		"database": "up",
	}

	if s.deps.HealthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := s.deps.HealthCheck(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			body["status"] = "unhealthy"
			body["database"] = "down"
			return c.JSON(http.StatusServiceUnavailable, body)
		}
	}

	return c.JSON(http.StatusOK, body)
}
