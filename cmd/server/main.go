package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/adapter/handler/http"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/app"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/database"
	grpcServer "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/grpc"
	httpServer "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/http"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/logger"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/obs"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger = zapLogger.With(zap.String("service", cfg.Service.Name))

	// Initialize tracing
	shutdownTracer, err := obs.InitTracer(context.Background(), obs.TracerConfig{
		Enabled:        cfg.Tracing.Enabled,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRatio:    cfg.Tracing.SampleRatio,
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Environment:    cfg.Service.Environment,
	})
	if err != nil {
		zapLogger.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	// Connect, migrate and wire use cases
	application, err := app.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			zapLogger.Error("Failed to close application", zap.Error(err))
		}
	}()

	if err := database.Migrate(application.DB, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	var verifier http.SignatureVerifier
	if cfg.Midtrans.VerifySignature {
		verifier = application.Gateway
	} else {
		zapLogger.Warn("Midtrans notification signature verification is disabled")
	}

	// Initialize servers
	grpcSrv := grpcServer.NewServer(cfg, zapLogger)
	httpSrv := httpServer.NewServer(cfg, zapLogger, httpServer.Dependencies{
		Initiator:   application.Initiator,
		Reconciler:  application.Reconciler,
		Verifier:    verifier,
		HealthCheck: application.HealthCheck,
	})

	// Start servers
	errCh := make(chan error, 2)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			errCh <- err
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a server failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		zapLogger.Info("Received signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		zapLogger.Error("Server stopped unexpectedly", zap.Error(err))
	}

	zapLogger.Info("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}
	grpcSrv.Shutdown()

	if err := shutdownTracer(ctx); err != nil {
		zapLogger.Error("Failed to shutdown tracer", zap.Error(err))
	}

	zapLogger.Info("Servers shut down successfully")
}
