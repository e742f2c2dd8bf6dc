package app

import (
	"context"
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/adapter/publisher"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/provider"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/database"
	paymentProvider "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/provider"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/usecase"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/messaging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the wired use cases and the resources they own.
type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Repos   *database.Repositories
	Gateway provider.PaymentGateway

	Initiator  *usecase.PaymentInitiator
	Reconciler *usecase.NotificationReconciler
	Replayer   *usecase.NotificationReplayer

	messages messaging.Publisher
	logger   *zap.Logger
}

// New connects to the database and builds every use case. The caller owns
// the result and must Close it.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a, err := Build(cfg, db, logger)
	if err != nil {
		_ = database.Close(db, logger)
		return nil, err
	}
	return a, nil
}

// Build wires the use cases on an open database.
func Build(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*App, error) {
	policy, err := usecase.ParseTransitionPolicy(cfg.Reconcile.TransitionPolicy)
	if err != nil {
		return nil, err
	}

	gateway, err := paymentProvider.NewFactory(cfg, logger).GetGatewayFromString("")
	if err != nil {
		return nil, fmt.Errorf("failed to create payment gateway: %w", err)
	}

	messages, err := messaging.NewPublisher(messaging.Config{
		Driver:        cfg.Messaging.Driver,
		RedisAddr:     cfg.Messaging.Redis.Addr,
		RedisPassword: cfg.Messaging.Redis.Password,
		RedisDB:       cfg.Messaging.Redis.DB,
		ChannelPrefix: cfg.Messaging.Redis.ChannelPrefix,
		AMQPURL:       cfg.Messaging.AMQP.URL,
		AMQPExchange:  cfg.Messaging.AMQP.Exchange,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create message publisher: %w", err)
	}

	repos := database.NewRepositories(db, logger)
	events := publisher.NewBookingEventPublisher(messages, logger)

	reconciler := usecase.NewNotificationReconciler(
		repos.Payment,
		repos.Booking,
		repos.Notification,
		events,
		policy,
		logger,
	)

	return &App{
		Config:  cfg,
		DB:      db,
		Repos:   repos,
		Gateway: gateway,
		Initiator: usecase.NewPaymentInitiator(
			repos.Booking,
			repos.Payment,
			gateway,
			usecase.NewOrderIDGenerator(cfg.Midtrans.OrderPrefix),
			logger,
		),
		Reconciler: reconciler,
		Replayer:   usecase.NewNotificationReplayer(repos.Notification, reconciler, logger),
		messages:   messages,
		logger:     logger,
	}, nil
}

// HealthCheck pings the database.
func (a *App) HealthCheck(ctx context.Context) error {
	sqlDB, err := a.DB.WithContext(ctx).DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the publisher and the database connection.
func (a *App) Close() error {
	if err := a.messages.Close(); err != nil {
		a.logger.Error("Failed to close message publisher", zap.Error(err))
	}
	return database.Close(a.DB, a.logger)
}
