package usecase

import (
	"context"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/event"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/provider"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetWithCourtAndUser(ctx context.Context, id int64) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateTotalPrice(ctx context.Context, id int64, totalPrice int64) error {
	args := m.Called(ctx, id, totalPrice)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatusIfCurrent(ctx context.Context, id int64, from, to model.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) UpsertAttempt(ctx context.Context, attempt repository.PaymentAttempt) (*model.Payment, error) {
	args := m.Called(ctx, attempt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByOrderIDWithBooking(ctx context.Context, orderID string) (*model.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ApplyNotification(ctx context.Context, id int64, update repository.NotificationUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateTransaction(ctx context.Context, req *provider.CreateTransactionRequest) (*provider.CreateTransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.CreateTransactionResponse), args.Error(1)
}

func (m *MockPaymentGateway) VerifyNotification(orderID, statusCode, grossAmount, signature string) bool {
	args := m.Called(orderID, statusCode, grossAmount, signature)
	return args.Bool(0)
}

func (m *MockPaymentGateway) GetProviderName() string {
	return "mock"
}

type MockOrderIDGenerator struct {
	mock.Mock
}

func (m *MockOrderIDGenerator) Generate(bookingID int64) (string, error) {
	args := m.Called(bookingID)
	return args.String(0), args.Error(1)
}

type MockNotificationLogRepository struct {
	mock.Mock
}

func (m *MockNotificationLogRepository) Save(ctx context.Context, notification *model.PaymentNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationLogRepository) MarkHandled(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationLogRepository) MarkIgnored(ctx context.Context, id string, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockNotificationLogRepository) MarkFailed(ctx context.Context, id string, err error) error {
	args := m.Called(ctx, id, err)
	return args.Error(0)
}

func (m *MockNotificationLogRepository) GetRetryable(ctx context.Context, limit, maxAttempts int) ([]*model.PaymentNotification, error) {
	args := m.Called(ctx, limit, maxAttempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PaymentNotification), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingStatusChanged(ctx context.Context, evt event.BookingStatusChanged) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Reconcile(ctx context.Context, n *dto.Notification) (*dto.ReconcileResult, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReconcileResult), args.Error(1)
}
