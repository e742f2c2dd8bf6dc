package http

import (
	"context"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	"github.com/stretchr/testify/mock"
)

type MockPaymentInitiator struct {
	mock.Mock
}

func (m *MockPaymentInitiator) Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (*dto.InitiatePaymentResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InitiatePaymentResult), args.Error(1)
}

type MockNotificationReconciler struct {
	mock.Mock
}

func (m *MockNotificationReconciler) Reconcile(ctx context.Context, n *dto.Notification) (*dto.ReconcileResult, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReconcileResult), args.Error(1)
}

type MockSignatureVerifier struct {
	mock.Mock
}

func (m *MockSignatureVerifier) VerifyNotification(orderID, statusCode, grossAmount, signature string) bool {
	return m.Called(orderID, statusCode, grossAmount, signature).Bool(0)
}
