package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentFlow_InitiateThenSettle(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.addBooking(
		model.Booking{ID: 5, StartTime: start, EndTime: start.Add(2 * time.Hour), Status: model.BookingStatusPending},
		model.Court{ID: 3, Name: "Court A", PricePerHour: decimal.NewFromInt(100000)},
		model.User{ID: 7, Name: "Budi", Email: strPtr("budi@example.com")},
	)

	gateway := new(MockPaymentGateway)
	gateway.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req *provider.CreateTransactionRequest) bool {
		return req.GrossAmount == 200000 && req.Customer.Name == "Budi"
	})).Return(&provider.CreateTransactionResponse{Token: "tok", RedirectURL: "https://pay/tok"}, nil)

	initiator := NewPaymentInitiator(store, store, gateway, NewOrderIDGenerator("SPORTFY"), zap.NewNop())
	result, err := initiator.Initiate(ctx, dto.InitiatePaymentRequest{BookingID: "5", RequesterID: "7"})
	require.NoError(t, err)

	assert.Equal(t, int64(200000), result.GrossAmount)
	assert.Equal(t, int64(200000), *store.booking(5).TotalPrice)

	payment, ok := store.paymentFor(5)
	require.True(t, ok)
	assert.Equal(t, result.OrderID, payment.MidtransOrderID)
	assert.Equal(t, int64(200000), payment.GrossAmount)
	assert.Equal(t, model.TransactionStatusPending, payment.TransactionStatus)

	reconciler := NewNotificationReconciler(store, store, nil, nil, TransitionMonotonic, zap.NewNop())
	ack, err := reconciler.Reconcile(ctx, &dto.Notification{
		OrderID:           result.OrderID,
		TransactionStatus: "settlement",
		PaymentType:       "bank_transfer",
	})
	require.NoError(t, err)
	assert.True(t, ack.Success)

	assert.Equal(t, model.BookingStatusPaid, store.booking(5).Status)
	payment, _ = store.paymentFor(5)
	assert.Equal(t, "settlement", payment.TransactionStatus)
	assert.Equal(t, "bank_transfer", *payment.PaymentType)

	// paid bookings cannot be charged again
	_, err = initiator.Initiate(ctx, dto.InitiatePaymentRequest{BookingID: "5", RequesterID: "7"})
	assert.Error(t, err)
}

func TestPaymentFlow_ReinitiateKeepsSinglePayment(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.addBooking(
		model.Booking{ID: 5, StartTime: start, EndTime: start.Add(90 * time.Minute), Status: model.BookingStatusPending},
		model.Court{ID: 3, PricePerHour: decimal.NewFromInt(100000)},
		model.User{ID: 7, Name: "Budi"},
	)

	gateway := new(MockPaymentGateway)
	gateway.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&provider.CreateTransactionResponse{Token: "tok", RedirectURL: "https://pay/tok"}, nil)

	initiator := NewPaymentInitiator(store, store, gateway, NewOrderIDGenerator("SPORTFY"), zap.NewNop())
	req := dto.InitiatePaymentRequest{BookingID: "5", RequesterID: "7", RequesterEmail: "budi@example.com"}

	first, err := initiator.Initiate(ctx, req)
	require.NoError(t, err)
	second, err := initiator.Initiate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 1, store.paymentCount())
	assert.Equal(t, first.PaymentID, second.PaymentID)
	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Equal(t, int64(150000), second.GrossAmount)

	payment, _ := store.paymentFor(5)
	assert.Equal(t, second.OrderID, payment.MidtransOrderID)

	// the stored total is reused, so the second attempt writes no price
	assert.Equal(t, 1, store.bookingWrites)

	// the superseded order id is no longer known
	reconciler := NewNotificationReconciler(store, store, nil, nil, TransitionMonotonic, zap.NewNop())
	ack, err := reconciler.Reconcile(ctx, &dto.Notification{OrderID: first.OrderID, TransactionStatus: "settlement"})
	require.NoError(t, err)
	assert.False(t, ack.Success)
	assert.Equal(t, model.BookingStatusPending, store.booking(5).Status)
}
