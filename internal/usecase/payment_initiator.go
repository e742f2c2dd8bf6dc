package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	domainErrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/errors"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/provider"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	apperrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// PaymentInitiator starts a gateway checkout for a pending booking.
type PaymentInitiator struct {
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	gateway     provider.PaymentGateway
	orderIDs    OrderIDGenerator
	logger      *zap.Logger
}

func NewPaymentInitiator(
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	gateway provider.PaymentGateway,
	orderIDs OrderIDGenerator,
	logger *zap.Logger,
) *PaymentInitiator {
	return &PaymentInitiator{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		orderIDs:    orderIDs,
		logger:      logger,
	}
}

// Initiate validates that the requester owns the pending booking, settles
// the booking's total price, records a fresh charge attempt and asks the
// gateway for a checkout token.
func (u *PaymentInitiator) Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (result *dto.InitiatePaymentResult, err error) {
	ctx, span := tracer.Start(ctx, "PaymentInitiator.Initiate")
	defer func() { endSpan(span, err) }()

	bookingID, ok := parseID(req.BookingID)
	if !ok {
		return nil, domainErrors.NewInvalidInputError("bookingId is not valid")
	}
	span.SetAttributes(attribute.Int64("booking.id", bookingID))

	// An absent requester is indistinguishable from a foreign booking.
	if strings.TrimSpace(req.RequesterID) == "" {
		return nil, domainErrors.NewBookingNotFoundError(req.BookingID)
	}
	requesterID, ok := parseID(req.RequesterID)
	if !ok {
		return nil, domainErrors.NewInvalidInputError("requester id is not valid")
	}

	booking, err := u.bookingRepo.GetWithCourtAndUser(ctx, bookingID)
	if err != nil {
		u.logger.Error("PaymentInitiator: Failed to load booking",
			zap.Int64("booking_id", bookingID),
			zap.Error(err))
		return nil, domainErrors.NewPersistenceError("failed to load booking", err)
	}

	if booking == nil || booking.UserID != requesterID {
		u.logger.Info("PaymentInitiator: Booking not found for requester",
			zap.Int64("booking_id", bookingID),
			zap.Int64("requester_id", requesterID),
			zap.Bool("exists", booking != nil))
		return nil, domainErrors.NewBookingNotFoundError(req.BookingID)
	}

	if booking.Status != model.BookingStatusPending {
		return nil, domainErrors.NewBookingNotPendingError(req.BookingID, string(booking.Status))
	}

	grossAmount := ComputeGrossAmount(booking, booking.Court)
	if grossAmount <= 0 {
		u.logger.Warn("PaymentInitiator: Booking has no chargeable amount",
			zap.Int64("booking_id", bookingID),
			zap.Int64("gross_amount", grossAmount))
		return nil, &domainErrors.PaymentError{
			Type:      domainErrors.ErrTypeInvalidState,
			Message:   "booking has no chargeable amount",
			BookingID: req.BookingID,
		}
	}

	if booking.TotalPrice == nil || *booking.TotalPrice != grossAmount {
		if err := u.bookingRepo.UpdateTotalPrice(ctx, bookingID, grossAmount); err != nil {
			u.logger.Error("PaymentInitiator: Failed to store booking total price",
				zap.Int64("booking_id", bookingID),
				zap.Int64("gross_amount", grossAmount),
				zap.Error(err))
			return nil, domainErrors.NewPersistenceError("failed to update booking total price", err)
		}
	}

	orderID, err := u.orderIDs.Generate(bookingID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate order id")
	}
	span.SetAttributes(attribute.String("payment.order_id", orderID))

	payment, err := u.paymentRepo.UpsertAttempt(ctx, repository.PaymentAttempt{
		BookingID:   bookingID,
		OrderID:     orderID,
		GrossAmount: grossAmount,
	})
	if err != nil {
		u.logger.Error("PaymentInitiator: Failed to upsert payment",
			zap.Int64("booking_id", bookingID),
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, domainErrors.NewPersistenceError("failed to store payment", err)
	}

	transaction, err := u.gateway.CreateTransaction(ctx, &provider.CreateTransactionRequest{
		OrderID:     orderID,
		GrossAmount: grossAmount,
		Customer:    customerDetails(booking.User, req.RequesterEmail),
	})
	if err != nil {
		u.logger.Error("PaymentInitiator: Gateway transaction failed",
			zap.Int64("booking_id", bookingID),
			zap.String("order_id", orderID),
			zap.String("provider", u.gateway.GetProviderName()),
			zap.Error(err))
		return nil, domainErrors.NewGatewayError(req.BookingID, orderID, err)
	}

	u.logger.Info("PaymentInitiator: Payment initiated",
		zap.Int64("booking_id", bookingID),
		zap.Int64("payment_id", payment.ID),
		zap.String("order_id", orderID),
		zap.Int64("gross_amount", grossAmount))

	return &dto.InitiatePaymentResult{
		RedirectURL: transaction.RedirectURL,
		Token:       transaction.Token,
		BookingID:   bookingID,
		PaymentID:   payment.ID,
		OrderID:     orderID,
		GrossAmount: grossAmount,
	}, nil
}

// customerDetails applies the contact precedence: the booking owner's email,
// then the authenticated requester's email; phone only from the owner.
func customerDetails(user *model.User, requesterEmail string) provider.CustomerDetails {
	var customer provider.CustomerDetails

	if user != nil {
		customer.Name = user.Name
		customer.Email = nonEmpty(user.Email)
		customer.Phone = nonEmpty(user.Phone)
	}
	if customer.Email == nil {
		customer.Email = nonEmpty(&requesterEmail)
	}

	return customer
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
