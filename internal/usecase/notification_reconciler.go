package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	domainErrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/errors"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/event"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// MessagePaymentNotFound is acknowledged to the gateway for unknown orders.
const MessagePaymentNotFound = "payment not found"

// maxStatusAttempts bounds the compare-and-set loop on the booking status.
const maxStatusAttempts = 3

// gateway timestamps without an offset are Western Indonesia Time.
var gatewayLocation = time.FixedZone("WIB", 7*60*60)

var transactionTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Reconciler applies gateway notifications.
type Reconciler interface {
	Reconcile(ctx context.Context, n *dto.Notification) (*dto.ReconcileResult, error)
}

// NotificationReconciler merges gateway notifications into payment and
// booking state. It is safe to call repeatedly with the same notification.
type NotificationReconciler struct {
	paymentRepo     repository.PaymentRepository
	bookingRepo     repository.BookingRepository
	notificationLog repository.NotificationLogRepository
	publisher       event.Publisher
	policy          TransitionPolicy
	logger          *zap.Logger
	now             func() time.Time
}

// NewNotificationReconciler creates a reconciler. notificationLog and
// publisher are optional.
func NewNotificationReconciler(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	notificationLog repository.NotificationLogRepository,
	publisher event.Publisher,
	policy TransitionPolicy,
	logger *zap.Logger,
) *NotificationReconciler {
	return &NotificationReconciler{
		paymentRepo:     paymentRepo,
		bookingRepo:     bookingRepo,
		notificationLog: notificationLog,
		publisher:       publisher,
		policy:          policy,
		logger:          logger,
		now:             time.Now,
	}
}

// Reconcile stores the notification's fields on the payment and advances the
// booking status when the transaction status maps to a new one. Unknown order
// ids are acknowledged with Success false; persistence failures are returned
// so the gateway redelivers.
func (u *NotificationReconciler) Reconcile(ctx context.Context, n *dto.Notification) (result *dto.ReconcileResult, err error) {
	if n == nil || strings.TrimSpace(n.OrderID) == "" {
		return nil, domainErrors.NewInvalidInputError("order_id is required")
	}
	orderID := strings.TrimSpace(n.OrderID)

	ctx, span := tracer.Start(ctx, "NotificationReconciler.Reconcile")
	span.SetAttributes(
		attribute.String("payment.order_id", orderID),
		attribute.String("payment.transaction_status", n.TransactionStatus),
	)
	defer func() { endSpan(span, err) }()

	logID := u.recordReceived(ctx, orderID, n)

	result, err = u.apply(ctx, orderID, n)

	u.recordOutcome(ctx, logID, result, err)
	return result, err
}

func (u *NotificationReconciler) apply(ctx context.Context, orderID string, n *dto.Notification) (*dto.ReconcileResult, error) {
	payment, err := u.paymentRepo.GetByOrderIDWithBooking(ctx, orderID)
	if err != nil {
		u.logger.Error("NotificationReconciler: Failed to load payment",
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, domainErrors.NewPersistenceError("failed to load payment", err)
	}

	if payment == nil {
		fields := []zap.Field{zap.String("order_id", orderID)}
		if bookingID, ok := ParseOrderBookingID(orderID); ok {
			fields = append(fields, zap.Int64("order_booking_id", bookingID))
		}
		u.logger.Warn("NotificationReconciler: Payment not found for order", fields...)
		return &dto.ReconcileResult{Success: false, Message: MessagePaymentNotFound}, nil
	}

	update := u.notificationUpdate(orderID, n)
	if !update.IsEmpty() {
		if err := u.paymentRepo.ApplyNotification(ctx, payment.ID, update); err != nil {
			u.logger.Error("NotificationReconciler: Failed to update payment",
				zap.Int64("payment_id", payment.ID),
				zap.String("order_id", orderID),
				zap.Error(err))
			return nil, domainErrors.NewPersistenceError("failed to update payment", err)
		}
	}

	if payment.Booking == nil {
		u.logger.Error("NotificationReconciler: Payment has no booking",
			zap.Int64("payment_id", payment.ID),
			zap.Int64("booking_id", payment.BookingID))
		return nil, domainErrors.NewPersistenceError("payment booking could not be loaded", nil)
	}

	if err := u.advanceBooking(ctx, payment, n.TransactionStatus); err != nil {
		return nil, err
	}

	return &dto.ReconcileResult{Success: true}, nil
}

// advanceBooking writes the mapped booking status with a compare-and-set,
// re-reading the booking when a concurrent writer got there first.
func (u *NotificationReconciler) advanceBooking(ctx context.Context, payment *model.Payment, transactionStatus string) error {
	bookingID := payment.BookingID
	current := payment.Booking.Status

	for attempt := 0; attempt < maxStatusAttempts; attempt++ {
		next := NextBookingStatus(transactionStatus, current)
		if next == current {
			return nil
		}

		if !u.policy.Allows(current, next) {
			u.logger.Warn("NotificationReconciler: Ignoring booking status regression",
				zap.Int64("booking_id", bookingID),
				zap.String("order_id", payment.MidtransOrderID),
				zap.String("current_status", string(current)),
				zap.String("mapped_status", string(next)),
				zap.String("transaction_status", transactionStatus))
			return nil
		}

		updated, err := u.bookingRepo.UpdateStatusIfCurrent(ctx, bookingID, current, next)
		if err != nil {
			u.logger.Error("NotificationReconciler: Failed to update booking status",
				zap.Int64("booking_id", bookingID),
				zap.String("to", string(next)),
				zap.Error(err))
			return domainErrors.NewPersistenceError("failed to update booking status", err)
		}

		if updated {
			u.logger.Info("NotificationReconciler: Booking status changed",
				zap.Int64("booking_id", bookingID),
				zap.String("order_id", payment.MidtransOrderID),
				zap.String("from", string(current)),
				zap.String("to", string(next)))
			u.publish(ctx, event.BookingStatusChanged{
				BookingID:         bookingID,
				PaymentID:         payment.ID,
				OrderID:           payment.MidtransOrderID,
				From:              current,
				To:                next,
				TransactionStatus: transactionStatus,
				OccurredAt:        u.now().UTC(),
			})
			return nil
		}

		booking, err := u.bookingRepo.GetWithCourtAndUser(ctx, bookingID)
		if err != nil {
			return domainErrors.NewPersistenceError("failed to reload booking", err)
		}
		if booking == nil {
			return domainErrors.NewPersistenceError("booking disappeared during reconciliation", nil)
		}
		u.logger.Debug("NotificationReconciler: Booking changed concurrently",
			zap.Int64("booking_id", bookingID),
			zap.String("expected", string(current)),
			zap.String("actual", string(booking.Status)))
		current = booking.Status
	}

	return domainErrors.NewPersistenceError("booking status kept changing during reconciliation", nil)
}

func (u *NotificationReconciler) notificationUpdate(orderID string, n *dto.Notification) repository.NotificationUpdate {
	update := repository.NotificationUpdate{
		TransactionStatus: optional(n.TransactionStatus),
		PaymentType:       optional(n.PaymentType),
		FraudStatus:       optional(n.FraudStatus),
	}

	if raw := strings.TrimSpace(n.TransactionTime); raw != "" {
		if t, ok := parseTransactionTime(raw); ok {
			update.TransactionTime = &t
		} else {
			u.logger.Warn("NotificationReconciler: Unparseable transaction time",
				zap.String("order_id", orderID),
				zap.String("transaction_time", raw))
		}
	}

	return update
}

func (u *NotificationReconciler) publish(ctx context.Context, evt event.BookingStatusChanged) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.PublishBookingStatusChanged(ctx, evt); err != nil {
		u.logger.Warn("NotificationReconciler: Failed to publish booking event",
			zap.Int64("booking_id", evt.BookingID),
			zap.String("topic", evt.Topic()),
			zap.Error(err))
	}
}

func (u *NotificationReconciler) recordReceived(ctx context.Context, orderID string, n *dto.Notification) string {
	if u.notificationLog == nil {
		return ""
	}
	if n.LogID != "" {
		return n.LogID
	}

	payload := n.Raw
	if len(payload) == 0 {
		encoded, err := json.Marshal(n)
		if err != nil {
			u.logger.Warn("NotificationReconciler: Failed to encode notification", zap.Error(err))
			return ""
		}
		payload = encoded
	}

	record := &model.PaymentNotification{
		ID:                uuid.NewString(),
		OrderID:           orderID,
		TransactionStatus: optional(n.TransactionStatus),
		Payload:           datatypes.JSON(payload),
		Status:            model.NotificationStatusReceived,
		RemoteIP:          optional(n.RemoteIP),
	}
	if err := u.notificationLog.Save(ctx, record); err != nil {
		u.logger.Warn("NotificationReconciler: Failed to store notification",
			zap.String("order_id", orderID),
			zap.Error(err))
		return ""
	}
	return record.ID
}

func (u *NotificationReconciler) recordOutcome(ctx context.Context, logID string, result *dto.ReconcileResult, reconcileErr error) {
	if logID == "" || u.notificationLog == nil {
		return
	}

	var err error
	switch {
	case reconcileErr != nil && !domainErrors.IsRetryable(reconcileErr):
		err = u.notificationLog.MarkIgnored(ctx, logID, reconcileErr.Error())
	case reconcileErr != nil:
		err = u.notificationLog.MarkFailed(ctx, logID, reconcileErr)
	case result != nil && !result.Success:
		err = u.notificationLog.MarkIgnored(ctx, logID, result.Message)
	default:
		err = u.notificationLog.MarkHandled(ctx, logID)
	}
	if err != nil {
		u.logger.Warn("NotificationReconciler: Failed to record notification outcome",
			zap.String("notification_id", logID),
			zap.Error(err))
	}
}

func parseTransactionTime(raw string) (time.Time, bool) {
	for _, layout := range transactionTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, gatewayLocation); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
