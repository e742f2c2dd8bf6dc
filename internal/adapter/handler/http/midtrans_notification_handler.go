package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	apperrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// maxNotificationBytes bounds the notification body read into memory.
const maxNotificationBytes = 1 << 20

// NotificationReconciler applies a gateway notification.
type NotificationReconciler interface {
	Reconcile(ctx context.Context, n *dto.Notification) (*dto.ReconcileResult, error)
}

// SignatureVerifier checks a notification's signature_key.
type SignatureVerifier interface {
	VerifyNotification(orderID, statusCode, grossAmount, signature string) bool
}

// MidtransNotificationHandler handles Midtrans HTTP notifications
type MidtransNotificationHandler struct {
	reconciler NotificationReconciler
	verifier   SignatureVerifier
	logger     *zap.Logger
}

// NewMidtransNotificationHandler creates the handler. A nil verifier
// disables signature checks.
func NewMidtransNotificationHandler(
	reconciler NotificationReconciler,
	verifier SignatureVerifier,
	logger *zap.Logger,
) *MidtransNotificationHandler {
	return &MidtransNotificationHandler{
		reconciler: reconciler,
		verifier:   verifier,
		logger:     logger,
	}
}

// Handle processes POST /webhook/midtrans
func (h *MidtransNotificationHandler) Handle(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxNotificationBytes))
	if err != nil {
		h.logger.Error("Failed to read notification body",
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Failed to read request body",
		})
	}

	var notification dto.Notification
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &notification); err != nil {
			h.logger.Warn("Failed to parse Midtrans notification",
				zap.String("ip", c.RealIP()),
				zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Invalid notification payload",
			})
		}
		notification.Raw = json.RawMessage(body)
	}
	notification.RemoteIP = c.RealIP()

	h.logger.Info("Processing Midtrans notification",
		zap.String("order_id", notification.OrderID),
		zap.String("transaction_status", notification.TransactionStatus),
		zap.String("payment_type", notification.PaymentType),
		zap.String("fraud_status", notification.FraudStatus))

	if h.verifier != nil && notification.OrderID != "" &&
		!h.verifier.VerifyNotification(notification.OrderID, notification.StatusCode, notification.GrossAmount, notification.SignatureKey) {
		h.logger.Warn("Rejected Midtrans notification with invalid signature",
			zap.String("order_id", notification.OrderID),
			zap.String("ip", notification.RemoteIP))
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"message": "Invalid signature",
		})
	}

	result, err := h.reconciler.Reconcile(c.Request().Context(), &notification)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrInvalidArgument) {
			h.logger.Warn("Rejected Midtrans notification", zap.Error(err))
			return errorResponse(c, err)
		}
		apperrors.LogError(h.logger, err, "Failed to reconcile Midtrans notification",
			zap.String("order_id", notification.OrderID),
			zap.String("transaction_status", notification.TransactionStatus))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
