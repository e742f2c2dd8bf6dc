package dto

import "encoding/json"

// InitiatePaymentRequest carries the raw identifiers of a payment initiation.
// RequesterID and RequesterEmail come from the authenticated principal.
type InitiatePaymentRequest struct {
	BookingID      string
	RequesterID    string
	RequesterEmail string
}

// InitiatePaymentResult is returned to the client that started the payment.
type InitiatePaymentResult struct {
	RedirectURL string `json:"redirectUrl"`
	Token       string `json:"token"`
	BookingID   int64  `json:"bookingId"`
	PaymentID   int64  `json:"paymentId"`
	OrderID     string `json:"orderId"`
	GrossAmount int64  `json:"grossAmount"`
}

// Notification is the gateway's asynchronous transaction status callback.
// Only OrderID is mandatory; absent fields keep their stored values.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status,omitempty"`
	PaymentType       string `json:"payment_type,omitempty"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	TransactionTime   string `json:"transaction_time,omitempty"`

	TransactionID string `json:"transaction_id,omitempty"`
	StatusCode    string `json:"status_code,omitempty"`
	GrossAmount   string `json:"gross_amount,omitempty"`
	SignatureKey  string `json:"signature_key,omitempty"`

	// Raw is the payload as received, stored on the notification log.
	Raw json.RawMessage `json:"-"`
	// RemoteIP is the address the notification came from.
	RemoteIP string `json:"-"`
	// LogID points at an existing notification log row when replaying.
	LogID string `json:"-"`
}

// ReconcileResult is the acknowledgement returned to the gateway.
type ReconcileResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ReplayResult summarises a notification replay run.
type ReplayResult struct {
	Attempted int `json:"attempted"`
	Handled   int `json:"handled"`
	Ignored   int `json:"ignored"`
	Failed    int `json:"failed"`
}
