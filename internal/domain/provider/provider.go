package provider

import (
	"context"
)

// PaymentGateway creates hosted-checkout transactions on a payment provider.
type PaymentGateway interface {
	// CreateTransaction registers an order with the provider and returns the
	// artifacts the client needs to complete payment.
	CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*CreateTransactionResponse, error)

	// VerifyNotification checks the authenticity of an inbound notification.
	VerifyNotification(orderID, statusCode, grossAmount, signature string) bool

	// GetProviderName returns the provider name
	GetProviderName() string
}

// CreateTransactionRequest represents a provider-agnostic checkout request
type CreateTransactionRequest struct {
	OrderID     string          `json:"order_id"`
	GrossAmount int64           `json:"gross_amount"` // Integer currency units
	Customer    CustomerDetails `json:"customer"`
}

// CustomerDetails identifies the payer. Email and Phone are optional.
type CustomerDetails struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CreateTransactionResponse carries the hosted checkout artifacts
type CreateTransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// ProviderType represents the type of payment provider
type ProviderType string

const (
	ProviderTypeMidtrans ProviderType = "midtrans"
)

// Error types for provider operations
type ProviderError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
