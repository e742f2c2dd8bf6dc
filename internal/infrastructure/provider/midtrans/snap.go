package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/provider"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"
)

// snapClient is the subset of the Snap client used here.
type snapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

// SnapProvider implements the PaymentGateway interface with Midtrans Snap
type SnapProvider struct {
	client    snapClient
	serverKey string
	logger    *zap.Logger
}

// NewSnapProvider creates a new Midtrans Snap provider. environment is
// "production" or anything else for the sandbox.
func NewSnapProvider(serverKey, environment string, logger *zap.Logger) *SnapProvider {
	env := midtrans.Sandbox
	if environment == "production" {
		env = midtrans.Production
	}

	client := &snap.Client{}
	client.New(serverKey, env)

	return newSnapProvider(client, serverKey, logger)
}

func newSnapProvider(client snapClient, serverKey string, logger *zap.Logger) *SnapProvider {
	return &SnapProvider{
		client:    client,
		serverKey: serverKey,
		logger:    logger,
	}
}

// GetProviderName returns the provider name
func (p *SnapProvider) GetProviderName() string {
	return string(provider.ProviderTypeMidtrans)
}

// CreateTransaction creates a Snap transaction and returns its token and
// redirect URL
func (p *SnapProvider) CreateTransaction(ctx context.Context, req *provider.CreateTransactionRequest) (*provider.CreateTransactionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &provider.ProviderError{
			Code:    "REQUEST_ERROR",
			Message: "Request cancelled before calling Midtrans",
			Details: err.Error(),
		}
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: customerDetails(req.Customer),
	}

	resp, snapErr := p.client.CreateTransaction(snapReq)
	if snapErr != nil {
		p.logger.Error("SnapProvider: Failed to create transaction",
			zap.String("order_id", req.OrderID),
			zap.Int("status_code", snapErr.GetStatusCode()),
			zap.String("message", snapErr.GetMessage()))

		return nil, &provider.ProviderError{
			Code:       "API_ERROR",
			Message:    "Midtrans Snap request failed",
			Details:    snapErr.GetMessage(),
			StatusCode: snapErr.GetStatusCode(),
		}
	}

	if resp == nil || resp.Token == "" {
		details := ""
		if resp != nil {
			details = strings.Join(resp.ErrorMessages, "; ")
		}
		return nil, &provider.ProviderError{
			Code:    "RESPONSE_ERROR",
			Message: "Midtrans Snap returned no token",
			Details: details,
		}
	}

	p.logger.Debug("SnapProvider: Transaction created",
		zap.String("order_id", req.OrderID),
		zap.Int64("gross_amount", req.GrossAmount))

	return &provider.CreateTransactionResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// VerifyNotification checks signature_key, the hex SHA-512 of
// order_id + status_code + gross_amount + server key.
func (p *SnapProvider) VerifyNotification(orderID, statusCode, grossAmount, signature string) bool {
	if signature == "" {
		return false
	}
	expected := Signature(orderID, statusCode, grossAmount, p.serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) == 1
}

// Signature computes a Midtrans notification signature.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(fmt.Sprintf("%s%s%s%s", orderID, statusCode, grossAmount, serverKey)))
	return hex.EncodeToString(sum[:])
}

func customerDetails(c provider.CustomerDetails) *midtrans.CustomerDetails {
	details := &midtrans.CustomerDetails{FName: c.Name}
	if c.Email != nil {
		details.Email = *c.Email
	}
	if c.Phone != nil {
		details.Phone = *c.Phone
	}
	if details.FName == "" && details.Email == "" && details.Phone == "" {
		return nil
	}
	return details
}
