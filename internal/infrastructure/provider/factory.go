package provider

import (
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/provider"
	midtransProvider "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/provider/midtrans"
	"go.uber.org/zap"
)

// Factory creates payment gateways based on the provider type
type Factory struct {
	config *config.Config
	logger *zap.Logger
}

// NewFactory creates a new provider factory
func NewFactory(config *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		config: config,
		logger: logger,
	}
}

// GetGateway returns a payment gateway based on the provider type
func (f *Factory) GetGateway(providerType provider.ProviderType) (provider.PaymentGateway, error) {
	switch providerType {
	case provider.ProviderTypeMidtrans:
		return f.createMidtransGateway()
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

// GetGatewayFromString returns a payment gateway from a string type
func (f *Factory) GetGatewayFromString(providerStr string) (provider.PaymentGateway, error) {
	// Default to Midtrans if not specified
	if providerStr == "" {
		providerStr = string(provider.ProviderTypeMidtrans)
	}

	return f.GetGateway(provider.ProviderType(providerStr))
}

func (f *Factory) createMidtransGateway() (provider.PaymentGateway, error) {
	if f.config.Midtrans.ServerKey == "" {
		return nil, fmt.Errorf("Midtrans server key not configured")
	}

	return midtransProvider.NewSnapProvider(
		f.config.Midtrans.ServerKey,
		f.config.Midtrans.Environment,
		f.logger,
	), nil
}
