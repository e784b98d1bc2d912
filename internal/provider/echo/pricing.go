package echo

import (
	"context"
	"fmt"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

const (
	echoInputCostPer1K  = 0.0
	echoOutputCostPer1K = 0.0
)

// RegisterPricing registers echo model pricing with the registry.
// Echo models have zero cost as they are for testing purposes only.
func RegisterPricing(ctx context.Context, registry domain.PricingRegistry) error {
	if err := registry.RegisterPricing(ctx, modelName, domain.PricingConfig{
		InputCostPer1K:  echoInputCostPer1K,
		OutputCostPer1K: echoOutputCostPer1K,
	}); err != nil {
		return fmt.Errorf("failed to register echo pricing: %w", err)
	}
	return nil
}
