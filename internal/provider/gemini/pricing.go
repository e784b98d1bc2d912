package gemini

import (
	"context"
	"fmt"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

const (
	// Gemini 2.0 Flash pricing per 1K tokens
	flash2InputCostPer1K  = 0.0001
	flash2OutputCostPer1K = 0.0004

	// Gemini 2.0 Flash Lite pricing per 1K tokens
	flashLiteInputCostPer1K  = 0.000075
	flashLiteOutputCostPer1K = 0.0003

	// Gemini 1.5 Pro pricing per 1K tokens
	pro15InputCostPer1K  = 0.00125
	pro15OutputCostPer1K = 0.005

	// Gemini 1.5 Flash pricing per 1K tokens
	flash15InputCostPer1K  = 0.000075
	flash15OutputCostPer1K = 0.0003
)

// RegisterPricing registers Gemini model pricing with the registry, keyed by
// the catalog identifiers ("gemini/<model>").
func RegisterPricing(ctx context.Context, registry domain.PricingRegistry) error {
	models := map[string]domain.PricingConfig{
		"gemini/gemini-2.0-flash": {
			InputCostPer1K:  flash2InputCostPer1K,
			OutputCostPer1K: flash2OutputCostPer1K,
		},
		"gemini/gemini-2.0-flash-lite": {
			InputCostPer1K:  flashLiteInputCostPer1K,
			OutputCostPer1K: flashLiteOutputCostPer1K,
		},
		"gemini/gemini-1.5-pro": {
			InputCostPer1K:  pro15InputCostPer1K,
			OutputCostPer1K: pro15OutputCostPer1K,
		},
		"gemini/gemini-1.5-flash": {
			InputCostPer1K:  flash15InputCostPer1K,
			OutputCostPer1K: flash15OutputCostPer1K,
		},
	}

	for model, config := range models {
		if err := registry.RegisterPricing(ctx, model, config); err != nil {
			return fmt.Errorf("failed to register pricing for model %s: %w", model, err)
		}
	}

	return nil
}
