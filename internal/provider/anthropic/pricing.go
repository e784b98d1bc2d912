package anthropic

import (
	"context"
	"fmt"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

const (
	// Claude Sonnet 4 / 3.7 Sonnet pricing per 1K tokens
	sonnetInputCostPer1K  = 0.003
	sonnetOutputCostPer1K = 0.015

	// Claude Opus 4 pricing per 1K tokens
	opusInputCostPer1K  = 0.015
	opusOutputCostPer1K = 0.075

	// Claude 3.5 Haiku pricing per 1K tokens
	haiku35InputCostPer1K  = 0.0008
	haiku35OutputCostPer1K = 0.004

	// Claude 3 Haiku pricing per 1K tokens
	haiku3InputCostPer1K  = 0.00025
	haiku3OutputCostPer1K = 0.00125
)

// RegisterPricing registers Anthropic model pricing with the registry.
func RegisterPricing(ctx context.Context, registry domain.PricingRegistry) error {
	models := map[string]domain.PricingConfig{
		"claude-sonnet-4-20250514": {
			InputCostPer1K:  sonnetInputCostPer1K,
			OutputCostPer1K: sonnetOutputCostPer1K,
		},
		"claude-opus-4-20250514": {
			InputCostPer1K:  opusInputCostPer1K,
			OutputCostPer1K: opusOutputCostPer1K,
		},
		"claude-3-7-sonnet-20250219": {
			InputCostPer1K:  sonnetInputCostPer1K,
			OutputCostPer1K: sonnetOutputCostPer1K,
		},
		"claude-3-5-haiku-20241022": {
			InputCostPer1K:  haiku35InputCostPer1K,
			OutputCostPer1K: haiku35OutputCostPer1K,
		},
		"claude-3-haiku-20240307": {
			InputCostPer1K:  haiku3InputCostPer1K,
			OutputCostPer1K: haiku3OutputCostPer1K,
		},
	}

	for model, config := range models {
		if err := registry.RegisterPricing(ctx, model, config); err != nil {
			return fmt.Errorf("failed to register pricing for model %s: %w", model, err)
		}
	}

	return nil
}
