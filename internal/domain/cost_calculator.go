package domain

import (
	"context"
	"errors"
	"fmt"
)

const tokensPerPricingUnit = 1000.0

// StandardCostCalculator prices usage against the registry's per-1K rates.
// It is shared between the gateway and the estimators so actual and
// projected costs always come from the same table.
type StandardCostCalculator struct {
	pricing PricingRegistry
}

// NewStandardCostCalculator creates a new cost calculator.
func NewStandardCostCalculator(registry PricingRegistry) *StandardCostCalculator {
	return &StandardCostCalculator{
		pricing: registry,
	}
}

// Calculate computes the USD cost of the given usage. Unknown models return
// ErrPricingNotFound; callers decide whether that is fatal (estimation) or
// degrades to zero cost (execution).
func (c *StandardCostCalculator) Calculate(
	ctx context.Context,
	model string,
	usage Usage,
) (float64, error) {
	if model == "" {
		return 0, errors.New("model cannot be empty")
	}

	rates, err := c.pricing.GetPricing(ctx, model)
	if err != nil {
		return 0, fmt.Errorf("failed to price model %s: %w", model, err)
	}

	inputCost := float64(usage.PromptTokens) / tokensPerPricingUnit * rates.InputCostPer1K
	outputCost := float64(usage.CompletionTokens) / tokensPerPricingUnit * rates.OutputCostPer1K

	return inputCost + outputCost, nil
}
