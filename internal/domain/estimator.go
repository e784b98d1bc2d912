package domain

import (
	"context"
	"fmt"
)

// DefaultEstimatedCompletionTokens is assumed when the caller does not
// supply an expected completion length.
const DefaultEstimatedCompletionTokens = 10

// CostEstimator projects the cost of a completion call without making it.
// It shares the gateway's cost calculator so estimate and actual stay on
// the same pricing basis, and a deterministic token counter so the whole
// path is offline.
type CostEstimator struct {
	cfg        GatewayConfig
	counter    TokenCounter
	calculator CostCalculator
}

// NewCostEstimator creates a new cost estimator (DI constructor).
func NewCostEstimator(
	cfg GatewayConfig,
	counter TokenCounter,
	calculator CostCalculator,
) *CostEstimator {
	return &CostEstimator{
		cfg:        cfg,
		counter:    counter,
		calculator: calculator,
	}
}

// EstimateCost computes the exact prompt token count for the would-be
// message sequence and prices it together with the assumed completion
// length. The assumption is echoed back verbatim in CompletionTokens.
//
// Unlike execution, estimation treats an unpriced model as fatal: a budget
// number built on made-up pricing is worse than no number.
func (e *CostEstimator) EstimateCost(
	ctx context.Context,
	prompt string,
	system string,
	model string,
	estimatedCompletionTokens int,
) (CostEstimate, error) {
	if estimatedCompletionTokens < 0 {
		return CostEstimate{}, fmt.Errorf("estimated completion tokens cannot be negative: %d", estimatedCompletionTokens)
	}
	if estimatedCompletionTokens == 0 {
		estimatedCompletionTokens = DefaultEstimatedCompletionTokens
	}

	resolved := e.resolveModel(model)

	if _, err := ProviderForModel(resolved); err != nil {
		return CostEstimate{}, fmt.Errorf("cannot estimate: %w", err)
	}

	req := NewCompletionRequest(resolved, prompt, system, nil)
	promptTokens := e.counter.CountMessages(resolved, req.Messages)

	cost, err := e.calculator.Calculate(ctx, resolved, Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: estimatedCompletionTokens,
		TotalTokens:      promptTokens + estimatedCompletionTokens,
	})
	if err != nil {
		return CostEstimate{}, fmt.Errorf("cannot estimate: %w", err)
	}

	return CostEstimate{
		PromptTokens:     promptTokens,
		CompletionTokens: estimatedCompletionTokens,
		Cost:             cost,
	}, nil
}

func (e *CostEstimator) resolveModel(model string) string {
	if model != "" {
		return model
	}
	if e.cfg.DefaultModel != "" {
		return e.cfg.DefaultModel
	}
	return fallbackDefaultModel
}
