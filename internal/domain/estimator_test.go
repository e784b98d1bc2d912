package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/tokens"
)

func estimatorFixture(t *testing.T) *domain.CostEstimator {
	t.Helper()

	ctx := context.Background()
	registry := domain.NewInMemoryPricingRegistry()
	err := registry.RegisterPricing(ctx, "gpt-4o-mini", domain.PricingConfig{
		InputCostPer1K:  0.00015,
		OutputCostPer1K: 0.0006,
	})
	require.NoError(t, err)

	return domain.NewCostEstimator(
		domain.GatewayConfig{DefaultModel: "gpt-4o-mini"},
		tokens.NewCounter(),
		domain.NewStandardCostCalculator(registry),
	)
}

func TestCostEstimator_EstimateCost(t *testing.T) {
	ctx := context.Background()

	t.Run("should be deterministic for identical input", func(t *testing.T) {
		estimator := estimatorFixture(t)

		first, err := estimator.EstimateCost(ctx, "What is your favourite colour?", "You are Ada.", "", 40)
		require.NoError(t, err)

		second, err := estimator.EstimateCost(ctx, "What is your favourite colour?", "You are Ada.", "", 40)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("should echo the completion assumption verbatim", func(t *testing.T) {
		estimator := estimatorFixture(t)

		estimate, err := estimator.EstimateCost(ctx, "hello", "", "", 150)
		require.NoError(t, err)
		require.Equal(t, 150, estimate.CompletionTokens)
	})

	t.Run("should default the completion assumption when zero", func(t *testing.T) {
		estimator := estimatorFixture(t)

		estimate, err := estimator.EstimateCost(ctx, "hello", "", "", 0)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultEstimatedCompletionTokens, estimate.CompletionTokens)
	})

	t.Run("should reject negative completion assumption", func(t *testing.T) {
		estimator := estimatorFixture(t)

		_, err := estimator.EstimateCost(ctx, "hello", "", "", -1)
		require.Error(t, err)
	})

	t.Run("should count more prompt tokens for longer prompts", func(t *testing.T) {
		estimator := estimatorFixture(t)

		short, err := estimator.EstimateCost(ctx, "hi", "", "", 10)
		require.NoError(t, err)

		long, err := estimator.EstimateCost(ctx,
			"Please describe, in as much detail as you can manage, your entire morning routine.",
			"", "", 10)
		require.NoError(t, err)

		require.Greater(t, long.PromptTokens, short.PromptTokens)
		require.Greater(t, long.Cost, short.Cost)
	})

	t.Run("should include the system prompt in the count", func(t *testing.T) {
		estimator := estimatorFixture(t)

		without, err := estimator.EstimateCost(ctx, "hello", "", "", 10)
		require.NoError(t, err)

		with, err := estimator.EstimateCost(ctx, "hello", "You are a forty year old plumber from Leeds.", "", 10)
		require.NoError(t, err)

		require.Greater(t, with.PromptTokens, without.PromptTokens)
	})

	t.Run("should fail on unknown model family", func(t *testing.T) {
		estimator := estimatorFixture(t)

		_, err := estimator.EstimateCost(ctx, "hello", "", "mystery-9000", 10)
		require.ErrorIs(t, err, domain.ErrUnknownProvider)
	})

	t.Run("should fail on unpriced model", func(t *testing.T) {
		estimator := estimatorFixture(t)

		_, err := estimator.EstimateCost(ctx, "hello", "", "gpt-4", 10)
		require.ErrorIs(t, err, domain.ErrPricingNotFound)
	})
}
