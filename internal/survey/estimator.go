package survey

import (
	"context"
	"fmt"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

// Assumed completion lengths per question modality. Single-select replies
// are two short labeled lines; open-ended replies run longer.
const (
	estimatedTokensSingleSelect = 40
	estimatedTokensOpenEnded    = 150
)

// Estimator is the slice of the per-call cost estimator this package needs.
type Estimator interface {
	EstimateCost(ctx context.Context, prompt, system, model string, estimatedCompletionTokens int) (domain.CostEstimate, error)
}

// CostProjector projects the cost of running a survey across a batch of
// personas before any money is spent. It never touches the model gateway.
type CostProjector struct {
	estimator Estimator
}

// NewCostProjector creates a new survey cost projector (DI constructor).
func NewCostProjector(estimator Estimator) *CostProjector {
	return &CostProjector{
		estimator: estimator,
	}
}

// EstimateSurveyCost builds the system prompt once from the sample persona
// (assumed representative of context length across the batch), estimates
// every question with a modality-dependent completion assumption, and sums
// the results into a per-agent figure. TotalCost scales linearly with
// numAgents.
func (p *CostProjector) EstimateSurveyCost(
	ctx context.Context,
	persona domain.Persona,
	survey domain.Survey,
	numAgents int,
	model string,
) (domain.SurveyEstimate, error) {
	if numAgents < 0 {
		return domain.SurveyEstimate{}, fmt.Errorf("num agents cannot be negative: %d", numAgents)
	}

	system := BuildSystemPrompt(persona)

	estimate := domain.SurveyEstimate{
		PromptTokens:     0,
		CompletionTokens: 0,
		CostPerAgent:     0,
		NumAgents:        numAgents,
	}

	for _, question := range survey.Questions {
		if err := question.Validate(); err != nil {
			return domain.SurveyEstimate{}, fmt.Errorf("invalid question %s: %w", question.ID, err)
		}

		assumed := estimatedTokensSingleSelect
		if question.QuestionType == domain.QuestionOpenEnded {
			assumed = estimatedTokensOpenEnded
		}

		q, err := p.estimator.EstimateCost(ctx, BuildUserPrompt(question), system, model, assumed)
		if err != nil {
			return domain.SurveyEstimate{}, fmt.Errorf("failed to estimate question %s: %w", question.ID, err)
		}

		estimate.PromptTokens += q.PromptTokens
		estimate.CompletionTokens += q.CompletionTokens
		estimate.CostPerAgent += q.Cost
	}

	return estimate, nil
}
