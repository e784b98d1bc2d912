package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/observability"
)

// Gateway is the slice of the model gateway the executor needs.
type Gateway interface {
	Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error)
}

// Options carries per-invocation execution settings. Credentials override
// ambient keys for the duration of the calls they accompany and are never
// written anywhere global.
type Options struct {
	Model       string
	Credentials domain.Credentials
}

// Executor runs questions and surveys against personas. It holds no state
// between invocations; every call is an independent unit of work.
type Executor struct {
	gateway Gateway
	events  domain.EventPublisher
}

// NewExecutor creates a new survey executor (DI constructor).
func NewExecutor(gateway Gateway, events domain.EventPublisher) *Executor {
	return &Executor{
		gateway: gateway,
		events:  events,
	}
}

// AskQuestion asks one persona one question: builds the prompts, makes
// exactly one gateway call, and parses the reply for single_select
// questions. Exact token and cost figures are copied through from the
// completion. A gateway failure fails this question; nothing is retried.
func (e *Executor) AskQuestion(
	ctx context.Context,
	persona domain.Persona,
	question domain.Question,
	opts Options,
) (domain.QuestionResponse, error) {
	if err := question.Validate(); err != nil {
		return domain.QuestionResponse{}, fmt.Errorf("invalid question %s: %w", question.ID, err)
	}

	ctx = observability.WithPersonaID(ctx, persona.ID)

	req := domain.NewCompletionRequest(
		opts.Model,
		BuildUserPrompt(question),
		BuildSystemPrompt(persona),
		opts.Credentials,
	)

	resp, err := e.gateway.Complete(ctx, req)
	if err != nil {
		return domain.QuestionResponse{}, fmt.Errorf("question %s failed for persona %s: %w", question.ID, persona.ID, err)
	}

	answer := domain.QuestionResponse{
		QuestionID:       question.ID,
		Response:         "",
		Justification:    "",
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		Cost:             resp.Usage.Cost,
	}

	if question.QuestionType == domain.QuestionSingleSelect {
		answer.Response, answer.Justification = ParseChoiceJustification(resp.Content)
	} else {
		answer.Response = strings.TrimSpace(resp.Content)
	}

	e.publish(ctx, "survey.question_completed", map[string]interface{}{
		"persona_id":  persona.ID,
		"question_id": question.ID,
		"cost":        answer.Cost,
	})

	return answer, nil
}

// RunSurvey executes every question of a survey for one persona
// concurrently. Results preserve the survey's question order regardless of
// completion order. The barrier waits for all in-flight calls; if any
// question failed, the first error is propagated and no partial aggregate
// is returned.
func (e *Executor) RunSurvey(
	ctx context.Context,
	persona domain.Persona,
	survey domain.Survey,
	opts Options,
) (*domain.SurveyResponse, error) {
	ctx = observability.WithSurveyID(ctx, survey.ID)

	responses := make([]domain.QuestionResponse, len(survey.Questions))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, question := range survey.Questions {
		wg.Add(1)
		go func(i int, q domain.Question) {
			defer wg.Done()
			answer, err := e.AskQuestion(ctx, persona, q, opts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			responses[i] = answer
		}(i, question)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	result := &domain.SurveyResponse{
		PersonaID: persona.ID,
		SurveyID:  survey.ID,
		Responses: responses,
	}

	e.publish(ctx, "survey.completed", map[string]interface{}{
		"persona_id":  persona.ID,
		"survey_id":   survey.ID,
		"total_cost":  result.TotalCost(),
		"num_answers": len(responses),
	})

	return result, nil
}

// PersonaAnswer pairs one persona with its answer to the batch question.
type PersonaAnswer struct {
	PersonaID   string                  `json:"persona_id"`
	PersonaName string                  `json:"persona_name"`
	Answer      domain.QuestionResponse `json:"answer"`
}

// BatchResult aggregates a batch run across personas. Answers preserve the
// input persona order.
type BatchResult struct {
	Answers   []PersonaAnswer `json:"answers"`
	TotalCost float64         `json:"total_cost"`
}

// RunBatch asks a single question to every persona concurrently. Each
// call's cost is independent and attributable to its persona; the total is
// the sum over all completed calls. Like RunSurvey, the batch is
// all-or-nothing: every call is awaited, then the first error wins.
func (e *Executor) RunBatch(
	ctx context.Context,
	personas []domain.Persona,
	question domain.Question,
	opts Options,
) (*BatchResult, error) {
	if len(personas) == 0 {
		return nil, errors.New("batch requires at least one persona")
	}

	answers := make([]PersonaAnswer, len(personas))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, persona := range personas {
		wg.Add(1)
		go func(i int, p domain.Persona) {
			defer wg.Done()
			answer, err := e.AskQuestion(ctx, p, question, opts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			answers[i] = PersonaAnswer{
				PersonaID:   p.ID,
				PersonaName: p.Name,
				Answer:      answer,
			}
		}(i, persona)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	totalCost := 0.0
	for _, a := range answers {
		totalCost += a.Answer.Cost
	}

	return &BatchResult{
		Answers:   answers,
		TotalCost: totalCost,
	}, nil
}

func (e *Executor) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if e.events == nil {
		return
	}
	e.events.Publish(ctx, eventType, data)
}
