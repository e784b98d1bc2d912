package domain

import "time"

// QuestionType distinguishes the two survey question modalities.
type QuestionType string

const (
	// QuestionSingleSelect constrains the answer to a fixed option set and
	// expects a structured CHOICE/JUSTIFICATION reply.
	QuestionSingleSelect QuestionType = "single_select"

	// QuestionOpenEnded is free text with no structured answer format.
	QuestionOpenEnded QuestionType = "open_ended"
)

// Persona is a simulated individual. Context is an opaque block of
// biographical text built upstream; it is never inspected here.
type Persona struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Context string `json:"context"`
}

// Question is a single survey question. Options must be present and
// non-empty for single_select questions; it is ignored otherwise.
type Question struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	QuestionType QuestionType `json:"question_type"`
	Options      []string     `json:"options,omitempty"`
}

// Validate checks the options invariant for the question's modality.
func (q Question) Validate() error {
	if q.QuestionType == QuestionSingleSelect && len(q.Options) == 0 {
		return ErrMissingOptions
	}
	return nil
}

// Survey is an ordered collection of questions answered in character by a persona.
type Survey struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// QuestionResponse is the completed result of asking one persona one question.
// Token and cost figures are copied verbatim from the completion response.
type QuestionResponse struct {
	QuestionID       string  `json:"question_id"`
	Response         string  `json:"response"`
	Justification    string  `json:"justification"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	Cost             float64 `json:"cost"`
}

// SurveyResponse aggregates one persona's answers to a whole survey.
// Responses preserve the survey's question order.
type SurveyResponse struct {
	PersonaID string             `json:"persona_id"`
	SurveyID  string             `json:"survey_id"`
	Responses []QuestionResponse `json:"responses"`
}

// TotalTokens sums prompt and completion tokens across all responses.
func (s *SurveyResponse) TotalTokens() int {
	total := 0
	for _, r := range s.Responses {
		total += r.PromptTokens + r.CompletionTokens
	}
	return total
}

// TotalCost sums the cost of all responses in USD.
func (s *SurveyResponse) TotalCost() float64 {
	total := 0.0
	for _, r := range s.Responses {
		total += r.Cost
	}
	return total
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// Credentials carries per-call API key overrides keyed by provider.
// A credentials map is scoped to a single call and must never be written
// into process-global configuration.
type Credentials map[ProviderID]string

// CompletionRequest represents a unified LLM request.
type CompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`

	// Credentials overrides the configured API key for the provider that
	// serves this request. Never serialized, never persisted.
	Credentials Credentials `json:"-"`
}

// NewCompletionRequest assembles the message sequence for a prompt with an
// optional system prompt.
func NewCompletionRequest(model, prompt, system string, credentials Credentials) *CompletionRequest {
	messages := make([]Message, 0, 2)
	if system != "" {
		messages = append(messages, Message{Role: "system", Content: system})
	}
	messages = append(messages, Message{Role: "user", Content: prompt})

	return &CompletionRequest{
		Model:       model,
		Messages:    messages,
		Credentials: credentials,
	}
}

// CompletionResponse represents a unified LLM response. It is the single
// source of truth for what one model call actually consumed.
type CompletionResponse struct {
	ID         string    `json:"id"`
	Model      string    `json:"model"`
	Provider   string    `json:"provider"`
	Content    string    `json:"content"`
	Usage      Usage     `json:"usage"`
	FinishTime time.Time `json:"finish_time"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	Cost             float64 `json:"cost,omitempty"`
}

// CostEstimate projects token usage and cost for a call without making it.
// CompletionTokens is the caller's assumption, echoed back, not a measurement.
type CostEstimate struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	Cost             float64 `json:"cost"`
}

// SurveyEstimate projects the cost of running a survey across a batch of
// personas. The projection is linear in NumAgents: every persona is assumed
// to incur the sample persona's per-question token cost. That is a pre-flight
// budget check, not a bill.
type SurveyEstimate struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	CostPerAgent     float64 `json:"cost_per_agent"`
	NumAgents        int     `json:"num_agents"`
}

// TotalCost is the reportable projection for the whole batch.
func (e SurveyEstimate) TotalCost() float64 {
	return e.CostPerAgent * float64(e.NumAgents)
}
