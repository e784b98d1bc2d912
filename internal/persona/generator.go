// Package persona builds the simulated individuals that surveys run
// against. Personas can be constructed directly from caller-supplied
// context text, or generated from scratch with a naive model prompt plus an
// occupation classification pass.
package persona

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/jsonx"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/observability"
)

// ErrNoJSON indicates the model reply contained no recoverable JSON object.
var ErrNoJSON = errors.New("no JSON object found in model response")

// New creates a persona from pre-built context text. An empty id gets a
// generated UUID.
func New(name, contextText, id string) domain.Persona {
	if id == "" {
		id = uuid.New().String()
	}
	return domain.Persona{
		ID:      id,
		Name:    name,
		Context: contextText,
	}
}

const generatePrompt = `Generate a random person.

Return ONLY valid JSON with these exact fields:
{
  "name": "Full name",
  "age": number between 18-85,
  "gender": "Male" or "Female" or "Non-binary",
  "occupation": "Their specific job or role",
  "education": "Highest education level (e.g., High school, Bachelor's, Master's, PhD, Trade school, Some college)",
  "political_leaning": "Political orientation (e.g., Liberal, Conservative, Moderate, Libertarian, Progressive, Apolitical)",
  "location": "City, State/Region",
  "country": "Country name",
  "continent": "One of: North America, South America, Europe, Africa, Asia, Oceania",
  "latitude": number (precise latitude of their home address, not just city center),
  "longitude": number (precise longitude of their home address, not just city center),
  "brief": "2-3 sentence description of who they are, their background, interests"
}`

const classifyPromptTemplate = `Classify this occupation into exactly one category from the list.

Occupation: %s
About them: %s

Categories:
%s

Reply with the category name only, copied exactly from the list.`

// Generated is a generated persona with demographics and classifications.
type Generated struct {
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	Occupation         string  `json:"occupation"`
	OccupationCategory string  `json:"occupation_category"`
	Education          string  `json:"education"`
	PoliticalLeaning   string  `json:"political_leaning"`
	Location           string  `json:"location"`
	Country            string  `json:"country"`
	Continent          string  `json:"continent"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Brief              string  `json:"brief"`
}

// Persona converts the generated demographics into a survey-ready persona
// with a fresh id and a context block summarizing who this person is.
func (g *Generated) Persona() domain.Persona {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", g.Brief)
	fmt.Fprintf(&b, "Age: %d\n", g.Age)
	fmt.Fprintf(&b, "Gender: %s\n", g.Gender)
	fmt.Fprintf(&b, "Occupation: %s (%s)\n", g.Occupation, g.OccupationCategory)
	fmt.Fprintf(&b, "Education: %s\n", g.Education)
	fmt.Fprintf(&b, "Political leaning: %s\n", g.PoliticalLeaning)
	fmt.Fprintf(&b, "Lives in: %s, %s", g.Location, g.Country)

	return New(g.Name, b.String(), "")
}

// Gateway is the slice of the model gateway the generator needs.
type Gateway interface {
	Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error)
}

// Generator produces personas via the model gateway.
type Generator struct {
	gateway Gateway
}

// NewGenerator creates a new persona generator (DI constructor).
func NewGenerator(gateway Gateway) *Generator {
	return &Generator{
		gateway: gateway,
	}
}

// Generate creates a random persona with the naive prompt, recovers the
// JSON payload, then classifies the occupation with a second call. Missing
// demographic fields default to "Unknown" rather than failing generation.
func (g *Generator) Generate(ctx context.Context, model string, credentials domain.Credentials) (*Generated, error) {
	logger := observability.FromContext(ctx)

	resp, err := g.gateway.Complete(ctx, domain.NewCompletionRequest(model, generatePrompt, "", credentials))
	if err != nil {
		return nil, fmt.Errorf("persona generation failed: %w", err)
	}

	raw, ok := jsonx.ExtractObject(resp.Content)
	if !ok {
		return nil, fmt.Errorf("%w: %.80s", ErrNoJSON, resp.Content)
	}

	var generated Generated
	if err := json.Unmarshal(raw, &generated); err != nil {
		return nil, fmt.Errorf("failed to decode generated persona: %w", err)
	}

	category, err := g.classifyOccupation(ctx, model, credentials, &generated)
	if err != nil {
		// Classification is a refinement, not a requirement.
		logger.Warn("occupation classification failed, using fallback category",
			observability.Error(err))
		category = "Other"
	}
	generated.OccupationCategory = category

	applyDefaults(&generated)

	return &generated, nil
}

func (g *Generator) classifyOccupation(
	ctx context.Context,
	model string,
	credentials domain.Credentials,
	generated *Generated,
) (string, error) {
	var categories strings.Builder
	for _, cat := range OccupationCategories {
		fmt.Fprintf(&categories, "- %s\n", cat)
	}

	prompt := fmt.Sprintf(classifyPromptTemplate, generated.Occupation, generated.Brief, categories.String())

	resp, err := g.gateway.Complete(ctx, domain.NewCompletionRequest(model, prompt, "", credentials))
	if err != nil {
		return "", fmt.Errorf("occupation classification failed: %w", err)
	}

	return MatchOccupationCategory(strings.TrimSpace(resp.Content)), nil
}

func applyDefaults(g *Generated) {
	if g.Gender == "" {
		g.Gender = "Unknown"
	}
	if g.Education == "" {
		g.Education = "Unknown"
	}
	if g.PoliticalLeaning == "" {
		g.PoliticalLeaning = "Unknown"
	}
	if g.Country == "" {
		g.Country = "Unknown"
	}
	if g.Continent == "" {
		g.Continent = "Unknown"
	}
}
