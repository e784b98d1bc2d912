package persona_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/persona"
)

// fakeGateway serves canned replies in call order.
type fakeGateway struct {
	replies []string
	errs    []error
	calls   int
	reqs    []*domain.CompletionRequest
}

func (f *fakeGateway) Complete(_ context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	i := f.calls
	f.calls++
	f.reqs = append(f.reqs, req)

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}

	content := ""
	if i < len(f.replies) {
		content = f.replies[i]
	}

	return &domain.CompletionResponse{
		ID:         "resp",
		Model:      req.Model,
		Content:    content,
		Usage:      domain.Usage{PromptTokens: 50, CompletionTokens: 80, TotalTokens: 130},
		FinishTime: time.Now(),
	}, nil
}

const generatedJSON = `{
	"name": "Rosa Delgado",
	"age": 47,
	"gender": "Female",
	"occupation": "School nurse",
	"education": "Bachelor's",
	"political_leaning": "Moderate",
	"location": "Tucson, Arizona",
	"country": "United States",
	"continent": "North America",
	"latitude": 32.2226,
	"longitude": -110.9747,
	"brief": "Rosa has worked in the same school district for twenty years."
}`

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("should generate and classify a persona", func(t *testing.T) {
		gateway := &fakeGateway{replies: []string{generatedJSON, "Nurse/Nursing"}}
		generator := persona.NewGenerator(gateway)

		generated, err := generator.Generate(ctx, "gpt-4o-mini", nil)

		require.NoError(t, err)
		require.Equal(t, 2, gateway.calls)
		require.Equal(t, "Rosa Delgado", generated.Name)
		require.Equal(t, 47, generated.Age)
		require.Equal(t, "Nurse/Nursing", generated.OccupationCategory)
	})

	t.Run("should recover JSON from a fenced reply", func(t *testing.T) {
		gateway := &fakeGateway{replies: []string{
			"Here is the persona:\n```json\n" + generatedJSON + "\n```",
			"Nurse/Nursing",
		}}
		generator := persona.NewGenerator(gateway)

		generated, err := generator.Generate(ctx, "", nil)

		require.NoError(t, err)
		require.Equal(t, "Rosa Delgado", generated.Name)
	})

	t.Run("should fail when reply has no JSON", func(t *testing.T) {
		gateway := &fakeGateway{replies: []string{"I am unable to do that."}}
		generator := persona.NewGenerator(gateway)

		_, err := generator.Generate(ctx, "", nil)
		require.ErrorIs(t, err, persona.ErrNoJSON)
	})

	t.Run("should fall back to Other when classification fails", func(t *testing.T) {
		gateway := &fakeGateway{
			replies: []string{generatedJSON, ""},
			errs:    []error{nil, errors.New("rate limited")},
		}
		generator := persona.NewGenerator(gateway)

		generated, err := generator.Generate(ctx, "", nil)

		require.NoError(t, err)
		require.Equal(t, "Other", generated.OccupationCategory)
	})

	t.Run("should default missing demographics to Unknown", func(t *testing.T) {
		gateway := &fakeGateway{replies: []string{
			`{"name": "Kim Lee", "age": 30, "occupation": "Welder", "brief": "Works nights."}`,
			"Manufacturing/Production",
		}}
		generator := persona.NewGenerator(gateway)

		generated, err := generator.Generate(ctx, "", nil)

		require.NoError(t, err)
		require.Equal(t, "Unknown", generated.Gender)
		require.Equal(t, "Unknown", generated.Education)
		require.Equal(t, "Unknown", generated.Country)
	})

	t.Run("should pass credentials to both calls", func(t *testing.T) {
		gateway := &fakeGateway{replies: []string{generatedJSON, "Nurse/Nursing"}}
		generator := persona.NewGenerator(gateway)

		credentials := domain.Credentials{domain.ProviderOpenAI: "override"}
		_, err := generator.Generate(ctx, "gpt-4o-mini", credentials)

		require.NoError(t, err)
		require.Len(t, gateway.reqs, 2)
		for _, req := range gateway.reqs {
			require.Equal(t, "override", req.Credentials[domain.ProviderOpenAI])
		}
	})
}

func TestGenerated_Persona(t *testing.T) {
	generated := persona.Generated{
		Name:               "Rosa Delgado",
		Age:                47,
		Gender:             "Female",
		Occupation:         "School nurse",
		OccupationCategory: "Nurse/Nursing",
		Education:          "Bachelor's",
		PoliticalLeaning:   "Moderate",
		Location:           "Tucson, Arizona",
		Country:            "United States",
		Brief:              "Rosa has worked in the same school district for twenty years.",
	}

	p := generated.Persona()

	require.NotEmpty(t, p.ID)
	require.Equal(t, "Rosa Delgado", p.Name)
	require.Contains(t, p.Context, "Age: 47")
	require.Contains(t, p.Context, "School nurse (Nurse/Nursing)")
	require.Contains(t, p.Context, "Tucson, Arizona, United States")
}

func TestNew(t *testing.T) {
	t.Run("keeps supplied id", func(t *testing.T) {
		p := persona.New("Ada", "context", "p-42")
		require.Equal(t, "p-42", p.ID)
	})

	t.Run("generates id when empty", func(t *testing.T) {
		p := persona.New("Ada", "context", "")
		require.NotEmpty(t, p.ID)
		require.False(t, strings.ContainsAny(p.ID, " \t\n"))
	})
}
