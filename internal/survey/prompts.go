package survey

import (
	"fmt"
	"strings"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

// systemPromptTemplate casts the model as the persona. Answers must come
// from the persona's concrete circumstances, not from abstract values.
const systemPromptTemplate = `You are %s. You are answering questions as this person, in their own voice.

Context about this person:
%s

Stay in character. Ground every answer in the concrete details of this person's life - their routines, work, family, neighbourhood and habits - rather than abstract values or what people in general might think. Be concise.`

// singleSelectTemplate requires a two-line structured reply so the answer
// can be parsed into a choice and a justification.
const singleSelectTemplate = `Question: %s
Options: %s

Reply in exactly this format, two lines, nothing else:
CHOICE: <one of the options, copied exactly>
JUSTIFICATION: <one or two sentences, specific to your life>

A good justification names something concrete: "I pass that corner every morning walking my kids to school, so I'd use it."
A bad justification is generic: "Green spaces are important for any community."`

const openEndedTemplate = `Question: %s

Provide a brief response.`

// BuildSystemPrompt renders the persona into the role-playing system prompt.
// Pure and deterministic.
func BuildSystemPrompt(persona domain.Persona) string {
	return fmt.Sprintf(systemPromptTemplate, persona.Name, persona.Context)
}

// BuildUserPrompt renders a question into the user prompt for its modality.
// Options are echoed verbatim, comma-joined, in input order. Pure and
// deterministic.
func BuildUserPrompt(question domain.Question) string {
	if question.QuestionType == domain.QuestionSingleSelect {
		return fmt.Sprintf(singleSelectTemplate, question.Text, strings.Join(question.Options, ", "))
	}
	return fmt.Sprintf(openEndedTemplate, question.Text)
}
