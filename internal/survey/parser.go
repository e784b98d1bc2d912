package survey

import "strings"

const (
	choicePrefix        = "CHOICE:"
	justificationPrefix = "JUSTIFICATION:"
)

// ParseChoiceJustification extracts a choice and a justification from a
// structured free-text reply.
//
// The grammar is line-oriented: a line starting (case-insensitively) with
// "CHOICE:" contributes everything after the prefix, trimmed; likewise for
// "JUSTIFICATION:". When a label appears on multiple lines the last
// occurrence wins. If no CHOICE line is found the entire trimmed input
// becomes the choice - models do not always follow the requested format,
// and a best-effort single string beats failing the question.
func ParseChoiceJustification(text string) (choice, justification string) {
	choiceFound := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)

		switch {
		case strings.HasPrefix(upper, choicePrefix):
			choice = strings.TrimSpace(trimmed[len(choicePrefix):])
			choiceFound = true
		case strings.HasPrefix(upper, justificationPrefix):
			justification = strings.TrimSpace(trimmed[len(justificationPrefix):])
		}
	}

	if !choiceFound {
		choice = strings.TrimSpace(text)
	}

	return choice, justification
}
