// Package tokens provides deterministic offline token counting for cost
// estimation. It uses a character-based heuristic (~4 bytes per token for
// English) with per-message overhead matching chat-format tokenization.
// Exact BPE tokenizers can be swapped in behind the same interface if
// estimates ever need to be billing-grade.
package tokens

import (
	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

const (
	bytesPerToken         = 4
	messageOverheadTokens = 4 // role, separators
	replyPrimingTokens    = 3 // every reply is primed with <|start|>assistant<|message|>
)

// Counter estimates token counts for text and message sequences. It is
// deterministic given (model, input) and never touches the network.
type Counter struct{}

// NewCounter creates a new Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// CountText estimates tokens for a plain text string.
func (c *Counter) CountText(_ string, text string) int {
	return estimateTokens(text)
}

// CountMessages estimates prompt tokens for a message sequence, including
// per-message formatting overhead and reply priming.
func (c *Counter) CountMessages(_ string, messages []domain.Message) int {
	total := 0
	for _, m := range messages {
		total += messageOverheadTokens
		total += estimateTokens(m.Role)
		total += estimateTokens(m.Content)
	}
	total += replyPrimingTokens
	return total
}

// estimateTokens uses a ~4 bytes per token heuristic with ceil division.
func estimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + bytesPerToken - 1) / bytesPerToken
}
