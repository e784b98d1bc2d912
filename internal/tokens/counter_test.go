package tokens_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/tokens"
)

func TestCounter_CountText(t *testing.T) {
	counter := tokens.NewCounter()

	t.Run("empty text is zero tokens", func(t *testing.T) {
		require.Zero(t, counter.CountText("gpt-4o", ""))
	})

	t.Run("counts scale with length", func(t *testing.T) {
		short := counter.CountText("gpt-4o", "hello")
		long := counter.CountText("gpt-4o", strings.Repeat("hello ", 50))
		require.Greater(t, long, short)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		text := "The quick brown fox jumps over the lazy dog."
		require.Equal(t, counter.CountText("gpt-4o", text), counter.CountText("gpt-4o", text))
	})

	t.Run("short text still costs at least one token", func(t *testing.T) {
		require.Equal(t, 1, counter.CountText("gpt-4o", "a"))
	})
}

func TestCounter_CountMessages(t *testing.T) {
	counter := tokens.NewCounter()

	t.Run("includes per message overhead", func(t *testing.T) {
		messages := []domain.Message{
			{Role: "user", Content: "hi"},
		}

		count := counter.CountMessages("gpt-4o", messages)
		require.Greater(t, count, counter.CountText("gpt-4o", "hi"))
	})

	t.Run("more messages cost more", func(t *testing.T) {
		one := counter.CountMessages("gpt-4o", []domain.Message{
			{Role: "user", Content: "hello there"},
		})
		two := counter.CountMessages("gpt-4o", []domain.Message{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hello there"},
		})

		require.Greater(t, two, one)
	})

	t.Run("empty sequence still carries reply priming", func(t *testing.T) {
		require.Positive(t, counter.CountMessages("gpt-4o", nil))
	})
}
