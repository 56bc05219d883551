package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestLoggableName(t *testing.T) {
	t.Run("ShortKept", func(t *testing.T) {
		assert.Equal(t, "Bot McBotface", loggableName("Bot McBotface"))
	})

	t.Run("ExactLimitKept", func(t *testing.T) {
		name := strings.Repeat("a", maxLoggedName)
		assert.Equal(t, name, loggableName(name))
	})

	t.Run("LongTruncated", func(t *testing.T) {
		got := loggableName(strings.Repeat("x", 100_000))
		assert.Equal(t, strings.Repeat("x", maxLoggedName)+"...", got)
	})

	t.Run("MultibyteCutOnRuneBoundary", func(t *testing.T) {
		got := loggableName(strings.Repeat("é", maxLoggedName+10))
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, maxLoggedName+3, utf8.RuneCountInString(got))
	})
}
