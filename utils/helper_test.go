package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 200))
	assert.Equal(t, strings.Repeat("a", 200)+"...", Truncate(strings.Repeat("a", 250), 200))

	exact := strings.Repeat("b", 200)
	assert.Equal(t, exact, Truncate(exact, 200))

	// Rune-aware: multi-byte characters are not split.
	assert.Equal(t, "héllo...", Truncate("héllo wörld", 5))
}
