package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"one char rounds up", "a", 1},
		{"exact boundary", "abcd", 1},
		{"boundary plus one", "abcde", 2},
		{"hundred chars", strings.Repeat("x", 100), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.text))
		})
	}
}

func TestEstimateMonotone(t *testing.T) {
	prev := 0
	for i := 0; i < 64; i++ {
		got := Estimate(strings.Repeat("a", i))
		assert.GreaterOrEqual(t, got, prev, "estimate must not decrease with length")
		prev = got
	}
}

func TestTruncate(t *testing.T) {
	t.Run("under limit unchanged", func(t *testing.T) {
		assert.Equal(t, "short", Truncate("short", 100, "limit"))
	})

	t.Run("cuts at line boundary", func(t *testing.T) {
		content := strings.Repeat("line of log output\n", 100)
		out := Truncate(content, 10, "storage limit")
		assert.Less(t, len(out), len(content))
		assert.Contains(t, out, "[TRUNCATED: storage limit")
		// Body before the marker ends at a full line.
		body := out[:strings.Index(out, "\n\n[TRUNCATED")]
		assert.True(t, strings.HasSuffix(body, "output"))
	})

	t.Run("does not split multibyte runes", func(t *testing.T) {
		content := strings.Repeat("héllo wörld ", 50)
		out := Truncate(content, 10, "limit")
		assert.True(t, strings.HasPrefix(out, "héllo"))
		for _, r := range out {
			assert.NotEqual(t, '�', r)
		}
	})
}
