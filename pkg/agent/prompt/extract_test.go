package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBare(t *testing.T) {
	doc, err := ExtractJSON(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, doc)
}

func TestExtractJSONFenced(t *testing.T) {
	content := "Here is the result:\n```json\n{\"severity\": \"high\"}\n```\nLet me know if you need more."
	doc, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"severity": "high"}`, doc)
}

func TestExtractJSONFencedNoLanguage(t *testing.T) {
	doc, err := ExtractJSON("```\n[1, 2, 3]\n```")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", doc)
}

func TestExtractJSONEmbeddedInProse(t *testing.T) {
	content := `Based on my analysis, {"action": "confirm", "note": "uses } inside a string"} is my verdict.`
	doc, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"action": "confirm", "note": "uses } inside a string"}`, doc)
}

func TestExtractJSONNested(t *testing.T) {
	content := `{"outer": {"inner": [1, {"deep": true}]}}`
	doc, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, content, doc)
}

func TestExtractJSONArray(t *testing.T) {
	content := "The hypotheses are: [{\"statement\": \"a\"}, {\"statement\": \"b\"}]"
	doc, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `[{"statement": "a"}, {"statement": "b"}]`, doc)
}

func TestExtractJSONEscapedQuotes(t *testing.T) {
	content := `{"msg": "she said \"hi\" and left"}`
	doc, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, content, doc)
}

func TestExtractJSONFailures(t *testing.T) {
	for _, content := range []string{"", "no json here at all", "{unbalanced"} {
		_, err := ExtractJSON(content)
		assert.Error(t, err, "content %q must not parse", content)
	}
}
