package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n[1, 2]\n```"
	assert.Equal(t, `[1, 2]`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n[1]\n```"
	assert.Equal(t, `[1]`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"a": 1}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestFirstJSONArray_EmbeddedInProse(t *testing.T) {
	text := `Here are the results you asked for:

[{"id": 0, "score": 85}]

Let me know if you need anything else.`

	block, ok := FirstJSONArray(text)
	require.True(t, ok)
	assert.Equal(t, `[{"id": 0, "score": 85}]`, block)
}

func TestFirstJSONArray_BareArray(t *testing.T) {
	block, ok := FirstJSONArray(`[1, 2, 3]`)
	require.True(t, ok)
	assert.Equal(t, `[1, 2, 3]`, block)
}

func TestFirstJSONArray_NoArray(t *testing.T) {
	_, ok := FirstJSONArray("no structured data here")
	assert.False(t, ok)
}

func TestFirstJSONArray_MalformedArray(t *testing.T) {
	_, ok := FirstJSONArray(`[{"id": 0,]`)
	assert.False(t, ok)
}
