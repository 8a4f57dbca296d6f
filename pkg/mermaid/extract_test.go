package mermaid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFencedBlock(t *testing.T) {
	raw := "Here is your diagram:\n```mermaid\ngraph TD;\nA --> B;\n```\nHope it helps!"

	code, ok := Extract(raw)
	assert.True(t, ok)
	assert.Equal(t, "graph TD;\nA --> B;", code)
}

func TestExtractFenceWithoutTag(t *testing.T) {
	raw := "```\ngraph LR;\nStart --> End;\n```"

	code, ok := Extract(raw)
	assert.True(t, ok)
	assert.Equal(t, "graph LR;\nStart --> End;", code)
}

func TestExtractNoFence(t *testing.T) {
	code, ok := Extract("graph TD;\nA --> B;")
	assert.True(t, ok)
	assert.Equal(t, "graph TD;\nA --> B;", code)
}

func TestExtractArrowOnlyCountsAsKeyword(t *testing.T) {
	_, ok := Extract("A --> B;")
	assert.True(t, ok)
}

func TestExtractEmptyFence(t *testing.T) {
	_, ok := Extract("```\nSorry, I cannot draw that.\n```")
	assert.False(t, ok)
}

func TestExtractProseOnly(t *testing.T) {
	_, ok := Extract("I am a language model and cannot help with diagrams.")
	assert.False(t, ok)

	_, ok = Extract("")
	assert.False(t, ok)
}
