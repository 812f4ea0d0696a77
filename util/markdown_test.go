package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownUnindents(t *testing.T) {
	got := MarkdownString(`
		**bold** and <span class="x">inline</span>

		second`)
	assert.Contains(t, got, "<p><strong>bold</strong> and ")
	assert.Contains(t, got, `<span class="x">inline</span>`)
	assert.Contains(t, got, "<p>second</p>")
	assert.NotContains(t, got, "<pre>") // tabs would make an indented code block
}
