package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainTextStripsMarkup(t *testing.T) {
	p := NewParser()

	got := p.PlainText([]byte("# Heading\n\nSome **bold** and *italic* text."))
	assert.Equal(t, "Heading\nSome bold and italic text.", got)
}

func TestPlainTextInlineHTML(t *testing.T) {
	p := NewParser()

	got := p.PlainText([]byte("before <b>inside</b> after"))
	assert.Contains(t, got, "inside")
	assert.NotContains(t, got, "<b>")
}

func TestWordCount(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"empty", "", 0},
		{"plain", "three little words", 3},
		{"markup ignored", "# Title\n\nA **bold** word", 4},
		{"list items", "- one\n- two\n- three", 3},
		{"extra whitespace", "  spaced    out   ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.WordCount(tt.source))
		})
	}
}
