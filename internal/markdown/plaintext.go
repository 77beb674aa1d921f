package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	return &Parser{
		md: md,
	}
}

// PlainText extracts the human-readable text of a Markdown document,
// with all markup stripped. Inline and block HTML lose their tags but
// keep their text content.
func (p *Parser) PlainText(source []byte) string {
	doc := p.md.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Separate block-level nodes so adjacent words don't fuse.
			if _, ok := n.(*ast.Document); !ok && n.Type() == ast.TypeBlock {
				buf.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.AutoLink:
			buf.Write(t.URL(source))
		case *ast.HTMLBlock:
			for i := 0; i < t.Lines().Len(); i++ {
				line := t.Lines().At(i)
				buf.WriteString(tagRe.ReplaceAllString(string(line.Value(source)), " "))
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(buf.String())
}

// WordCount counts whitespace-separated words in the stripped text.
func (p *Parser) WordCount(source string) int {
	return len(strings.Fields(p.PlainText([]byte(source))))
}
