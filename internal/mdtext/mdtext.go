// Package mdtext extracts plain prose from Markdown for the local ingest
// path: inline markup dissolves into its text content, block boundaries
// become blank lines, and everything else (fences, URLs in links) is kept
// only as the text a reader would see.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses markdown source into a goldmark AST.
func Parse(source []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(source))
}

// ExtractPlainText walks a Markdown node and returns its visible text.
// Inline markup (emphasis, links, code spans, image alt text) contributes
// its inner text; soft and hard line breaks become single spaces; sibling
// blocks are separated by blank lines.
func ExtractPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch t := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.AutoLink:
			if entering {
				b.Write(t.URL(source))
			}
		default:
			if !entering && n.Type() == ast.TypeBlock {
				b.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// FirstHeading returns the text of the first heading in the document, or
// ok=false when the document has none.
func FirstHeading(doc ast.Node, source []byte) (string, bool) {
	var heading ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.Heading); ok {
				heading = n
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	if heading == nil {
		return "", false
	}
	return ExtractPlainText(heading, source), true
}

// CountWords counts whitespace-separated words in extracted plain text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
