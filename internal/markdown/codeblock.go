// Package markdown extracts structure from snippet content. Snippet bodies
// are otherwise treated as opaque text; the only structure the tool cares
// about is fenced code blocks, so `snip code` can print runnable code
// without the surrounding prose.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is one fenced or indented code block from a snippet body.
type CodeBlock struct {
	Language string // info string of a fenced block, "" when absent
	Code     string
}

// ExtractCodeBlocks parses markdown content with goldmark and returns all
// code blocks in document order.
func ExtractCodeBlocks(content string) []CodeBlock {
	source := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks []CodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			block := CodeBlock{Code: blockText(node.Lines(), source)}
			if node.Info != nil {
				block.Language = strings.TrimSpace(string(node.Info.Segment.Value(source)))
			}
			blocks = append(blocks, block)
		case *ast.CodeBlock:
			blocks = append(blocks, CodeBlock{Code: blockText(node.Lines(), source)})
		}
		return ast.WalkContinue, nil
	})

	return blocks
}

func blockText(lines *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
