// Package goldmark provides the Markdown source.Extractor using the goldmark library.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/termlint/pkg/source"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Compile-time interface check.
var _ source.Extractor = (*Parser)(nil)

// Parser extracts prose text nodes from Markdown.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// span is a byte range of prose being assembled from adjacent text segments.
type span struct {
	start, stop int
	lineEnd     bool
}

// Extract implements source.Extractor.
//
// Text inside code spans, code blocks, HTML and autolinks is skipped. Adjacent
// text segments on the same line are joined so a term split by the parser
// (for example around an unmatched "[") is still seen as one node.
func (p *Parser) Extract(ctx context.Context, path string, content []byte) ([]source.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := p.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	var spans []span
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.CodeSpan, *ast.CodeBlock, *ast.FencedCodeBlock,
			*ast.HTMLBlock, *ast.RawHTML, *ast.AutoLink:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			spans = appendSpan(spans, n)
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}

	lines := source.BuildLines(content)
	nodes := make([]source.Node, 0, len(spans))
	for _, s := range spans {
		if s.stop <= s.start {
			continue
		}
		line, col := lines.LineAt(s.start)
		nodes = append(nodes, source.Node{
			Text:   string(content[s.start:s.stop]),
			Line:   line,
			Column: col,
		})
	}

	return nodes, nil
}

func appendSpan(spans []span, n *ast.Text) []span {
	seg := n.Segment
	lineEnd := n.SoftLineBreak() || n.HardLineBreak()

	if last := len(spans) - 1; last >= 0 && !spans[last].lineEnd && spans[last].stop == seg.Start {
		spans[last].stop = seg.Stop
		spans[last].lineEnd = lineEnd
		return spans
	}

	return append(spans, span{start: seg.Start, stop: seg.Stop, lineEnd: lineEnd})
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
