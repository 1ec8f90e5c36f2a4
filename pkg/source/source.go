// Package source turns documentation files into the prose text nodes that
// termlint validates. Literal content (code, raw markup, comments) never
// becomes a node.
package source

import "context"

// Node is a run of prose with the position of its first character.
type Node struct {
	// Text is the prose content.
	Text string

	// Line is the 1-based line of the first character.
	Line int

	// Column is the 1-based rune column of the first character.
	Column int
}

// Extractor produces the prose nodes of a document in source order.
//
// Implementations must not retain or mutate content and must be safe for
// concurrent use.
type Extractor interface {
	Extract(ctx context.Context, path string, content []byte) ([]Node, error)
}
