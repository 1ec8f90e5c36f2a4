package source

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the markup language of a document.
type Kind int

const (
	PlainText Kind = iota
	Markdown
	ReStructuredText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Markdown:
		return "markdown"
	case ReStructuredText:
		return "restructuredtext"
	default:
		return "text"
	}
}

//nolint:gochecknoglobals // Read-only lookup table.
var kindByExtension = map[string]Kind{
	".md":       Markdown,
	".markdown": Markdown,
	".rst":      ReStructuredText,
	".rest":     ReStructuredText,
	".txt":      PlainText,
	".text":     PlainText,
}

// Detect classifies a document. Well-known extensions are mapped directly;
// anything else is classified by go-enry from its name and content.
func Detect(path string, content []byte) Kind {
	if kind, ok := kindByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return kind
	}

	switch enry.GetLanguage(filepath.Base(path), content) {
	case "Markdown":
		return Markdown
	case "reStructuredText":
		return ReStructuredText
	default:
		return PlainText
	}
}
