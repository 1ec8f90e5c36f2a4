package goldmark

import (
	"bytes"
	"context"
	"testing"
)

// FuzzExtract fuzzes the extractor with random input.
func FuzzExtract(f *testing.F) {
	seeds := []string{
		"",
		"Hello, world!",
		"# 見出し",
		"- list item",
		"> ｶﾀｶﾅ",
		"```\ncode\n```",
		"*emphasis* and **strong**",
		"`code`",
		"[link](url)",
		"![image](src)",
		"<div>html</div>",
		"Title\n=====",
		"line1\r\nline2",
		"| a | b |\n|---|---|\n| 1 | 2 |\n",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	parser := New(FlavorGFM)

	f.Fuzz(func(t *testing.T, data []byte) {
		nodes, err := parser.Extract(context.Background(), "fuzz.md", data)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}

		for _, n := range nodes {
			if n.Text == "" {
				t.Error("empty node text")
			}
			if n.Line < 1 || n.Column < 1 {
				t.Errorf("invalid position %d:%d", n.Line, n.Column)
			}
			if !bytes.Contains(data, []byte(n.Text)) {
				t.Errorf("node text %q not found in input", n.Text)
			}
		}
	})
}
