package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/termlint/pkg/source"
)

func TestPlainExtractor(t *testing.T) {
	t.Parallel()

	content := "ユーザ編集\n\n  インデント付き\r\n\t\nlast"
	nodes, err := source.NewPlainExtractor().Extract(context.Background(), "a.txt", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, []source.Node{
		{Text: "ユーザ編集", Line: 1, Column: 1},
		{Text: "インデント付き", Line: 3, Column: 3},
		{Text: "last", Line: 5, Column: 1},
	}, nodes)
}

func TestPlainExtractor_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewPlainExtractor().Extract(ctx, "a.txt", []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
}

func restTexts(t *testing.T, content string) []string {
	t.Helper()

	nodes, err := source.NewRestExtractor().Extract(context.Background(), "a.rst", []byte(content))
	require.NoError(t, err)

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text)
	}
	return out
}

func TestRestExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "section title adornments are skipped",
			content: "概要\n====\n\n本文です。\n",
			want:    []string{"概要", "本文です。"},
		},
		{
			name:    "literal block after paragraph ending in double colon",
			content: "例を示します::\n\n    ｶﾀｶﾅ 12Mbps\n    (全角)\n\n続き\n",
			want:    []string{"例を示します:", "続き"},
		},
		{
			name:    "expanded form keeps no colon",
			content: "例を示します ::\n\n    ｶﾀｶﾅ\n\n続き\n",
			want:    []string{"例を示します", "続き"},
		},
		{
			name:    "bare double colon",
			content: "::\n\n    ｶﾀｶﾅ\n\n続き\n",
			want:    []string{"続き"},
		},
		{
			name:    "comment is skipped with its body",
			content: ".. ｶﾀｶﾅ comment\n   continued ｶﾀｶﾅ\n\n本文\n",
			want:    []string{"本文"},
		},
		{
			name:    "code-block directive is skipped",
			content: ".. code-block:: python\n   :linenos:\n\n   print(\"ｶﾀｶﾅ\")\n\n本文\n",
			want:    []string{"本文"},
		},
		{
			name:    "todo directive is skipped",
			content: ".. todo::\n\n   ユーザ\n\n本文\n",
			want:    []string{"本文"},
		},
		{
			name:    "note directive body is prose",
			content: ".. note:: 注意\n   :class: small\n\n   ユーザ編集\n",
			want:    []string{"注意", "ユーザ編集"},
		},
		{
			name:    "inline literals are removed",
			content: "設定 ``ｶﾀｶﾅ`` を変更\n",
			want:    []string{"設定", "を変更"},
		},
		{
			name:    "hyperlink target is skipped",
			content: ".. _ユーザ: https://example.com\n\n本文\n",
			want:    []string{"本文"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, restTexts(t, tt.content))
		})
	}
}

func TestRestExtractor_Positions(t *testing.T) {
	t.Parallel()

	content := "タイトル\n========\n\n  引用 ``code`` 本文\n"
	nodes, err := source.NewRestExtractor().Extract(context.Background(), "a.rst", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, []source.Node{
		{Text: "タイトル", Line: 1, Column: 1},
		{Text: "引用", Line: 4, Column: 3},
		{Text: "本文", Line: 4, Column: 15},
	}, nodes)
}
