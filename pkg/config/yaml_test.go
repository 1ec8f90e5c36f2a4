package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/termlint/pkg/config"
)

func TestFromYAML(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		data := []byte(`
half_width_katakana: false
parenthesis: true
ng_words: false
ng_word_rule_file: docs/ngwords.dic
loglevel: error
units: [px, em]
flavor: gfm
extensions: [.md]
ignore:
  - "_build/**"
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)

		require.NotNil(t, cfg.HalfWidthKatakana)
		assert.False(t, *cfg.HalfWidthKatakana)
		require.NotNil(t, cfg.Parenthesis)
		assert.True(t, *cfg.Parenthesis)
		assert.Nil(t, cfg.QuestionExclamation)
		require.NotNil(t, cfg.NGWords)
		assert.False(t, *cfg.NGWords)
		assert.Equal(t, "docs/ngwords.dic", cfg.NGWordRuleFile)
		assert.Equal(t, config.LogLevelError, cfg.LogLevel)
		assert.Equal(t, []string{"px", "em"}, cfg.Units)
		assert.Equal(t, config.FlavorGFM, cfg.Flavor)
		assert.Equal(t, []string{".md"}, cfg.Extensions)
		assert.Equal(t, []string{"_build/**"}, cfg.Ignore)
	})

	t.Run("empty units list is kept", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("units: []\n"))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Units)
		assert.Empty(t, cfg.Units)
	})

	t.Run("comments only", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("# nothing here\n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.FromYAML([]byte("half_width_kana: false\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "half_width_kana")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("loglevel: [\n"))
		require.Error(t, err)
	})
}

func TestToYAML(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var c *config.Config
		data, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("cli fields are not written", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Strict = true
		cfg.Jobs = 4

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "loglevel: warn")
		assert.NotContains(t, string(data), "strict")
		assert.NotContains(t, string(data), "jobs")
	})

	t.Run("round trip", func(t *testing.T) {
		original := config.NewConfig()
		original.Parenthesis = boolPtr(false)
		original.NGWordRuleFile = "rules.dic"

		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original.NGWordRuleFile, parsed.NGWordRuleFile)
		require.NotNil(t, parsed.Parenthesis)
		assert.False(t, *parsed.Parenthesis)
	})

	t.Run("with header", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Contains(t, string(data), "# header\n\n")
	})
}

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies toggles and slices", func(t *testing.T) {
		original := config.NewConfig()
		original.Parenthesis = boolPtr(false)
		original.Ignore = []string{"vendor/**"}
		original.Units = []string{}
		original.DisableChecks = []string{"ng_words"}
		original.Strict = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		*clone.Parenthesis = true
		clone.Ignore[0] = "changed"
		clone.DisableChecks[0] = "changed"

		assert.False(t, *original.Parenthesis)
		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.Equal(t, "ng_words", original.DisableChecks[0])
		assert.NotNil(t, clone.Units)
	})
}
