package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/validator"
)

// newProjectDir returns a temp dir marked as a VCS root so the upward
// search never leaves it.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(newProjectDir(t)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.LogLevel != config.LogLevelWarn {
		t.Errorf("expected loglevel %q, got %q", config.LogLevelWarn, result.Config.LogLevel)
	}
	if result.Config.Flavor != config.FlavorCommonMark {
		t.Errorf("expected flavor %q, got %q", config.FlavorCommonMark, result.Config.Flavor)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeFile(t, filepath.Join(dir, ".termlint.yml"), `
half_width_katakana: false
loglevel: error
ng_word_rule_file: docs/ngwords.dic
`)

	// Search starts in a subdirectory and walks up to the project root.
	sub := filepath.Join(dir, "docs", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.CheckEnabled(validator.HalfWidthKatakana) {
		t.Error("expected half_width_katakana to be disabled")
	}
	if !cfg.CheckEnabled(validator.Parenthesis) {
		t.Error("expected parenthesis to stay enabled")
	}
	if cfg.LogLevel != config.LogLevelError {
		t.Errorf("expected loglevel error, got %q", cfg.LogLevel)
	}

	want := filepath.Join(dir, "docs", "ngwords.dic")
	if cfg.NGWordRuleFile != want {
		t.Errorf("expected rule file resolved to %q, got %q", want, cfg.NGWordRuleFile)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfigReplacesProject(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeFile(t, filepath.Join(dir, ".termlint.yml"), "loglevel: error\nflavor: gfm\nparenthesis: false\n")
	customPath := filepath.Join(dir, "ci", "termlint.yml")
	writeFile(t, customPath, "loglevel: info\nng_word_rule_file: /abs/rules.dic\n")

	opts := isolated(dir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.LogLevel != config.LogLevelInfo {
		t.Errorf("expected explicit loglevel info, got %q", result.Config.LogLevel)
	}
	if result.Config.Flavor != config.FlavorCommonMark {
		t.Errorf("project flavor must not apply with an explicit config, got %q", result.Config.Flavor)
	}
	if !result.Config.CheckEnabled(validator.Parenthesis) {
		t.Error("project toggle must not apply with an explicit config")
	}
	if result.Config.NGWordRuleFile != "/abs/rules.dic" {
		t.Errorf("absolute rule file must be kept, got %q", result.Config.NGWordRuleFile)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != customPath {
		t.Errorf("expected only the explicit file to load, got %v", result.LoadedFrom)
	}
	if result.Paths.Project == "" {
		t.Error("project config should still be reported as discovered")
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeFile(t, filepath.Join(dir, ".termlint.yml"), "loglevel: error\nparenthesis: false\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		LogLevel:      config.LogLevelInfo,
		Format:        config.FormatJSON,
		Jobs:          2,
		EnableChecks:  []string{"parenthesis"},
		DisableChecks: []string{"ng_words"},
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.LogLevel != config.LogLevelInfo {
		t.Errorf("expected loglevel info, got %q", cfg.LogLevel)
	}
	if cfg.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", cfg.Format)
	}
	if cfg.Jobs != 2 {
		t.Errorf("expected jobs 2, got %d", cfg.Jobs)
	}
	if !cfg.CheckEnabled(validator.Parenthesis) {
		t.Error("--enable must re-enable parenthesis")
	}
	if cfg.CheckEnabled(validator.NGWords) {
		t.Error("--disable must disable ng_words")
	}
}

func TestLoad_UnknownCheck(t *testing.T) {
	t.Parallel()

	opts := isolated(newProjectDir(t))
	opts.CLIConfig = &config.Config{DisableChecks: []string{"spelling"}}

	_, err := Load(context.Background(), opts)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"invalid loglevel", "loglevel: debug\n", "loglevel"},
		{"invalid flavor", "flavor: mdx\n", "flavor"},
		{"invalid extension", "extensions: [md]\n", "extensions[0]"},
		{"invalid glob", "ignore: [\"[\"]\n", "ignore[0]"},
		{"unknown key", "colour: true\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := newProjectDir(t)
			path := filepath.Join(dir, ".termlint.yml")
			writeFile(t, path, tt.content)

			_, err := Load(context.Background(), isolated(dir))

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.FilePath != path {
				t.Errorf("expected file path %q, got %q", path, vErr.FilePath)
			}
			if vErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	opts := isolated(newProjectDir(t))
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	dir := newProjectDir(t)
	t.Setenv("TERMLINT_LOGLEVEL", "info")
	t.Setenv("TERMLINT_PUNCTUATION_MARK", "false")
	t.Setenv("TERMLINT_UNITS", "px, em")

	opts := isolated(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.LogLevel != config.LogLevelInfo {
		t.Errorf("expected loglevel info, got %q", result.Config.LogLevel)
	}
	if result.Config.CheckEnabled(validator.PunctuationMark) {
		t.Error("expected punctuation_mark to be disabled")
	}
	if len(result.Config.Units) != 2 || result.Config.Units[1] != "em" {
		t.Errorf("expected units [px em], got %v", result.Config.Units)
	}
}

func TestLoad_EnvInvalidBool(t *testing.T) {
	t.Setenv("TERMLINT_NG_WORDS", "maybe")

	opts := isolated(newProjectDir(t))
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "TERMLINT_NG_WORDS" {
		t.Errorf("unexpected field %q", vErr.Field)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "termlint", "config.yaml"), "units: []\n")

	opts := LoadOptions{
		WorkingDir:         newProjectDir(t),
		IgnoreSystemConfig: true,
		IgnoreEnv:          true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Units == nil || len(result.Config.Units) != 0 {
		t.Errorf("expected empty units list to survive merging, got %#v", result.Config.Units)
	}
	if result.Paths.User == "" {
		t.Error("expected user config path to be discovered")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	base := config.NewConfig()
	base.Ignore = []string{"vendor/**"}

	override := &config.Config{Parenthesis: &off, Strict: true}

	merged := merge(base, override)

	if merged.CheckEnabled(validator.Parenthesis) {
		t.Error("expected override toggle to win")
	}
	if !merged.Strict {
		t.Error("expected strict to be set")
	}
	if len(merged.Ignore) != 1 {
		t.Error("nil override slice must not clear base")
	}
	if merged.LogLevel != config.LogLevelWarn {
		t.Error("empty override scalar must not clear base")
	}

	*override.Parenthesis = true
	if merged.CheckEnabled(validator.Parenthesis) {
		t.Error("merged toggle must not alias the override")
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	if MergeAll() != nil {
		t.Error("MergeAll() of nothing must be nil")
	}

	merged := MergeAll(
		&config.Config{LogLevel: config.LogLevelInfo},
		&config.Config{Flavor: config.FlavorGFM},
		&config.Config{LogLevel: config.LogLevelError},
	)
	if merged.LogLevel != config.LogLevelError || merged.Flavor != config.FlavorGFM {
		t.Errorf("unexpected merge result: %+v", merged)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".termlint.yml"), "loglevel: info\n")
	inner := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(inner, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, err := FindProjectConfig(context.Background(), inner)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("search must stop at the VCS root, found %q", path)
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		seen[v.Name] = true
	}

	for _, name := range []string{"TERMLINT_LOGLEVEL", "TERMLINT_NG_WORD_RULE_FILE", "TERMLINT_HALF_WIDTH_KATAKANA"} {
		if !seen[name] {
			t.Errorf("missing %s", name)
		}
	}
	if GetEnvVarName("loglevel") != "TERMLINT_LOGLEVEL" {
		t.Error("GetEnvVarName(loglevel) mismatch")
	}
}
