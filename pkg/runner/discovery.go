package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds documentation files matching opts.
// It returns a deterministically sorted, deduplicated list of absolute file paths.
//
// Files named explicitly are kept regardless of extension, but exclude
// patterns still apply to them. Directories are walked for files whose
// extension is in opts.Extensions; hidden files and directories are skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		exclude:    opts.ExcludeGlobs,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !w.excluded(absPath) {
				w.add(absPath)
			}
			continue
		}

		if err := w.walk(absPath); err != nil {
			return nil, err
		}
	}

	slices.Sort(w.files)
	return w.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walker collects files across one Discover call.
type walker struct {
	ctx        context.Context
	workDir    string
	extensions []string
	exclude    []string
	follow     bool
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

// excluded reports whether path matches an exclude glob, relative to the working directory.
func (w *walker) excluded(path string) bool {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		relPath = path
	}
	for _, pattern := range w.exclude {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || w.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.symlink(path)
		}

		if w.hasExtension(path) && !w.excluded(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a symlink met while walking. File links are treated as
// files; directory links are walked only when following is enabled.
// Broken links are skipped.
func (w *walker) symlink(path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible targets are skipped.
	}

	if !info.IsDir() {
		if w.hasExtension(path) && !w.excluded(path) {
			w.add(path)
		}
		return nil
	}

	if !w.follow || w.excluded(path) {
		return nil
	}
	// Walk the target: WalkDir does not descend into a symlinked root.
	return w.walk(target)
}

func (w *walker) hasExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against a glob pattern.
// Supported forms: "*.md" (also tried against the base name), "dir/**",
// "**/name" and "prefix/**/suffix".
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	before, after, found := strings.Cut(pattern, "**")
	if !found {
		return matchSimple(pattern, path) || matchSimple(pattern, pathBase(path))
	}

	prefix := strings.TrimSuffix(before, "/")
	suffix := strings.TrimPrefix(after, "/")

	if prefix != "" && path != prefix && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if suffix == "" {
		return true
	}

	// The suffix may match any trailing run of path components.
	rest := strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	parts := strings.Split(rest, "/")
	for i := range parts {
		tail := strings.Join(parts[i:], "/")
		if matchSimple(suffix, tail) || strings.HasPrefix(tail, suffix+"/") {
			return true
		}
	}
	return false
}

func matchSimple(pattern, name string) bool {
	matched, err := filepath.Match(pattern, name)
	return err == nil && matched
}

func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
