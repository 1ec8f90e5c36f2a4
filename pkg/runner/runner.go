package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/termlint/internal/logging"
	"github.com/yaklabco/termlint/pkg/source"
	"github.com/yaklabco/termlint/pkg/validator"
)

// Runner validates documentation files with a shared Validator.
type Runner struct {
	// Validator is read-only and shared by all workers.
	Validator *validator.Validator

	// Extractors maps a document kind to its extractor. Kinds without an
	// entry fall back to the PlainText extractor.
	Extractors map[source.Kind]source.Extractor
}

// New creates a Runner. If extractors is nil, only plain text and
// reStructuredText extraction is available.
func New(v *validator.Validator, extractors map[source.Kind]source.Extractor) *Runner {
	if extractors == nil {
		extractors = map[source.Kind]source.Extractor{
			source.PlainText:        source.NewPlainExtractor(),
			source.ReStructuredText: source.NewRestExtractor(),
		}
	}
	return &Runner{Validator: v, Extractors: extractors}
}

// Run discovers files under opts.Paths and validates them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Reassembles outcomes in path order
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{
		Files:    make([]FileOutcome, 0, len(files)),
		Stats:    newStats(),
		Severity: opts.effectiveSeverity(),
	}
	result.Stats.FilesDiscovered = len(files)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workDir, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; index by path and rebuild in sorted order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workDir string, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.ProcessFile(ctx, path, displayPath(workDir, path))

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile reads and validates one file. Findings are reported under
// displayPath. Read and extraction errors are recorded on the outcome.
func (r *Runner) ProcessFile(ctx context.Context, path, displayPath string) FileOutcome {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileOutcome{Path: path, DisplayPath: displayPath, Error: fmt.Errorf("read file: %w", err)}
	}
	return r.ProcessContent(ctx, path, displayPath, content)
}

// ProcessContent validates already loaded content.
func (r *Runner) ProcessContent(ctx context.Context, path, displayPath string, content []byte) FileOutcome {
	kind := source.Detect(path, content)
	outcome := FileOutcome{
		Path:        path,
		DisplayPath: displayPath,
		Kind:        kind,
		Lines:       source.BuildLines(content),
	}

	extractor, ok := r.Extractors[kind]
	if !ok {
		extractor, ok = r.Extractors[source.PlainText]
	}
	if !ok {
		outcome.Error = fmt.Errorf("no extractor for %s documents", kind)
		return outcome
	}

	nodes, err := extractor.Extract(ctx, path, content)
	if err != nil {
		outcome.Error = fmt.Errorf("extract %s: %w", kind, err)
		return outcome
	}

	outcome.Nodes = len(nodes)
	for _, node := range nodes {
		loc := validator.Location{File: displayPath, Line: node.Line, Column: node.Column}
		outcome.Findings = append(outcome.Findings, r.Validator.Validate(node.Text, loc)...)
	}

	logging.FromContext(ctx).Debug("validated file",
		logging.FieldPath, displayPath,
		logging.FieldKind, kind.String(),
		logging.FieldNodes, len(nodes),
	)

	return outcome
}

// displayPath returns path relative to workDir when it lies beneath it.
func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
