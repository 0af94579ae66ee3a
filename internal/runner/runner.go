// Package runner analyzes tree files in batches and in watch mode.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

// treeExtensions are the interchange formats a directory scan picks up.
var treeExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// DefaultDebounce is how long watch mode waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// FileResult is the outcome of analyzing one file. Exactly one of Result
// and Err is set.
type FileResult struct {
	Path   string
	Result *lint.Result
	Err    error
}

// Runner analyzes tree files with a shared analyzer.
type Runner struct {
	analyzer *lint.Analyzer
	parallel int
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallel bounds the number of files analyzed at once. Values below
// one mean one worker per CPU.
func WithParallel(n int) Option {
	return func(r *Runner) {
		r.parallel = n
	}
}

// WithDebounce sets the watch mode settle delay.
func WithDebounce(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.debounce = d
		}
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a runner.
func New(analyzer *lint.Analyzer, opts ...Option) *Runner {
	r := &Runner{
		analyzer: analyzer,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallel < 1 {
		r.parallel = runtime.GOMAXPROCS(0)
	}
	return r
}

// IsTreeFile reports whether path has a tree interchange extension.
func IsTreeFile(path string) bool {
	return treeExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover expands paths into the sorted, de-duplicated list of tree files.
// Directories are scanned recursively, skipping hidden ones; files named
// explicitly are kept whatever their extension.
func Discover(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if IsTreeFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Run discovers and analyzes every tree file under paths.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	files, err := Discover(paths)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files)
}

// RunFiles analyzes files in parallel and returns one result per file,
// sorted by path. A file that fails to decode is reported in its
// FileResult and does not stop the others; only cancellation aborts the
// batch.
func (r *Runner) RunFiles(ctx context.Context, files []string) ([]FileResult, error) {
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.analyzeFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

func (r *Runner) analyzeFile(path string) FileResult {
	start := time.Now()
	tree, err := syntax.DecodeFile(path)
	if err != nil {
		r.logger.Warn("skipping file", "path", path, "error", err)
		return FileResult{Path: path, Err: err}
	}

	result := r.analyzer.Analyze(tree)
	for _, failure := range result.Failures() {
		r.logger.Warn("rule failed", "path", path, "rule", failure.RuleID, "phase", failure.Phase)
	}
	r.logger.Debug("analyzed file",
		"path", path,
		"nodes", tree.Len(),
		"violations", len(result.Violations),
		"duration", time.Since(start),
	)
	return FileResult{Path: path, Result: result}
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
