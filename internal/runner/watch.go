package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch re-analyzes tree files under paths as they are written, passing
// each settled batch to handle. It blocks until ctx is done.
func (r *Runner) Watch(ctx context.Context, paths []string, handle func([]FileResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	targets, err := newWatchTargets(paths)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := watchPath(watcher, path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	pending := make(map[string]bool)
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !targets.inDir(event.Name) || isHidden(filepath.Base(event.Name)) {
						continue
					}
					if err := watchPath(watcher, event.Name); err != nil {
						r.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !targets.matches(event.Name) {
				continue
			}
			pending[event.Name] = true
			settle = time.After(r.debounce)

		case <-settle:
			settle = nil
			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}
			clear(pending)
			sort.Strings(files)

			r.logger.Info("change detected", "files", len(files))
			results, err := r.RunFiles(ctx, files)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			handle(results)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher error", "error", err)
		}
	}
}

// watchTargets decides which file events belong to the paths the user
// named. Files named explicitly match whatever their extension; files
// under a named directory match when they look like tree documents.
// Siblings of an explicit file do not match, although its directory is
// what the watcher observes.
type watchTargets struct {
	files map[string]bool
	dirs  []string
}

func newWatchTargets(paths []string) (*watchTargets, error) {
	t := &watchTargets{files: make(map[string]bool)}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", path, err)
		}
		if info.IsDir() {
			t.dirs = append(t.dirs, abs)
		} else {
			t.files[abs] = true
		}
	}
	return t, nil
}

func (t *watchTargets) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if t.files[abs] {
		return true
	}
	return IsTreeFile(abs) && t.inDir(abs)
}

// inDir reports whether name lies under one of the named directories.
func (t *watchTargets) inDir(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	for _, dir := range t.dirs {
		rel, err := filepath.Rel(dir, abs)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return true
		}
	}
	return false
}

// watchPath adds path to the watcher. Directories are added recursively,
// skipping hidden ones; a file is watched through its directory.
func watchPath(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}
