package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/zmzlois/readingreact/logging"
)

var logCtx = logging.PackageCtx("watch")

// Event reports that the document at Path changed or, with Removed set, disappeared.
type Event struct {
	Path    string
	Removed bool
}

// DirectoryMonitor watches a directory tree and reports changes of files matching a pattern.
// Bursts of writes to the same file are reported once, after the file has been quiet for the debounce interval.
type DirectoryMonitor struct {
	dir     string
	matcher glob.Glob

	pending map[string]pendingEvent
	lock    sync.Mutex

	debounce time.Duration
}

type pendingEvent struct {
	removed bool
	seen    time.Time
}

func NewDirectoryMonitor(dir, pattern string, debounce time.Duration) (*DirectoryMonitor, error) {
	if debounce <= 0 {
		return nil, fmt.Errorf("debounce interval must be positive, got %s", debounce)
	}

	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid watch pattern %q: %w", pattern, err)
	}

	return &DirectoryMonitor{
		dir:      dir,
		matcher:  matcher,
		pending:  make(map[string]pendingEvent),
		debounce: debounce,
	}, nil
}

// Matches reports whether path, inside the watched directory, is a document.
func (m *DirectoryMonitor) Matches(path string) bool {
	rel, err := filepath.Rel(m.dir, path)
	if err != nil {
		return false
	}

	return m.matcher.Match(filepath.ToSlash(rel))
}

func (m *DirectoryMonitor) record(path string, removed bool, now time.Time) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.pending[path] = pendingEvent{removed: removed, seen: now}
}

// flush returns the events that have been quiet since before now-debounce.
func (m *DirectoryMonitor) flush(now time.Time) []Event {
	m.lock.Lock()
	defer m.lock.Unlock()

	ready := make([]Event, 0)

	for path, p := range m.pending {
		if now.Sub(p.seen) < m.debounce {
			continue
		}

		ready = append(ready, Event{Path: path, Removed: p.removed})
		delete(m.pending, path)
	}

	return ready
}

func (m *DirectoryMonitor) handle(watcher *fsnotify.Watcher, ev fsnotify.Event, now time.Time) {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			slog.DebugContext(logCtx, "Watching new directory", "path", ev.Name)

			if err := addTree(watcher, ev.Name); err != nil {
				slog.ErrorContext(logCtx, "Could not watch directory", "path", ev.Name, "error", err)
			}

			return
		}
	}

	if !m.Matches(ev.Name) {
		return
	}

	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		m.record(ev.Name, true, now)
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		m.record(ev.Name, false, now)
	}
}

// Channel starts watching. The channel is closed once ctx is done or the watcher fails.
func (m *DirectoryMonitor) Channel(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}

	if err := addTree(watcher, m.dir); err != nil {
		watcher.Close()

		return nil, err
	}

	out := make(chan Event, 5)

	go func() {
		slog.InfoContext(logCtx, "Monitoring started", "path", m.dir)

		defer slog.InfoContext(logCtx, "End monitoring", "path", m.dir)
		defer close(out)
		defer watcher.Close()

		ticker := time.NewTicker(m.debounce)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}

				m.handle(watcher, ev, time.Now())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.ErrorContext(logCtx, "Watcher error", "error", err)
			case now := <-ticker.C:
				for _, ev := range m.flush(now) {
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return out, nil
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("could not watch %s: %w", root, err)
	}

	return nil
}
