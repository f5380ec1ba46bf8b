package assets

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/spaghettifunk/trimesh/engine/core"
)

// DefaultDebounce groups the burst of events an editor produces when saving a file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports mesh files that changed on disk. Events for one file arriving within the
// debounce window are merged into a single notification carrying the path given to Add.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	debounce time.Duration
	logger   *core.Logger

	mutex    sync.Mutex
	files    map[string]string // cleaned absolute path -> path given to Add
	dirs     map[string]int    // watched directory -> number of files in it
	isClosed bool

	events chan string
	errors chan error
	done   chan struct{}
	wg     sync.WaitGroup
}

func NewWatcher(logger *core.Logger, debounce time.Duration) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating watcher")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsnotify: fsWatch,
		debounce: debounce,
		logger:   logger,
		files:    make(map[string]string),
		dirs:     make(map[string]int),
		events:   make(chan string),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

// Add starts watching the file at path. The parent directory is watched so that files
// replaced by rename are still reported.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "watching %s", path)
	}
	abs = filepath.Clean(abs)
	dir := filepath.Dir(abs)

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return ErrWatcherClosed
	}
	if _, ok := w.files[abs]; ok {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.fsnotify.Add(dir); err != nil {
			return errors.Wrapf(err, "watching %s", dir)
		}
	}
	w.dirs[dir]++
	w.files[abs] = path
	w.logger.LogDebug("watching %s", path)
	return nil
}

// Events delivers the paths of changed files. It is closed by Close.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors delivers errors of the underlying notifier. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	w.wg.Wait()
	return nil
}

func (w *Watcher) start() {
	defer w.wg.Done()

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				w.shutdown(timer)
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			path, watched := w.lookup(e.Name)
			if !watched {
				continue
			}
			pending[path] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]struct{})
			for _, p := range paths {
				select {
				case w.events <- p:
				case <-w.done:
					w.shutdown(timer)
					return
				}
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				w.shutdown(timer)
				return
			}
			w.logger.LogError("watcher: %s", err.Error())
			select {
			case w.errors <- err:
			case <-w.done:
				w.shutdown(timer)
				return
			}

		case <-w.done:
			w.shutdown(timer)
			return
		}
	}
}

func (w *Watcher) shutdown(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
	w.fsnotify.Close()
	close(w.events)
	close(w.errors)
}

func (w *Watcher) lookup(name string) (string, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", false
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	path, ok := w.files[filepath.Clean(abs)]
	return path, ok
}
