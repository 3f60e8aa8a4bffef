package learngl

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reports changes to shader source files.
//
// It never touches the graphics API: the render loop polls Changed and
// reloads on its own thread.
//
//	select {
//	case <-watcher.Changed():
//		src, err := learngl.LoadSource(os.DirFS(dir), "shader.vert", "shader.frag")
//		...
//		err = prog.Reload(src)
//	default:
//	}
type Watcher struct {
	fsw     *fsnotify.Watcher
	files   map[string]struct{}
	changed chan struct{}
	done    chan struct{}
	log     logrus.FieldLogger
}

// NewWatcher watches paths. The parent directories are watched rather than
// the files so that editors which save by rename are still seen.
func NewWatcher(logger logrus.FieldLogger, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		files:   make(map[string]struct{}, len(paths)),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     logger,
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %q: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %q: %w", dir, err)
		}
	}

	go w.loop()
	return w, nil
}

// Changed receives a value after one or more watched files changed.
// Bursts of events collapse into a single notification.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, ok := w.files[abs]; !ok {
				continue
			}
			w.log.WithField("file", abs).Debug("shader source changed")
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("shader watcher")
		}
	}
}
