package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceWindow is how long the file must stay unchanged before it is reloaded;
// editors often emit several writes per save.
const debounceWindow = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
// Valid configurations are delivered on Updates; invalid ones are logged and sent to Errors.
// The directory is watched rather than the file so that atomic rename-on-save is seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  zerolog.Logger

	Updates chan *Config
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching filename for changes.
//
// Parameters:
//   - filename: the configuration file to watch
//   - logger: logger for reload messages
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the watch cannot be established
func NewWatcher(filename string, logger zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		logger:  logger.With().Str("component", "config").Logger(),
		Updates: make(chan *Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes its channels. Safe to call more than once.
//
// Returns:
//   - error: error from the underlying fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// reload once the file has been quiet for debounceWindow
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watch error")
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn().Err(err).Str("path", w.path).Msg("ignoring invalid configuration")
		w.sendErr(err)
		return
	}
	w.logger.Info().Str("path", w.path).Msg("configuration reloaded")

	// keep only the newest configuration if the consumer is behind
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
