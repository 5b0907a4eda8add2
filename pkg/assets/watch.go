package assets

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of file events (editors often write a
// file several times in quick succession).
const watchDebounce = 100 * time.Millisecond

// Watcher reports changes to cartridge asset files in a directory. Each
// burst of writes produces a single signal on C.
type Watcher struct {
	fsw  *fsnotify.Watcher
	c    chan struct{}
	done chan struct{}
}

// Watch starts watching dir for changes to asset text files and
// palette.toml.
func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		fsw:  fsw,
		c:    make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// C returns the change signal channel.
func (w *Watcher) C() <-chan struct{} {
	return w.c
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !watchedFile(ev.Name) || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
				fire = debounce.C
			} else {
				debounce.Reset(watchDebounce)
			}
		case <-fire:
			debounce = nil
			fire = nil
			select {
			case w.c <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func watchedFile(name string) bool {
	switch filepath.Base(name) {
	case MapFile, SpriteSheetFile, FlagsFile, "palette.toml":
		return true
	}
	return filepath.Ext(name) == ".txt"
}
