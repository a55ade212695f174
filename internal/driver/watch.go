package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-translates .java files as they are written.
type Watcher struct {
	d *Driver
	w *fsnotify.Watcher
}

// Watch starts watching dirs and every directory below them. The watch is
// active when Watch returns.
func (d *Driver) Watch(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	wt := &Watcher{d: d, w: w}
	for _, dir := range dirs {
		if err := wt.addTree(dir); err != nil {
			w.Close()
			return nil, err
		}
	}
	return wt, nil
}

func (wt *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() {
			return wt.w.Add(p)
		}
		return nil
	})
}

// Run delivers one result per created or written .java file until ctx is
// done or the watcher is closed.
func (wt *Watcher) Run(ctx context.Context, onResult func(*Result)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-wt.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := wt.addTree(ev.Name); err != nil {
						wt.d.logger.Warn("cannot watch directory", "dir", ev.Name, "error", err)
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isJava(ev.Name) {
				continue
			}
			onResult(wt.d.TranslateFile(ctx, ev.Name))
		case err, ok := <-wt.w.Errors:
			if !ok {
				return nil
			}
			wt.d.logger.Warn("watch error", "error", err)
		}
	}
}

func (wt *Watcher) Close() error { return wt.w.Close() }
