package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/maestro/internal/logging"
)

// Follower tails an inbox file and feeds every complete appended line to a Pump.
// The file may not exist yet; truncation restarts reading from the top.
type Follower struct {
	offset  int64
	path    string
	pending []byte
	pump    *Pump
}

// NewFollower creates a new Follower for path
func NewFollower(path string, pump *Pump) *Follower {
	return &Follower{path: filepath.Clean(path), pump: pump}
}

// Run blocks until ctx is done
func (f *Follower) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(f.path), err)
	}

	// Lines written before we started
	f.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				f.offset = 0
				f.pending = nil
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				f.drain(ctx)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("Inbox watcher error", "path", f.path, "error", err)
		}
	}
}

// drain reads everything appended since the last offset
func (f *Follower) drain(ctx context.Context) {
	file, err := os.Open(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to open inbox", "path", f.path, "error", err)
		}
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return
	}
	if info.Size() < f.offset {
		logging.Logger.Info("Inbox truncated, reading from start", "path", f.path)
		f.offset = 0
		f.pending = nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		logging.Logger.Warn("Failed to read inbox", "path", f.path, "error", err)
		return
	}
	f.offset += int64(len(data))

	buf := append(f.pending, data...)
	for {
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			break
		}
		f.pump.Handle(ctx, buf[:idx])
		buf = buf[idx+1:]
	}
	f.pending = append([]byte(nil), buf...)
}
