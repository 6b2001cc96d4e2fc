package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/podcut/internal/logger"
)

const subtitleExt = ".srt"

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settleDelay   time.Duration
	slots         *semaphore
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Start processes transcripts already waiting in the inbox, then handles new
// ones until ctx is cancelled. It waits for running handlers before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan inbox: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return w.shutdown(ctx)

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return errors.New("watcher events channel closed")
			}
			if !isCreate(event) {
				continue
			}
			if !isSubtitleFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-subtitle file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)
			// Give the writer a moment to finish the file.
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return w.shutdown(ctx)
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.shutdown(ctx)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) shutdown(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for ongoing analyses to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return ctx.Err()
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !isSubtitleFile(entry.Name()) {
			continue
		}
		if err := w.dispatch(ctx, filepath.Join(w.inputDir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// dispatch runs the handler in its own goroutine once a slot is free. A path
// already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if !w.claim(path) {
		w.logger.Debug(ctx, "Already processing %s", path)
		return nil
	}
	if err := w.slots.acquire(ctx); err != nil {
		w.unclaim(path)
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.slots.release()
		defer w.unclaim(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) claim(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.inFlight[path]; ok {
		return false
	}
	w.inFlight[path] = struct{}{}
	return true
}

func (w *implWatcher) unclaim(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, path)
}

func isCreate(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create
}

func isSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), subtitleExt)
}
