package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/podcut/internal/logger"
)

const (
	defaultMaxConcurrent = 2
	defaultSettleDelay   = 500 * time.Millisecond
)

// New watches inputDir and runs handler for each new .srt file, at most
// maxConcurrent at a time.
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		settleDelay:   defaultSettleDelay,
		slots:         newSemaphore(maxConcurrent),
		inFlight:      make(map[string]struct{}),
	}, nil
}
