package watcher

import "context"

// Watcher monitors the inbox directory for new transcripts.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one transcript path.
type EventHandler func(ctx context.Context, filePath string) error
