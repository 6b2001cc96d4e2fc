package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/podcut/internal/logger"
)

func TestIsSubtitleFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/inbox/episode.srt", true},
		{"/inbox/EPISODE.SRT", true},
		{"episode.Srt", true},
		{"/inbox/episode.srt.tmp", false},
		{"/inbox/episode.txt", false},
		{"/inbox/episode.mp4", false},
		{"/inbox/srt", false},
	}

	for _, tt := range tests {
		if got := isSubtitleFile(tt.path); got != tt.want {
			t.Errorf("isSubtitleFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSemaphoreAcquireCancelled(t *testing.T) {
	s := newSemaphore(1)
	if err := s.acquire(context.Background()); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("acquire() on full semaphore error = %v, want %v", err, context.Canceled)
	}

	s.release()
	if err := s.acquire(context.Background()); err != nil {
		t.Errorf("acquire() after release error = %v", err)
	}
}

func newTestWatcher(t *testing.T, dir string, handler EventHandler, maxConcurrent int) *implWatcher {
	t.Helper()
	w, err := New(dir, handler, logger.Discard(), maxConcurrent)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })
	impl := w.(*implWatcher)
	impl.settleDelay = 10 * time.Millisecond
	return impl
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Discard(), 1)
	if err == nil {
		t.Error("New() on a missing directory should fail")
	}
}

func TestDispatchBoundsConcurrency(t *testing.T) {
	var running, peak int32
	release := make(chan struct{})
	handler := func(ctx context.Context, path string) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		<-release
		atomic.AddInt32(&running, -1)
		return nil
	}

	w := newTestWatcher(t, t.TempDir(), handler, 2)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		for _, name := range []string{"a.srt", "b.srt", "c.srt", "d.srt"} {
			_ = w.dispatch(ctx, name)
		}
		close(done)
	}()

	// Two handlers hold both slots; the third dispatch blocks.
	deadline := time.After(5 * time.Second)
	for atomic.LoadInt32(&running) < 2 {
		select {
		case <-deadline:
			t.Fatal("handlers did not start")
		case <-time.After(5 * time.Millisecond):
		}
	}
	select {
	case <-done:
		t.Fatal("dispatch should block while all slots are busy")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-done
	w.wg.Wait()

	if got := atomic.LoadInt32(&peak); got != 2 {
		t.Errorf("peak concurrency = %d, want 2", got)
	}
}

func TestDispatchSkipsInFlightPath(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	handler := func(ctx context.Context, path string) error {
		atomic.AddInt32(&calls, 1)
		<-release
		return nil
	}

	w := newTestWatcher(t, t.TempDir(), handler, 4)
	ctx := context.Background()

	_ = w.dispatch(ctx, "same.srt")
	_ = w.dispatch(ctx, "same.srt")
	close(release)
	w.wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("handler calls = %d, want 1", got)
	}

	// Once finished, the path may be handled again.
	_ = w.dispatch(ctx, "same.srt")
	w.wg.Wait()
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("handler calls = %d, want 2", got)
	}
}

func TestStartHandlesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "waiting.srt"), []byte("1\nhi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	seen := make(map[string]bool)
	handled := make(chan string, 8)
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		seen[filepath.Base(path)] = true
		mu.Unlock()
		handled <- filepath.Base(path)
		return nil
	}

	w := newTestWatcher(t, dir, handler, 2)
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- w.Start(ctx) }()

	waitFor(t, handled, "waiting.srt")

	if err := os.WriteFile(filepath.Join(dir, "fresh.SRT"), []byte("1\nhi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, handled, "fresh.SRT")

	cancel()
	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if seen["notes.txt"] {
		t.Error("non-subtitle file should be ignored")
	}
}

func waitFor(t *testing.T, handled <-chan string, name string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-handled:
			if got == name {
				return
			}
		case <-timeout:
			t.Fatalf("handler never saw %s", name)
		}
	}
}
