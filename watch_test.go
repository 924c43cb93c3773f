package logger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchAppliesConfigChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logger.toml")
	if err := os.WriteFile(path, []byte("module = \"first\"\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	l := newQuietLogger(t, &Config{Module: "first", Directory: dir})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Watch(ctx, path)
	}()

	// Let the watcher register before touching the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("module = \"second\"\n"), 0644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && l.Module() != "second" {
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Watch returned %v, want context.Canceled", err)
	}

	// Read the label only after the watcher goroutine has exited.
	if l.Module() != "second" {
		t.Fatalf("module = %q, want second after reload", l.Module())
	}
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logger.toml")
	if err := os.WriteFile(path, []byte("module = \"keep\"\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	l := newQuietLogger(t, &Config{Module: "keep", Directory: dir})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Watch(ctx, path)
	}()

	time.Sleep(100 * time.Millisecond)
	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(other, []byte("module = \"stray\"\n"), 0644); err != nil {
		t.Fatalf("writing unrelated file: %v", err)
	}
	time.Sleep(300 * time.Millisecond)

	cancel()
	<-done

	if l.Module() != "keep" {
		t.Fatalf("unrelated file changed module to %q", l.Module())
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logger.toml")

	l := newQuietLogger(t, &Config{Directory: dir})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Watch(ctx, path); !errors.Is(err, context.Canceled) {
		t.Fatalf("Watch returned %v, want context.Canceled", err)
	}
}

func TestWatchRejectsMissingDirectory(t *testing.T) {
	l := newQuietLogger(t, nil)

	path := filepath.Join(t.TempDir(), "missing", "logger.toml")
	if err := l.Watch(context.Background(), path); err == nil {
		t.Fatal("watching a missing directory did not return an error")
	}
}
