package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_NilCallback(t *testing.T) {
	if _, err := New(t.TempDir(), time.Millisecond, nil); err == nil {
		t.Fatal("New() with nil callback returned nil error")
	}
}

func TestStart_MissingPath(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatal("Start() on missing path returned nil error")
	}
}

func TestWatcher_FiresOnChange(t *testing.T) {
	dir := t.TempDir()
	fired := make(chan struct{}, 1)

	w, err := New(dir, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "activate"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after file change")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	fired := make(chan struct{}, 16)

	w, err := New(dir, 200*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	// A burst of writes inside the debounce window.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(filepath.Join(dir, "activate"), []byte("#!/bin/sh\n"), 0755); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after burst")
	}

	// The burst settled before the first fire, so no second fire follows.
	select {
	case <-fired:
		t.Error("callback fired more than once for a single burst")
	case <-time.After(500 * time.Millisecond):
	}
}
