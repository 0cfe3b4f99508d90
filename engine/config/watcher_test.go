package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ombralabs/ombra/engine/entity"
	"github.com/ombralabs/ombra/engine/event"
)

func TestWatcherPostsConfigChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ombra.toml")
	if err := os.WriteFile(path, []byte("[application]\nname = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d := event.NewDispatcher()
	var changed []string
	_ = d.Register(event.NewHandler("reload").Receive(func(ev event.Event, target *entity.Entity) event.Result {
		changed = append(changed, ev.(*event.ConfigChangedEvent).Path)
		return event.Continue
	}, event.TypeConfigChanged))

	w, err := NewWatcher(path, d)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()
	if err := w.Start(); err != nil {
		t.Fatalf("starting watcher: %v", err)
	}

	if err := os.WriteFile(path, []byte("[application]\nname = \"b\"\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(changed) == 0 && time.Now().Before(deadline) {
		d.DispatchPosted()
		time.Sleep(10 * time.Millisecond)
	}
	if len(changed) == 0 {
		t.Fatal("expected a config-changed event after rewriting the file")
	}
	if changed[0] != filepath.Clean(path) {
		t.Errorf("expected event path %q, got %q", path, changed[0])
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ombra.toml")
	if err := os.WriteFile(path, []byte("[application]\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d := event.NewDispatcher()
	fired := false
	_ = d.Register(event.NewHandler("reload").Receive(func(ev event.Event, target *entity.Entity) event.Result {
		fired = true
		return event.Continue
	}, event.TypeConfigChanged))

	w, err := NewWatcher(path, d)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()
	if err := w.Start(); err != nil {
		t.Fatalf("starting watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	d.DispatchPosted()
	if fired {
		t.Error("expected no event for a sibling file change")
	}
}
