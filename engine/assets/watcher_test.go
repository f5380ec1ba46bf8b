package assets

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/spaghettifunk/trimesh/engine/core"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "watched.obj", tetraOBJ)
	writeFile(t, dir, "ignored.obj", tetraOBJ)

	w, err := NewWatcher(core.NopLogger(), 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		t.Fatal(err)
	}

	writeFile(t, dir, "ignored.obj", tetraOBJ+"\n")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(tetraOBJ), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-w.Events():
		if got != path {
			t.Fatalf("event for %s, want %s", got, path)
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event within 5s")
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Events(); ok {
		t.Fatal("events channel still open")
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Fatalf("second Close = %v, want ErrWatcherClosed", err)
	}
	if err := w.Add("x.obj"); !errors.Is(err, ErrWatcherClosed) {
		t.Fatalf("Add after Close = %v, want ErrWatcherClosed", err)
	}
}
