package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_RequiresCallback(t *testing.T) {
	if _, err := New(time.Millisecond, nil, nil, nil, nil); err == nil {
		t.Error("Expected error for nil callback")
	}
}

func TestWatcher_ShouldTrack(t *testing.T) {
	w, err := New(time.Millisecond, []string{".txt", ".md"}, nil, []string{"*.tmp", "draft-*"}, func([]string) {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	tests := []struct {
		path string
		want bool
	}{
		{"notes/doc.txt", true},
		{"README.md", true},
		{"main.go", false},
		{"doc.tmp", false},
		{"notes/draft-doc.txt", false},
	}
	for _, tc := range tests {
		if got := w.shouldTrack(tc.path); got != tc.want {
			t.Errorf("shouldTrack(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestWatcher_InvalidGlob(t *testing.T) {
	if _, err := New(time.Millisecond, nil, []string{"["}, nil, func([]string) {}); err == nil {
		t.Error("Expected error for invalid glob pattern")
	}
}

func TestWatcher_DebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(file, []byte("first"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	changed := make(chan []string, 1)
	w, err := New(50*time.Millisecond, []string{".txt"}, nil, nil, func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Burst of writes should collapse into one callback.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(file, []byte("edit"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case paths := <-changed:
		if len(paths) != 1 || paths[0] != file {
			t.Errorf("Expected single change for %s, got %v", file, paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for debounced callback")
	}
}
