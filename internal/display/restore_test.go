package display

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/options"
)

func TestPersistAndRestore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	store, err := options.Open(dbPath)
	if err != nil {
		t.Fatalf("options.Open() failed: %v", err)
	}
	defer store.Close()

	logger := log.New(io.Discard)
	m, err := NewManager(NopSink{}, store, testConfig(), logger)
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}

	if err := m.ToggleFullscreen(); err != nil {
		t.Fatalf("ToggleFullscreen() failed: %v", err)
	}
	if err := m.SetResolution(Resolution{Width: 132, Height: 43}); err != nil {
		t.Fatalf("SetResolution() failed: %v", err)
	}

	// A fresh manager over the same store restores the persisted state.
	restored, err := NewManager(NopSink{}, store, testConfig(), logger)
	if err != nil {
		t.Fatalf("NewManager() restore failed: %v", err)
	}

	if restored.Fullscreen() {
		t.Error("restored fullscreen = true, expected persisted false")
	}
	if restored.Resolution() != (Resolution{Width: 132, Height: 43}) {
		t.Errorf("restored resolution = %s, expected 132x43", restored.Resolution())
	}
}
