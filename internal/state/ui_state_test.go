package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUIState(t *testing.T) {
	state := DefaultUIState()

	if state == nil {
		t.Fatal("DefaultUIState returned nil")
	}

	if state.Details.Visible {
		t.Error("Expected details panel to be hidden by default")
	}
}

func TestLoadNonExistent(t *testing.T) {
	state := Load(filepath.Join(t.TempDir(), "missing"))

	if state == nil {
		t.Fatal("Load returned nil for non-existent file")
	}

	if state.Details.Visible {
		t.Error("Expected default details visibility to be false")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	state := &UIState{
		Details: DetailsState{
			Visible: true,
		},
	}

	if err := Save(tmpDir, state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	path := filepath.Join(tmpDir, "ui-state.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("State file was not created")
	}

	loaded := Load(tmpDir)
	if loaded == nil {
		t.Fatal("Load returned nil")
	}

	if !loaded.Details.Visible {
		t.Error("Loaded state does not match saved state")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "subdir", "data")

	if err := Save(dataDir, DefaultUIState()); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Error("Data directory was not created")
	}

	path := filepath.Join(dataDir, "ui-state.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("State file was not created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "ui-state.json")
	if err := os.WriteFile(path, []byte("invalid json {{{"), 0644); err != nil {
		t.Fatalf("Failed to write invalid JSON: %v", err)
	}

	state := Load(tmpDir)
	if state == nil {
		t.Fatal("Load returned nil for invalid JSON")
	}

	if state.Details.Visible {
		t.Error("Expected default details visibility when JSON is invalid")
	}
}
