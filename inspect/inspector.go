// Package inspect writes JSON snapshots of the UI state so tools and tests
// can see what the deck viewer shows without reading the terminal.
//
// Snapshots are only written when CAROUSEL_INSPECT=1. They go to
// CAROUSEL_INSPECT_FILE, or to elastic-carousel-inspect.json in the temp
// dir.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// EnvVar enables inspection when set to "1".
	EnvVar = "CAROUSEL_INSPECT"
	// FileEnvVar overrides the snapshot path.
	FileEnvVar = "CAROUSEL_INSPECT_FILE"
)

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv(EnvVar) == "1"
		if !enabled {
			return
		}
		inspectFile = os.Getenv(FileEnvVar)
		if inspectFile == "" {
			inspectFile = filepath.Join(os.TempDir(), "elastic-carousel-inspect.json")
		}
	})
	return enabled
}

// GetInspectFile returns the path to the inspection output file.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes a snapshot to the inspection file. It does nothing
// unless inspection is enabled.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes a snapshot to path. The file is replaced in
// one rename so a reader polling it never sees half a snapshot.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
