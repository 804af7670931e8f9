// Package testutil provides file-fixture helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// WriteConfig writes a config file into a fresh temp directory and
// returns its path. The directory is cleaned up with the test.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, t.TempDir(), "config.conf", content)
}
