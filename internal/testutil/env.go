// Package testutil provides utilities for testing bootstrap-ubi in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points the bootstrap environment variables at throwaway
// directories so tests never touch the caller's real home directory or
// an actual install target. It returns the target directory it created.
//
// Cleanup is handled by t.TempDir and t.Setenv, so callers don't need
// to restore anything.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "bin")
	home := filepath.Join(tmpDir, "home")

	for _, dir := range []string{target, home} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	t.Setenv("TARGET", target)
	t.Setenv("HOME", home)

	// TAG stays unset so tests exercise the latest-release default.
	t.Setenv("TAG", "")
	os.Unsetenv("TAG")

	return target
}
