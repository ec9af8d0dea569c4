package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/houseabsolute/bootstrap-ubi/internal/testutil"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		tag        string
		wantTarget string
		wantTag    string
	}{
		{
			name:       "both_unset",
			wantTarget: "",
			wantTag:    "",
		},
		{
			name:       "target_override",
			target:     "/opt/tools/bin",
			wantTarget: "/opt/tools/bin",
		},
		{
			name:    "pinned_tag",
			tag:     "v0.8.1",
			wantTag: "v0.8.1",
		},
		{
			name:       "both_set",
			target:     "/opt/tools/bin",
			tag:        "v0.8.1",
			wantTarget: "/opt/tools/bin",
			wantTag:    "v0.8.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTarget, tt.target)
			t.Setenv(EnvTag, tt.tag)
			if tt.target == "" {
				os.Unsetenv(EnvTarget)
			}
			if tt.tag == "" {
				os.Unsetenv(EnvTag)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if cfg.TargetDir != tt.wantTarget {
				t.Errorf("TargetDir = %q, want %q", cfg.TargetDir, tt.wantTarget)
			}
			if cfg.Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", cfg.Tag, tt.wantTag)
			}
		})
	}
}

func TestLoadIsolatedEnv(t *testing.T) {
	target := testutil.SetupTestEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TargetDir != target {
		t.Errorf("TargetDir = %q, want %q", cfg.TargetDir, target)
	}
	if cfg.Tag != "" {
		t.Errorf("Tag = %q, want the latest-release default", cfg.Tag)
	}
}

func TestDefaultTargetDirRoot(t *testing.T) {
	dir, err := DefaultTargetDir(0)
	if err != nil {
		t.Fatalf("DefaultTargetDir failed: %v", err)
	}
	if dir != "/usr/local/bin" {
		t.Errorf("dir = %q, want /usr/local/bin", dir)
	}
}

func TestDefaultTargetDirUser(t *testing.T) {
	dir, err := DefaultTargetDir(1000)
	if err != nil {
		t.Fatalf("DefaultTargetDir failed: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}
	if want := filepath.Join(home, "bin"); dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
}
