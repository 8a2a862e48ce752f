package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Canonical:     &falseVal,
				LogLevel:      "debug",
				Output:        "json",
				MetricsAddr:   ":9100",
				DebounceDelay: "250ms",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Canonical:     false,
				LogLevel:      "debug",
				Output:        "json",
				MetricsAddr:   ":9100",
				DebounceDelay: 250 * time.Millisecond,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Canonical: &falseVal,
				Output:    "json",
			},
			changed: map[string]bool{"canonical": true},
			initial: Config{Canonical: true, Output: "text"},
			expected: Config{
				Canonical: true, // unchanged because flag was set
				Output:    "json",
			},
		},
		{
			name:       "missing values leave defaults",
			fileConfig: FileConfig{Canonical: &trueVal},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{DebounceDelay: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
canonical = false
log_level = "warn"
output = "json"
metrics_addr = "127.0.0.1:9100"
debounce_delay = "1s"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	falseVal := false
	want := FileConfig{
		Canonical:     &falseVal,
		LogLevel:      "warn",
		Output:        "json",
		MetricsAddr:   "127.0.0.1:9100",
		DebounceDelay: "1s",
	}
	if diff := cmp.Diff(want, fc); diff != "" {
		t.Errorf("LoadFileConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
output = "json"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".bigadd") {
		t.Errorf("DefaultConfigPath() = %v, should contain .bigadd", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
