package cliconfig

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"BIGADD_CANONICAL":      "false",
				"BIGADD_LOG_LEVEL":      "debug",
				"BIGADD_OUTPUT":         "json",
				"BIGADD_METRICS_ADDR":   ":9100",
				"BIGADD_DEBOUNCE_DELAY": "2s",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Canonical:     false,
				LogLevel:      "debug",
				Output:        "json",
				MetricsAddr:   ":9100",
				DebounceDelay: 2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"BIGADD_OUTPUT":    "json",
				"BIGADD_LOG_LEVEL": "error",
			},
			changed:  map[string]bool{"output": true},
			initial:  Config{Output: "text"},
			expected: Config{Output: "text", LogLevel: "error"},
		},
		{
			name:     "handles bool '1' as true",
			envVars:  map[string]string{"BIGADD_CANONICAL": "1"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{Canonical: true},
		},
		{
			name:    "returns error for invalid bool",
			envVars: map[string]string{"BIGADD_CANONICAL": "sometimes"},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"BIGADD_DEBOUNCE_DELAY": "not-a-duration"},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Precedence order: CLI > Env > File > defaults.
func TestConfigPrecedence(t *testing.T) {
	falseVal := false

	fileConf := FileConfig{
		Canonical: &falseVal,
		LogLevel:  "warn",
		Output:    "json",
	}

	t.Setenv("BIGADD_LOG_LEVEL", "debug")
	t.Setenv("BIGADD_OUTPUT", "json")

	// --output=text was passed on the command line.
	changed := map[string]bool{"output": true}
	cfg := DefaultConfig()
	cfg.Output = "text"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.Output != "text" {
		t.Errorf("Output = %v, want text (flag wins)", cfg.Output)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug (env beats file)", cfg.LogLevel)
	}
	if cfg.Canonical {
		t.Error("Canonical = true, want false (file beats default)")
	}
}
