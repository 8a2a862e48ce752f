package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BIGADD_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("BIGADD_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("output", os.Getenv("BIGADD_OUTPUT"), &cfg.Output)
	s.setString("metrics-addr", os.Getenv("BIGADD_METRICS_ADDR"), &cfg.MetricsAddr)

	if err := s.setBoolFromString("canonical", os.Getenv("BIGADD_CANONICAL"), &cfg.Canonical); err != nil {
		return err
	}
	return s.setDuration("debounce", os.Getenv("BIGADD_DEBOUNCE_DELAY"), &cfg.DebounceDelay)
}
