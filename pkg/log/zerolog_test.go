package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Info("computed",
		String("sum", "100"),
		Int("operands", 2),
		Bool("canonical", true),
		Duration("took", 1500*time.Millisecond),
		Err(errors.New("boom")),
		Any("extra", []string{"a"}),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}

	if got["level"] != "info" {
		t.Errorf("level = %v, want info", got["level"])
	}
	if got["message"] != "computed" {
		t.Errorf("message = %v, want computed", got["message"])
	}
	if got["sum"] != "100" {
		t.Errorf("sum = %v, want 100", got["sum"])
	}
	if got["operands"] != float64(2) {
		t.Errorf("operands = %v, want 2", got["operands"])
	}
	if got["canonical"] != true {
		t.Errorf("canonical = %v, want true", got["canonical"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v, want boom", got["error"])
	}
}

func TestZerologAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	l.Warn("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("expected warn message, got %q", buf.String())
	}
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) should return NoopLogger")
	}
	z := NewZerologAdapterWithLogger(zerolog.Nop())
	if OrNoop(z) != Logger(z) {
		t.Error("OrNoop should return non-nil logger unchanged")
	}
}

func TestNewZerologAdapter_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(&buf, zerolog.InfoLevel)

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below info, got %q", buf.String())
	}

	l.Info("sum computed", Int("digits", 3))
	out := buf.String()
	for _, want := range []string{"INF", "sum computed", "digits=3"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestZerologAdapter_LoggerSharesLevelAndWriter(t *testing.T) {
	var buf bytes.Buffer
	zl := NewZerologAdapter(&buf, zerolog.WarnLevel).Logger()

	if got := zl.GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("GetLevel() = %v, want %v", got, zerolog.WarnLevel)
	}

	zl.Info().Msg("hidden")
	zl.Error().Msg("boom")
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("info message leaked through warn level: %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("boom")) {
		t.Errorf("expected error message, got %q", buf.String())
	}
}
