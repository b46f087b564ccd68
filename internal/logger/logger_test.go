package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, "info")

	log.Debug().Msg("hidden")
	log.Info().Str("session", "s1").Msg("loaded")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message logged at info level: %s", output)
	}
	if !strings.Contains(output, "loaded") || !strings.Contains(output, `"session":"s1"`) {
		t.Errorf("Expected output to contain the message and field, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]zerolog.Level{
		"debug":  zerolog.DebugLevel,
		" INFO ": zerolog.InfoLevel,
		"error":  zerolog.ErrorLevel,
		"off":    zerolog.Disabled,
		"":       zerolog.WarnLevel,
		"bogus":  zerolog.WarnLevel,
	}
	for in, want := range testCases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, "debug"))

	log := FromContext(ctx)
	log.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("default logger level = %v, want disabled", log.GetLevel())
	}
}
