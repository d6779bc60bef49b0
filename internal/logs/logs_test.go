package logs

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":    zapcore.DebugLevel,
		" WARN ":   zapcore.WarnLevel,
		"warning":  zapcore.WarnLevel,
		"error":    zapcore.ErrorLevel,
		"":         zapcore.InfoLevel,
		"nonsense": zapcore.InfoLevel,
	}
	for raw, want := range cases {
		if got := levelFromString(raw); got != want {
			t.Fatalf("levelFromString(%q)=%v, want %v", raw, got, want)
		}
	}
}

func TestBuild_DebugEnabled(t *testing.T) {
	l, err := Build("debug")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level enabled")
	}
}
