package clilog

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitAndLogDoesNotPanic(t *testing.T) {
	Init(Options{Level: "debug", NoColor: true, Source: true})
	Debug("debug message", "k", "v")
	Info("info message")
	Warn("warn message")
	Error("error message")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("Debug"))
	require.Equal(t, slog.LevelWarn, parseLevel(" warn "))
	require.Equal(t, slog.LevelError, parseLevel("ERROR"))
	require.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestLogLazyInit(t *testing.T) {
	log = nil
	once = sync.Once{}
	if got := Log(); got == nil {
		t.Fatal("expected a non-nil logger")
	}
}
