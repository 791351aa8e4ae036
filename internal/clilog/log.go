// Package clilog owns the unichar CLI's diagnostic output: a single
// slog.Logger backed by tint, with colour and source-location behavior
// driven directly by the cobra flags cmd/unichar registers on the root
// command (see Options).
package clilog

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

var (
	log  *slog.Logger
	once sync.Once
)

const timeFormat = "15:04:05.000"

// Options mirrors the root command's persistent flags (--log-level,
// --no-color, --log-source) so cmd/unichar can hand its parsed flag values
// straight to Init without an intermediate translation layer.
type Options struct {
	Level   string // debug|info|warn|error, case-insensitive
	NoColor bool   // force-disable ANSI colour regardless of terminal detection
	Source  bool   // include file:line in each record; forced on at debug level
}

// Init configures the global logger from opts. Called once from the root
// command's PersistentPreRun, before any subcommand runs.
func Init(opts Options) {
	lvl := parseLevel(opts.Level)
	log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		AddSource:  opts.Source || lvl == slog.LevelDebug,
		Level:      lvl,
		NoColor:    opts.NoColor || !stderrIsColorTerminal(),
		TimeFormat: timeFormat,
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func stderrIsColorTerminal() bool {
	fd := os.Stderr.Fd()
	if fd > uintptr(^uint(0)>>1) {
		return false
	}
	return term.IsTerminal(int(fd))
}

// ensure lazily applies the default options for callers (and tests) that
// never go through Init, such as pkg/transcode consumers embedding unichar
// as a library rather than running the CLI.
func ensure() {
	once.Do(func() {
		if log == nil {
			Init(Options{Level: "info"})
		}
	})
}

// Log returns the global logger, initialising it with default options on
// first use if Init was never called.
func Log() *slog.Logger {
	ensure()
	return log
}

func Debug(msg string, args ...any) { Log().Debug(msg, args...) }
func Info(msg string, args ...any)  { Log().Info(msg, args...) }
func Warn(msg string, args ...any)  { Log().Warn(msg, args...) }
func Error(msg string, args ...any) { Log().Error(msg, args...) }
