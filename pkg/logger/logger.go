package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
)

// Level is the log level type, aliased from charmbracelet/log so callers
// don't need to import both packages.
type Level = charm.Level

const (
	// TraceLevel sits below charm's debug level.
	TraceLevel Level = charm.DebugLevel - 1
	DebugLevel Level = charm.DebugLevel
	InfoLevel  Level = charm.InfoLevel
	WarnLevel  Level = charm.WarnLevel
	ErrorLevel Level = charm.ErrorLevel
	// OffLevel sits above every level charm emits, disabling all output.
	OffLevel Level = charm.FatalLevel + 1
)

// Logger wraps a charmbracelet logger with trace and off levels.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charmbracelet logger.
func NewLogger(l *charm.Logger) *Logger {
	return &Logger{Logger: l}
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Logger.Log(TraceLevel, msg, keyvals...)
}

// ParseLogLevel converts the level name used in flags and environment
// variables into a Level. An empty string selects Info.
func ParseLogLevel(logLevel string) (Level, error) {
	switch strings.ToLower(logLevel) {
	case "":
		return InfoLevel, nil
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarnLevel, nil
	case "off":
		return OffLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", logLevel)
	}
}

// OpenLogFile resolves a logs-file setting into a writer. The standard file
// descriptors '/dev/stdout', '/dev/stderr' and '/dev/null' map to the
// corresponding streams; anything else is opened for appending and created if
// missing. The returned file stays open for the life of the process.
func OpenLogFile(file string) (io.Writer, error) {
	switch file {
	case "/dev/stdout":
		return os.Stdout, nil
	case "/dev/stderr":
		return os.Stderr, nil
	case "/dev/null":
		return io.Discard, nil
	default:
		return os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	}
}
