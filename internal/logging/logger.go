package logging

import (
	"io"
	"log"
	"strings"
)

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name case-insensitively. Unknown names map to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled wrapper over the standard log package. It satisfies
// alchemy.Logger.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to the standard logger's output.
func New(level string) *Logger {
	return &Logger{level: ParseLevel(level), out: log.Default()}
}

// NewWithWriter creates a logger writing to w without timestamps.
func NewWithWriter(level string, w io.Writer) *Logger {
	return &Logger{level: ParseLevel(level), out: log.New(w, "", 0)}
}

func (l *Logger) enabled(level Level) bool {
	return level >= l.level
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...any) {
	if l.enabled(LevelDebug) {
		l.out.Printf("[DEBUG] "+format, v...)
	}
}

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...any) {
	if l.enabled(LevelInfo) {
		l.out.Printf("[INFO] "+format, v...)
	}
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, v ...any) {
	if l.enabled(LevelWarn) {
		l.out.Printf("[WARN] "+format, v...)
	}
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, v ...any) {
	if l.enabled(LevelError) {
		l.out.Printf("[ERROR] "+format, v...)
	}
}

// Fatalf logs and exits.
func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Fatalf("[FATAL] "+format, v...)
}
