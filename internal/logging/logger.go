package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Logger emits one JSON object per line. The zero field set is
// {ts, level, msg}; WithComponent adds a component field and Infow-style
// calls flatten their extra fields into the object.
type Logger struct {
	level     Level
	component string
	mu        *sync.Mutex
	out       io.Writer
}

func NewLogger(levelStr string) *Logger {
	return NewLoggerWithWriter(levelStr, os.Stderr)
}

func NewLoggerWithWriter(levelStr string, out io.Writer) *Logger {
	return &Logger{
		level: parseLevel(levelStr),
		mu:    &sync.Mutex{},
		out:   out,
	}
}

func (l *Logger) WithComponent(name string) *Logger {
	cp := *l
	cp.component = name
	return &cp
}

func (l *Logger) log(level Level, msg string, fields map[string]any) {
	if level < l.level {
		return
	}

	rec := make(map[string]any, len(fields)+4)
	rec["ts"] = time.Now().UTC().Format(time.RFC3339)
	rec["level"] = level.String()
	rec["msg"] = msg
	if l.component != "" {
		rec["component"] = l.component
	}
	for k, v := range fields {
		rec[k] = v
	}

	data, err := json.Marshal(rec)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":%q,"msg":%q}`, level.String(), msg))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Best effort; a failed sink write must not take down generation.
	_, _ = l.out.Write(append(data, '\n'))
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, fmt.Sprintf(format, args...), nil) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, fmt.Sprintf(format, args...), nil) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, fmt.Sprintf(format, args...), nil) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, fmt.Sprintf(format, args...), nil) }

func (l *Logger) Debugw(msg string, fields map[string]any) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Infow(msg string, fields map[string]any)  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warnw(msg string, fields map[string]any)  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Errorw(msg string, fields map[string]any) { l.log(LevelError, msg, fields) }
