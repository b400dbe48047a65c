// Package applog is the shared leveled logger for the GUI, the reader CLI
// and the library packages. One process-wide level, stderr output, no
// structured fields: log lines here are for operators reading a terminal.
package applog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level orders severities from chattiest to quietest.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

// ParseLevel maps a config string to a Level; ok is false for unknown
// names. "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

var currentLevel int32 = int32(LevelInfo)

var out = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLevel applies a level by name; unknown names leave the level as is.
func SetLevel(s string) {
	if l, ok := ParseLevel(s); ok {
		atomic.StoreInt32(&currentLevel, int32(l))
	}
}

// GetLevel reports the active level, for callers guarding expensive
// debug-only work.
func GetLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

func logf(l Level, format string, args ...interface{}) {
	if GetLevel() > l {
		return
	}
	// messages without args bypass Sprintf so a literal % survives
	if len(args) == 0 {
		out.Printf("[%s] %s", l, format)
		return
	}
	out.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack reports a phase duration at debug level; defer it with
// time.Now() at the top of the phase.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
