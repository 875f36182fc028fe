// File: miniconf/log.go
package miniconf

import (
	"fmt"
	"strings"
)

// LogLevel orders diagnostic severities. LogNone is above every severity and
// suppresses parse aborts entirely.
type LogLevel int

const (
	LogInfo LogLevel = iota
	LogWarning
	LogError
	LogNone
)

// String returns the display name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogInfo:
		return "INFO"
	case LogWarning:
		return "WARNING"
	case LogError:
		return "ERROR"
	default:
		return "NONE"
	}
}

// LogEntry is one diagnostic record produced during format checking, parsing
// or validation. Entries accumulate in order for the life of the Config and
// are never dropped.
type LogEntry struct {
	Level   LogLevel
	Flag    string
	Message string
}

// String renders the entry as a single log line.
func (e LogEntry) String() string {
	if e.Flag == "" {
		return fmt.Sprintf("[%s] %s", e.Level, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Level, e.Flag, e.Message)
}

// logf appends a diagnostic entry. Callers must hold the mutex.
func (c *Config) logf(level LogLevel, flag, format string, args ...any) {
	c.entries = append(c.entries, LogEntry{
		Level:   level,
		Flag:    flag,
		Message: fmt.Sprintf(format, args...),
	})
}

// Log returns a copy of all accumulated diagnostic entries in order.
func (c *Config) Log() []LogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]LogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// LogString renders the accumulated entries at or above the configured log
// level, one per line.
func (c *Config) LogString() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	for _, e := range c.entries {
		if e.Level < c.logLevel {
			continue
		}
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
