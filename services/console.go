package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// Console is the diagnostic log sink written on successful submissions
type Console interface {
	Log(args ...any)
}

// LogConsole writes console entries through a standard logger
type LogConsole struct {
	logger *log.Logger
}

// NewLogConsole creates a console backed by logger, or the standard logger when nil
func NewLogConsole(logger *log.Logger) *LogConsole {
	if logger == nil {
		logger = log.Default()
	}
	return &LogConsole{logger: logger}
}

// Log writes one entry
func (c *LogConsole) Log(args ...any) {
	c.logger.Println(args...)
}

// MemoryConsole keeps console entries in memory
type MemoryConsole struct {
	mu      sync.Mutex
	entries []string
}

// NewMemoryConsole creates an empty memory console
func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

// Log records one entry, formatted like fmt.Println without the newline
func (c *MemoryConsole) Log(args ...any) {
	entry := strings.TrimSuffix(fmt.Sprintln(args...), "\n")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

// Entries returns a copy of the recorded entries
func (c *MemoryConsole) Entries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.entries...)
}
