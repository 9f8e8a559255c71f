// Package log provides structured event logging.
// This file appends JSON events to log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event type constants.
const (
	EventCatalogListed      = "catalog_listed"
	EventPromptViewed       = "prompt_viewed"
	EventPromptNotFound     = "prompt_not_found"
	EventPromptCreated      = "prompt_created"
	EventPromptOverwritten  = "prompt_overwritten"
	EventPromptCancelled    = "prompt_create_cancelled"
	EventPromptCreateFailed = "prompt_create_failed"
)

// LogFileName is the name of the event log inside the log directory.
const LogFileName = "log.jsonl"

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time       time.Time `json:"time"`
	Event      string    `json:"event"`
	Invocation string    `json:"invocation,omitempty"`
	Tool       string    `json:"tool,omitempty"`
	Root       string    `json:"root,omitempty"`
	Number     int       `json:"number,omitempty"`
	Path       string    `json:"path,omitempty"`
	Category   string    `json:"category,omitempty"`
	Prompts    int       `json:"prompts,omitempty"`
	Mode       string    `json:"mode,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Logger writes append-only JSONL events to a log file. Every event written
// through one Logger carries the same invocation ID and tool name.
type Logger struct {
	path       string
	tool       string
	invocation string
	mu         sync.Mutex
}

// NewLogger creates a Logger that writes to log.jsonl inside dir.
// Creates dir if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir, tool string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return &Logger{
		path:       filepath.Join(dir, LogFileName),
		tool:       tool,
		invocation: uuid.NewString(),
	}, nil
}

// Invocation returns the ID stamped on this Logger's events.
func (l *Logger) Invocation() string {
	return l.invocation
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// Invocation and Tool are filled from the Logger when empty.
// A nil Logger discards the event.
func (l *Logger) Append(event LogEvent) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}
	if event.Invocation == "" {
		event.Invocation = l.invocation
	}
	if event.Tool == "" {
		event.Tool = l.tool
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}
