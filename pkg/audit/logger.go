package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/frrlint/frrlint/pkg/util"
)

// Logger defines the interface for history backends
type Logger interface {
	Log(event *Event) error
	Query(filter Filter) ([]*Event, error)
	Close() error
}

// FileLogger appends run events to a JSON-lines file
type FileLogger struct {
	path     string
	file     *os.File
	encoder  *json.Encoder
	mu       sync.RWMutex
	rotation RotationConfig
}

// RotationConfig configures history file rotation
type RotationConfig struct {
	MaxSize    int64 // Max file size in bytes before rotation
	MaxBackups int   // Max number of old files to retain
}

// DefaultPath returns the default history file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "frrlint_history.jsonl"
	}
	return filepath.Join(home, ".frrlint", "history.jsonl")
}

// NewFileLogger creates a file-based history logger
func NewFileLogger(path string, rotation RotationConfig) (*FileLogger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening history file: %w", err)
	}

	return &FileLogger{
		path:     path,
		file:     file,
		encoder:  json.NewEncoder(file),
		rotation: rotation,
	}, nil
}

// Log writes a run event to the history file
func (l *FileLogger) Log(event *Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rotation.MaxSize > 0 {
		if info, err := l.file.Stat(); err == nil {
			if info.Size() >= l.rotation.MaxSize {
				if err := l.rotate(); err != nil {
					return fmt.Errorf("rotating history file: %w", err)
				}
			}
		}
	}

	return l.encoder.Encode(event)
}

// Query returns recorded runs matching the filter, oldest first
func (l *FileLogger) Query(filter Filter) ([]*Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Event{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var events []*Event
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			util.Warnf("history: skipping malformed entry at line %d: %v", lineNum, err)
			continue
		}

		if matchesFilter(&event, filter) {
			events = append(events, &event)
		}
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(events) {
			events = nil
		} else {
			events = events[filter.Offset:]
		}
	}
	if filter.Limit > 0 && filter.Limit < len(events) {
		events = events[len(events)-filter.Limit:]
	}

	return events, scanner.Err()
}

// Close closes the history file
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func matchesFilter(event *Event, filter Filter) bool {
	if filter.Command != "" && event.Command != filter.Command {
		return false
	}
	if !filter.StartTime.IsZero() && event.Timestamp.Before(filter.StartTime) {
		return false
	}
	if !filter.EndTime.IsZero() && event.Timestamp.After(filter.EndTime) {
		return false
	}
	if filter.FailuresOnly && event.Passed {
		return false
	}
	return true
}

func (l *FileLogger) rotate() error {
	if err := l.file.Close(); err != nil {
		return err
	}

	// Shift old backups up, dropping the oldest
	for i := l.rotation.MaxBackups - 1; i >= 1; i-- {
		older := fmt.Sprintf("%s.%d", l.path, i)
		newer := fmt.Sprintf("%s.%d", l.path, i+1)
		if _, err := os.Stat(older); err == nil {
			os.Rename(older, newer)
		}
	}
	if l.rotation.MaxBackups > 0 {
		os.Rename(l.path, l.path+".1")
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	l.file = file
	l.encoder = json.NewEncoder(file)
	return nil
}

// Record appends a run event to the history file at path, creating it
// if needed. Failures are logged but never fail the run.
func Record(path string, event *Event) {
	if path == "" {
		path = DefaultPath()
	}
	logger, err := NewFileLogger(path, RotationConfig{})
	if err != nil {
		util.Warnf("history: %v", err)
		return
	}
	defer logger.Close()

	if err := logger.Log(event); err != nil {
		util.Warnf("history: recording run: %v", err)
	}
}

// Query reads run events from the history file at path.
func Query(path string, filter Filter) ([]*Event, error) {
	if path == "" {
		path = DefaultPath()
	}
	logger, err := NewFileLogger(path, RotationConfig{})
	if err != nil {
		return nil, err
	}
	defer logger.Close()

	return logger.Query(filter)
}
