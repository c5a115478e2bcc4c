// Package audit records analysis and validation runs to a local
// JSON-lines history file.
package audit

import (
	"fmt"
	"time"
)

// Event represents one recorded run
type Event struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Command   string        `json:"command"` // analyze or validate
	Files     []string      `json:"files"`
	Errors    int           `json:"errors"`
	Warnings  int           `json:"warnings"`
	Passed    bool          `json:"passed"`
	Duration  time.Duration `json:"duration"`
}

// Filter defines criteria for querying recorded runs
type Filter struct {
	Command      string
	StartTime    time.Time
	EndTime      time.Time
	FailuresOnly bool
	Limit        int
	Offset       int
}

// NewEvent creates a run event for a command over the given files
func NewEvent(command string, files ...string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		Command:   command,
		Files:     files,
		Passed:    true,
	}
}

// WithCounts sets the finding counts; a run with errors is not passed
func (e *Event) WithCounts(errors, warnings int) *Event {
	e.Errors = errors
	e.Warnings = warnings
	e.Passed = errors == 0
	return e
}

// WithDuration sets the run duration
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
