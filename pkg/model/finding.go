package model

import "fmt"

// Severity indicates the importance of a validation finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation message. Findings accumulate during a
// run and are never deduplicated or mutated after creation.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"` // 0 when not tied to a source line
}

// String renders the finding with its line prefix when present.
func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("Line %d: %s", f.Line, f.Message)
	}
	return f.Message
}

// Errorf creates an error-severity finding.
func Errorf(line int, format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...), Line: line}
}

// Warningf creates a warning-severity finding.
func Warningf(line int, format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Line: line}
}
