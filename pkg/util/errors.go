// Package util provides logging helpers and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across packages
var (
	ErrNotFound         = errors.New("file not found")
	ErrInvalidRules     = errors.New("invalid rules file")
	ErrValidationFailed = errors.New("validation failed")
)

// LoadError represents a configuration file that could not be read
type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return ErrNotFound
}

// NewLoadError creates a load error for a path
func NewLoadError(path, reason string) *LoadError {
	return &LoadError{Path: path, Reason: reason}
}

// RulesError represents one or more problems in a rules file
type RulesError struct {
	Path   string
	Errors []string
}

func (e *RulesError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("rules file %s: %s", e.Path, e.Errors[0])
	}
	return fmt.Sprintf("rules file %s:\n  - %s", e.Path, strings.Join(e.Errors, "\n  - "))
}

func (e *RulesError) Unwrap() error {
	return ErrInvalidRules
}

// RulesErrorBuilder accumulates rules file problems
type RulesErrorBuilder struct {
	path   string
	errors []string
}

// NewRulesErrorBuilder creates a builder for the given rules file path
func NewRulesErrorBuilder(path string) *RulesErrorBuilder {
	return &RulesErrorBuilder{path: path}
}

// Add adds an error message if condition is false
func (b *RulesErrorBuilder) Add(condition bool, message string) *RulesErrorBuilder {
	if !condition {
		b.errors = append(b.errors, message)
	}
	return b
}

// AddErrorf adds a formatted error message
func (b *RulesErrorBuilder) AddErrorf(format string, args ...interface{}) *RulesErrorBuilder {
	b.errors = append(b.errors, fmt.Sprintf(format, args...))
	return b
}

// HasErrors returns true if any errors were added
func (b *RulesErrorBuilder) HasErrors() bool {
	return len(b.errors) > 0
}

// Build returns the rules error or nil if no errors
func (b *RulesErrorBuilder) Build() error {
	if len(b.errors) == 0 {
		return nil
	}
	return &RulesError{Path: b.path, Errors: b.errors}
}
