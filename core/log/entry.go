// File: entry.go
// Title: Log Entry and Fields
// Description: Defines the log entry structure and the Fields type used to
//              attach structured key-value data to log messages. Provides
//              convenience constructors for common field types.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Core log information
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Custom fields
	Fields Fields

	// Error information
	Error error

	// Performance metrics
	Duration time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a field holding an error
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a field holding a duration
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Int creates a field holding an int
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a field holding a string
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Merge combines this Fields map with another, the other taking precedence
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// With returns a copy of this Fields map with one additional entry
func (f Fields) With(key string, value interface{}) Fields {
	result := f.Clone()
	result[key] = value
	return result
}

// Clone returns a shallow copy of this Fields map
func (f Fields) Clone() Fields {
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry with the current timestamp
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
