// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels for errors and the mapping from error
//              codes to their default severity. User program faults are low
//              severity; internal faults are high.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a fault in the user's program
	// Examples: a syntax error, an undeclared identifier, division by zero
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a rejected configuration value, an oversized input
	SeverityMedium

	// SeverityHigh indicates a serious error inside mPAS itself
	// Examples: an unhandled AST node kind, an inconsistent pipeline state
	SeverityHigh

	// SeverityCritical indicates an error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Internal faults
	case CodeInternal:
		return SeverityHigh

	// Configuration and input handling
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeInvalidInput, CodeTimeout:
		return SeverityMedium

	// Faults in the interpreted program
	case CodeInvalidCharacter, CodeUnterminatedComment, CodeInvalidSyntax,
		CodeDuplicateIdentifier, CodeUndeclaredIdentifier,
		CodeUndefinedVariable, CodeDivisionByZero:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
