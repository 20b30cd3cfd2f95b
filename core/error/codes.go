// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across mPAS. One code exists per failure kind
//              of the interpreter pipeline, plus generic codes for
//              configuration and internal faults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation with pipeline error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for mPAS
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Lexical analysis
	CodeInvalidCharacter    Code = "INVALID_CHARACTER"
	CodeUnterminatedComment Code = "UNTERMINATED_COMMENT"

	// Parsing
	CodeInvalidSyntax Code = "INVALID_SYNTAX"

	// Semantic analysis
	CodeDuplicateIdentifier  Code = "DUPLICATE_IDENTIFIER"
	CodeUndeclaredIdentifier Code = "UNDECLARED_IDENTIFIER"

	// Evaluation
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
	CodeDivisionByZero    Code = "DIVISION_BY_ZERO"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeTimeout,
		CodeInvalidCharacter, CodeUnterminatedComment,
		CodeInvalidSyntax,
		CodeDuplicateIdentifier, CodeUndeclaredIdentifier,
		CodeUndefinedVariable, CodeDivisionByZero,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidCharacter, CodeUnterminatedComment:
		return "lexical"
	case CodeInvalidSyntax:
		return "syntax"
	case CodeDuplicateIdentifier, CodeUndeclaredIdentifier:
		return "semantic"
	case CodeUndefinedVariable, CodeDivisionByZero:
		return "runtime"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
