// File: doc.go
// Title: Core Error Package Documentation
// Description: Documents the structured error handling package used
//              throughout mPAS. Provides errors with codes, severities, and
//              contextual details while staying compatible with Go's standard
//              error interface.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

/*
Package error provides structured error handling for mPAS.

Every failure in the interpreter pipeline is reported as an *Error carrying
a Code that identifies the failure kind (lexical, syntactic, semantic, or
runtime), a Severity, and a details map holding the offending identifier,
character, or token together with its source position:

	return mpaserr.New("undeclared identifier").
		WithCode(mpaserr.CodeUndeclaredIdentifier).
		WithDetail("name", name).
		WithDetail("line", pos.Line)

Errors wrap causes and support errors.Is/errors.As through Unwrap. Callers
classify failures with HasCode and GetCode rather than string matching.
*/
package error
