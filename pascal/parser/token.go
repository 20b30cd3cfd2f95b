// File: token.go
// Title: Token Definitions
// Description: Defines token types and the token structure produced by
//              the lexer, including the reserved keyword table.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial token definitions

package parser

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals and identifiers
	TokenIntegerConst // 42
	TokenRealConst    // 3.14
	TokenID           // variable or program name

	// Keywords
	TokenProgram   // PROGRAM
	TokenProcedure // PROCEDURE
	TokenVar       // VAR
	TokenBegin     // BEGIN
	TokenEnd       // END
	TokenInteger   // INTEGER type name
	TokenReal      // REAL type name
	TokenIntDiv    // DIV

	// Operators
	TokenAssign   // :=
	TokenPlus     // +
	TokenMinus    // -
	TokenMul      // *
	TokenFloatDiv // /

	// Delimiters
	TokenLParen // (
	TokenRParen // )
	TokenSemi   // ;
	TokenColon  // :
	TokenComma  // ,
	TokenDot    // .
)

// tokenNames maps token types to readable names for error messages
var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenIntegerConst: "INTEGER_CONST",
	TokenRealConst:    "REAL_CONST",
	TokenID:           "ID",
	TokenProgram:      "PROGRAM",
	TokenProcedure:    "PROCEDURE",
	TokenVar:          "VAR",
	TokenBegin:        "BEGIN",
	TokenEnd:          "END",
	TokenInteger:      "INTEGER",
	TokenReal:         "REAL",
	TokenIntDiv:       "DIV",
	TokenAssign:       ":=",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenMul:          "*",
	TokenFloatDiv:     "/",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenSemi:         ";",
	TokenColon:        ":",
	TokenComma:        ",",
	TokenDot:          ".",
}

// String returns the readable name of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps upper-cased identifiers to their keyword token types
var keywords = map[string]TokenType{
	"PROGRAM":   TokenProgram,
	"PROCEDURE": TokenProcedure,
	"VAR":       TokenVar,
	"BEGIN":     TokenBegin,
	"END":       TokenEnd,
	"INTEGER":   TokenInteger,
	"REAL":      TokenReal,
	"DIV":       TokenIntDiv,
}

// lookupIdent returns the keyword token type for an upper-cased
// identifier, or TokenID if it is not a reserved word
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenID
}

// Token represents a single lexical token with its source position
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token value (normalized for identifiers)
	Position int       // Byte offset in the input (0-based)
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d:%d)", t.Type, t.Value, t.Line, t.Column)
}
