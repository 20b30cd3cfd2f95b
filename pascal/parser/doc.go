// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the Pascal lexer and parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial documentation

// Package parser implements lexical analysis and recursive descent parsing
// for the mPAS Pascal subset.
//
// The Lexer converts source text into a stream of tokens with line and
// column information. Identifiers and keywords are case-insensitive and
// are normalized to upper case during lexing. Comments are enclosed in
// curly braces and may span multiple lines; they do not nest.
//
// The Parser consumes the token stream with a single token of lookahead
// and builds an ast.Program. Each grammar rule maps to one parse method.
// Operator precedence is encoded structurally: expr handles additive
// operators, term handles multiplicative operators, and factor handles
// literals, variables, unary signs, and parenthesized expressions.
//
// All errors carry structured codes and source positions:
//
//	lexer, err := parser.NewLexer(source)
//	p := parser.New(parser.Options{})
//	program, err := p.Parse(source)
package parser
