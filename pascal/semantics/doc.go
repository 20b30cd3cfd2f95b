// File: doc.go
// Title: Semantics Package Documentation
// Description: Package documentation for symbol table construction and
//              semantic analysis.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial documentation

// Package semantics implements static analysis over the AST.
//
// The Analyzer walks a parsed program, builds a symbol table, and checks
// that every variable is declared before use and declared at most once.
// The symbol table is flat: all variables share the program-level scope,
// and the built-in type symbols INTEGER and REAL are predefined. Each
// call to Analyze starts from a fresh table, so an Analyzer can be
// reused across programs.
//
// Procedure declarations are recorded but their bodies are not checked;
// procedures are never invoked at runtime.
package semantics
