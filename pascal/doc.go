// File: doc.go
// Title: Pascal Package Documentation
// Description: Package documentation for the top-level mPAS engine.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial documentation

// Package pascal provides the high-level interface to the mPAS
// interpreter pipeline.
//
// The Engine chains the four stages of a run: lexing, recursive descent
// parsing, semantic analysis, and tree-walking evaluation. The first
// failing stage aborts the whole run; there is no error recovery.
//
// Basic usage:
//
//	engine := pascal.NewEngine()
//	result, err := engine.Run(ctx, source)
//	if err != nil {
//		// structured error with code and source position details
//	}
//	for name, value := range result.Globals {
//		fmt.Println(name, "=", value)
//	}
//
// Parse, Check, and Tokenize expose the earlier pipeline stages
// individually for tooling.
package pascal
