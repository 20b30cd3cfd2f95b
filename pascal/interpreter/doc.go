// File: doc.go
// Title: Interpreter Package Documentation
// Description: Package documentation for the tree-walking evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial documentation

// Package interpreter implements tree-walking evaluation of analyzed
// programs.
//
// Values are dynamically typed at runtime: integer literals and
// integer-valued operations yield integers, real literals and the float
// division operator yield reals. Mixed-type arithmetic promotes to real.
// Integer division (DIV) floors toward negative infinity.
//
// The Engine executes one program per call and keeps no state between
// calls. Execution observes the passed context between statements and
// stops early on cancellation. Division by zero and reads of declared
// but never assigned variables are reported as runtime errors with
// structured codes.
package interpreter
