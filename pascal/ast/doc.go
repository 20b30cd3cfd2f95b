// File: doc.go
// Title: Pascal AST Package Documentation
// Description: Documents the abstract syntax tree node types produced by the
//              mPAS parser and consumed by the semantic analyzer and the
//              interpreter.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial AST node definitions

/*
Package ast defines the abstract syntax tree for the mPAS Pascal subset.

The node vocabulary is closed: declarations (VarDecl, ProcedureDecl),
statements (Compound, Assign, NoOp), and expressions (BinOp, UnaryOp, Num,
Var), rooted in Program/Block. Marker interfaces (Decl, Stmt, Expr) keep the
sets distinct so that every pass over the tree is an exhaustive type switch.

A tree is built exactly once by the parser and never mutated afterward; the
semantic analyzer and the interpreter only read it. Each node carries the
source position of its leading token for diagnostics. Walk and Dump provide
generic traversal and a printable tree rendering.
*/
package ast
