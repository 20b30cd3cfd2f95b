// File: nodes.go
// Title: Pascal AST Node Definitions
// Description: Defines all AST node types for representing Pascal programs:
//              program/block structure, declarations, statements, and
//              expressions, with source positions and string renderings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-like string representation of the node
	String() string

	// Position returns the source position of the node's leading token
	Position() Position
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Decl represents the base interface for all declarations
type Decl interface {
	Node
	declNode() // marker method
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Operator represents an arithmetic operator in an expression node
type Operator string

const (
	OpAdd      Operator = "+"
	OpSub      Operator = "-"
	OpMul      Operator = "*"
	OpIntDiv   Operator = "DIV"
	OpFloatDiv Operator = "/"
)

// Program represents a complete Pascal program (PROGRAM name; block.)
type Program struct {
	Name  string // Program name, uppercased
	Block *Block // Program body
	Pos   Position
}

// Block represents declarations followed by a compound statement
type Block struct {
	Declarations []Decl    // VAR and PROCEDURE declarations, in source order
	Compound     *Compound // The BEGIN...END body
	Pos          Position
}

// VarDecl represents a single variable declaration (one per identifier)
type VarDecl struct {
	VarName  string // Variable name, uppercased
	TypeName string // Type name (INTEGER or REAL)
	Pos      Position
}

// ProcedureDecl represents a procedure declaration with its nested block
type ProcedureDecl struct {
	Name  string // Procedure name, uppercased
	Block *Block // Procedure body, parsed but never executed
	Pos   Position
}

// Compound represents a BEGIN...END statement sequence
type Compound struct {
	Statements []Stmt
	Pos        Position
}

// Assign represents an assignment statement (variable := expression)
type Assign struct {
	Target *Var // Assignment target
	Value  Expr // Assigned expression
	Pos    Position
}

// Var represents a variable reference in an expression
type Var struct {
	Name string // Variable name, uppercased
	Pos  Position
}

// NoOp represents an empty statement
type NoOp struct {
	Pos Position
}

// BinOp represents a binary arithmetic expression
type BinOp struct {
	Left  Expr     // Left operand
	Op    Operator // One of + - * DIV /
	Right Expr     // Right operand
	Pos   Position
}

// UnaryOp represents a unary sign expression
type UnaryOp struct {
	Op      Operator // One of + -
	Operand Expr
	Pos     Position
}

// Num represents an integer or real literal
type Num struct {
	Raw    string  // Original lexeme
	IsReal bool    // True for REAL_CONST literals
	Int    int64   // Value for integer literals
	Real   float64 // Value for real literals
	Pos    Position
}

// Node interface implementations

func (p *Program) String() string {
	return fmt.Sprintf("PROGRAM %s; %s.", p.Name, p.Block.String())
}

func (p *Program) Position() Position {
	return p.Pos
}

func (b *Block) String() string {
	var parts []string
	for _, decl := range b.Declarations {
		parts = append(parts, decl.String())
	}
	parts = append(parts, b.Compound.String())
	return strings.Join(parts, " ")
}

func (b *Block) Position() Position {
	return b.Pos
}

func (v *VarDecl) String() string {
	return fmt.Sprintf("VAR %s : %s;", v.VarName, v.TypeName)
}

func (v *VarDecl) Position() Position {
	return v.Pos
}

func (v *VarDecl) declNode() {}

func (p *ProcedureDecl) String() string {
	return fmt.Sprintf("PROCEDURE %s; %s;", p.Name, p.Block.String())
}

func (p *ProcedureDecl) Position() Position {
	return p.Pos
}

func (p *ProcedureDecl) declNode() {}

func (c *Compound) String() string {
	var stmts []string
	for _, stmt := range c.Statements {
		if s := stmt.String(); s != "" {
			stmts = append(stmts, s)
		}
	}
	return fmt.Sprintf("BEGIN %s END", strings.Join(stmts, "; "))
}

func (c *Compound) Position() Position {
	return c.Pos
}

func (c *Compound) stmtNode() {}

func (a *Assign) String() string {
	return fmt.Sprintf("%s := %s", a.Target.String(), a.Value.String())
}

func (a *Assign) Position() Position {
	return a.Pos
}

func (a *Assign) stmtNode() {}

func (v *Var) String() string {
	return v.Name
}

func (v *Var) Position() Position {
	return v.Pos
}

func (v *Var) exprNode() {}

func (n *NoOp) String() string {
	return ""
}

func (n *NoOp) Position() Position {
	return n.Pos
}

func (n *NoOp) stmtNode() {}

func (b *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (b *BinOp) Position() Position {
	return b.Pos
}

func (b *BinOp) exprNode() {}

func (u *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", u.Op, u.Operand.String())
}

func (u *UnaryOp) Position() Position {
	return u.Pos
}

func (u *UnaryOp) exprNode() {}

func (n *Num) String() string {
	return n.Raw
}

func (n *Num) Position() Position {
	return n.Pos
}

func (n *Num) exprNode() {}
