// File: walk.go
// Title: AST Traversal and Rendering
// Description: Provides generic pre-order traversal over AST nodes and an
//              indented tree rendering for diagnostics and tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial traversal implementation

package ast

import (
	"fmt"
	"strings"
)

// Walk traverses the tree rooted at n in pre-order, calling fn for each
// node. If fn returns false, the node's children are not visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch node := n.(type) {
	case *Program:
		Walk(node.Block, fn)
	case *Block:
		for _, decl := range node.Declarations {
			Walk(decl, fn)
		}
		Walk(node.Compound, fn)
	case *ProcedureDecl:
		Walk(node.Block, fn)
	case *Compound:
		for _, stmt := range node.Statements {
			Walk(stmt, fn)
		}
	case *Assign:
		Walk(node.Target, fn)
		Walk(node.Value, fn)
	case *BinOp:
		Walk(node.Left, fn)
		Walk(node.Right, fn)
	case *UnaryOp:
		Walk(node.Operand, fn)
	case *VarDecl, *Var, *Num, *NoOp:
		// leaf nodes
	}
}

// Dump returns an indented multi-line rendering of the tree rooted at n,
// one node per line with type and position information.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	pos := n.Position()

	switch node := n.(type) {
	case *Program:
		fmt.Fprintf(sb, "%sProgram %s [%d:%d]\n", indent, node.Name, pos.Line, pos.Column)
		dump(sb, node.Block, depth+1)
	case *Block:
		fmt.Fprintf(sb, "%sBlock [%d:%d]\n", indent, pos.Line, pos.Column)
		for _, decl := range node.Declarations {
			dump(sb, decl, depth+1)
		}
		dump(sb, node.Compound, depth+1)
	case *VarDecl:
		fmt.Fprintf(sb, "%sVarDecl %s : %s [%d:%d]\n", indent, node.VarName, node.TypeName, pos.Line, pos.Column)
	case *ProcedureDecl:
		fmt.Fprintf(sb, "%sProcedureDecl %s [%d:%d]\n", indent, node.Name, pos.Line, pos.Column)
		dump(sb, node.Block, depth+1)
	case *Compound:
		fmt.Fprintf(sb, "%sCompound [%d:%d]\n", indent, pos.Line, pos.Column)
		for _, stmt := range node.Statements {
			dump(sb, stmt, depth+1)
		}
	case *Assign:
		fmt.Fprintf(sb, "%sAssign [%d:%d]\n", indent, pos.Line, pos.Column)
		dump(sb, node.Target, depth+1)
		dump(sb, node.Value, depth+1)
	case *Var:
		fmt.Fprintf(sb, "%sVar %s [%d:%d]\n", indent, node.Name, pos.Line, pos.Column)
	case *NoOp:
		fmt.Fprintf(sb, "%sNoOp [%d:%d]\n", indent, pos.Line, pos.Column)
	case *BinOp:
		fmt.Fprintf(sb, "%sBinOp %s [%d:%d]\n", indent, node.Op, pos.Line, pos.Column)
		dump(sb, node.Left, depth+1)
		dump(sb, node.Right, depth+1)
	case *UnaryOp:
		fmt.Fprintf(sb, "%sUnaryOp %s [%d:%d]\n", indent, node.Op, pos.Line, pos.Column)
		dump(sb, node.Operand, depth+1)
	case *Num:
		fmt.Fprintf(sb, "%sNum %s [%d:%d]\n", indent, node.Raw, pos.Line, pos.Column)
	}
}
