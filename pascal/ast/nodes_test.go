// File: nodes_test.go
// Title: AST Node Tests
// Description: Tests for AST node string rendering, position access,
//              traversal, and tree dumping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial tests

package ast

import (
	"strings"
	"testing"
)

// buildSampleProgram returns an AST equivalent to
// PROGRAM DEMO; VAR A : INTEGER; BEGIN A := 2 + 3 END.
func buildSampleProgram() *Program {
	return &Program{
		Name: "DEMO",
		Pos:  Position{Line: 1, Column: 1},
		Block: &Block{
			Pos: Position{Line: 2, Column: 1},
			Declarations: []Decl{
				&VarDecl{VarName: "A", TypeName: "INTEGER", Pos: Position{Line: 2, Column: 5}},
			},
			Compound: &Compound{
				Pos: Position{Line: 3, Column: 1},
				Statements: []Stmt{
					&Assign{
						Target: &Var{Name: "A", Pos: Position{Line: 4, Column: 4}},
						Value: &BinOp{
							Left:  &Num{Raw: "2", Int: 2, Pos: Position{Line: 4, Column: 9}},
							Op:    OpAdd,
							Right: &Num{Raw: "3", Int: 3, Pos: Position{Line: 4, Column: 13}},
							Pos:   Position{Line: 4, Column: 9},
						},
						Pos: Position{Line: 4, Column: 4},
					},
					&NoOp{Pos: Position{Line: 5, Column: 1}},
				},
			},
		},
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "variable declaration",
			node: &VarDecl{VarName: "X", TypeName: "REAL"},
			want: "VAR X : REAL;",
		},
		{
			name: "binary expression",
			node: &BinOp{
				Left:  &Num{Raw: "2", Int: 2},
				Op:    OpMul,
				Right: &Num{Raw: "7", Int: 7},
			},
			want: "(2 * 7)",
		},
		{
			name: "nested binary with integer division",
			node: &BinOp{
				Left: &BinOp{
					Left:  &Num{Raw: "10", Int: 10},
					Op:    OpIntDiv,
					Right: &Num{Raw: "3", Int: 3},
				},
				Op:    OpAdd,
				Right: &Num{Raw: "1", Int: 1},
			},
			want: "((10 DIV 3) + 1)",
		},
		{
			name: "unary minus",
			node: &UnaryOp{Op: OpSub, Operand: &Num{Raw: "5", Int: 5}},
			want: "(- 5)",
		},
		{
			name: "assignment",
			node: &Assign{
				Target: &Var{Name: "A"},
				Value:  &Num{Raw: "3.5", IsReal: true, Real: 3.5},
			},
			want: "A := 3.5",
		},
		{
			name: "empty statement renders empty",
			node: &NoOp{},
			want: "",
		},
		{
			name: "compound skips empty statements",
			node: &Compound{
				Statements: []Stmt{
					&Assign{Target: &Var{Name: "B"}, Value: &Num{Raw: "1", Int: 1}},
					&NoOp{},
				},
			},
			want: "BEGIN B := 1 END",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgramString(t *testing.T) {
	prog := buildSampleProgram()
	want := "PROGRAM DEMO; VAR A : INTEGER; BEGIN A := (2 + 3) END."
	if got := prog.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWalk(t *testing.T) {
	prog := buildSampleProgram()

	var visited []string
	Walk(prog, func(n Node) bool {
		switch node := n.(type) {
		case *Program:
			visited = append(visited, "Program")
		case *Block:
			visited = append(visited, "Block")
		case *VarDecl:
			visited = append(visited, "VarDecl:"+node.VarName)
		case *Compound:
			visited = append(visited, "Compound")
		case *Assign:
			visited = append(visited, "Assign")
		case *Var:
			visited = append(visited, "Var:"+node.Name)
		case *BinOp:
			visited = append(visited, "BinOp")
		case *Num:
			visited = append(visited, "Num:"+node.Raw)
		case *NoOp:
			visited = append(visited, "NoOp")
		}
		return true
	})

	want := []string{
		"Program", "Block", "VarDecl:A", "Compound",
		"Assign", "Var:A", "BinOp", "Num:2", "Num:3", "NoOp",
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(visited), len(want), visited)
	}
	for i, w := range want {
		if visited[i] != w {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], w)
		}
	}
}

func TestWalkPrune(t *testing.T) {
	prog := buildSampleProgram()

	count := 0
	Walk(prog, func(n Node) bool {
		count++
		// do not descend into expressions
		if _, ok := n.(*Assign); ok {
			return false
		}
		return true
	})

	// Program, Block, VarDecl, Compound, Assign, NoOp
	if count != 6 {
		t.Errorf("visited %d nodes with pruning, want 6", count)
	}
}

func TestDump(t *testing.T) {
	prog := buildSampleProgram()
	out := Dump(prog)

	for _, want := range []string{
		"Program DEMO [1:1]",
		"VarDecl A : INTEGER [2:5]",
		"BinOp + [4:9]",
		"Num 2 [4:9]",
		"NoOp [5:1]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q in:\n%s", want, out)
		}
	}

	// child nodes must be indented deeper than their parents
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "Program") {
		t.Errorf("first line = %q, want Program at root", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  Block") {
		t.Errorf("second line = %q, want indented Block", lines[1])
	}
}
