// File: interpreter_test.go
// Title: Evaluator Tests
// Description: Tests for program execution, variable bindings, runtime
//              errors, context cancellation, and run isolation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial tests

package interpreter

import (
	"context"
	"testing"

	mpaserr "github.com/msto63/mPAS/core/error"
	"github.com/msto63/mPAS/pascal/ast"
	"github.com/msto63/mPAS/pascal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, err := parser.New(parser.Options{}).Parse(source)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return prog
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    map[string]Value
		wantErr mpaserr.Code
	}{
		{
			name: "simple bindings",
			source: `PROGRAM P;
VAR a, b : INTEGER;
BEGIN
  a := 10;
  b := 20
END.`,
			want: map[string]Value{"A": IntValue(10), "B": IntValue(20)},
		},
		{
			name: "operator precedence",
			source: `PROGRAM P;
VAR x : REAL;
BEGIN
  x := 14 + 2 * 3 - 6 / 2
END.`,
			want: map[string]Value{"X": RealValue(17.0)},
		},
		{
			name: "float division always real",
			source: `PROGRAM P;
VAR x : REAL;
BEGIN
  x := 6 / 2
END.`,
			want: map[string]Value{"X": RealValue(3.0)},
		},
		{
			name: "integer division floors",
			source: `PROGRAM P;
VAR a, b : INTEGER;
BEGIN
  a := 7 DIV 2;
  b := -7 DIV 2
END.`,
			want: map[string]Value{"A": IntValue(3), "B": IntValue(-4)},
		},
		{
			name: "unary sign chains",
			source: `PROGRAM P;
VAR a, b : INTEGER;
BEGIN
  a := - - 5;
  b := - + - 5
END.`,
			want: map[string]Value{"A": IntValue(5), "B": IntValue(5)},
		},
		{
			name: "variables reference earlier assignments",
			source: `PROGRAM P;
VAR a, b, c : INTEGER;
BEGIN
  a := 2;
  b := a * a;
  c := b - a
END.`,
			want: map[string]Value{"A": IntValue(2), "B": IntValue(4), "C": IntValue(2)},
		},
		{
			name: "reassignment overwrites",
			source: `PROGRAM P;
VAR a : INTEGER;
BEGIN
  a := 1;
  a := a + 1;
  a := a * 10
END.`,
			want: map[string]Value{"A": IntValue(20)},
		},
		{
			name: "mixed arithmetic promotes to real",
			source: `PROGRAM P;
VAR x : REAL;
BEGIN
  x := 3.5;
  x := x + 1
END.`,
			want: map[string]Value{"X": RealValue(4.5)},
		},
		{
			name: "declared but unassigned variables are absent",
			source: `PROGRAM P;
VAR a, unused : INTEGER;
BEGIN
  a := 1
END.`,
			want: map[string]Value{"A": IntValue(1)},
		},
		{
			name: "nested compounds share state",
			source: `PROGRAM P;
VAR a : INTEGER;
BEGIN
  BEGIN
    a := 1
  END;
  a := a + 1
END.`,
			want: map[string]Value{"A": IntValue(2)},
		},
		{
			name: "procedure declarations are not executed",
			source: `PROGRAM P;
VAR a : INTEGER;
PROCEDURE Q;
VAR k : INTEGER;
BEGIN
  k := 99
END;
BEGIN
  a := 1
END.`,
			want: map[string]Value{"A": IntValue(1)},
		},
		{
			name: "read of unassigned variable",
			source: `PROGRAM P;
VAR a, b : INTEGER;
BEGIN
  a := b + 1
END.`,
			wantErr: mpaserr.CodeUndefinedVariable,
		},
		{
			name: "integer division by zero",
			source: `PROGRAM P;
VAR a : INTEGER;
BEGIN
  a := 1 DIV 0
END.`,
			wantErr: mpaserr.CodeDivisionByZero,
		},
		{
			name: "float division by zero",
			source: `PROGRAM P;
VAR x : REAL;
BEGIN
  x := 1 / (2 - 2)
END.`,
			wantErr: mpaserr.CodeDivisionByZero,
		},
	}

	engine := NewEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Execute(context.Background(), mustParse(t, tt.source))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("Execute() expected error, got nil")
				}
				if !mpaserr.HasCode(err, tt.wantErr) {
					t.Errorf("error code = %s, want %s", mpaserr.GetCode(err), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if len(result.Globals) != len(tt.want) {
				t.Fatalf("got %d globals, want %d: %v", len(result.Globals), len(tt.want), result.Globals)
			}
			for name, want := range tt.want {
				got, ok := result.Globals[name]
				if !ok {
					t.Errorf("global %s missing", name)
					continue
				}
				if got != want {
					t.Errorf("global %s = %v (%s), want %v (%s)", name, got, got.Type, want, want.Type)
				}
			}
		})
	}
}

func TestExecuteNilProgram(t *testing.T) {
	_, err := NewEngine(nil).Execute(context.Background(), nil)
	if !mpaserr.HasCode(err, mpaserr.CodeInvalidInput) {
		t.Errorf("Execute(nil) error = %v, want %s", err, mpaserr.CodeInvalidInput)
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prog := mustParse(t, "PROGRAM P; VAR a : INTEGER; BEGIN a := 1 END.")
	_, err := NewEngine(nil).Execute(ctx, prog)
	if err == nil {
		t.Fatal("Execute() with cancelled context expected error, got nil")
	}
	if !mpaserr.HasCode(err, mpaserr.CodeTimeout) {
		t.Errorf("error code = %s, want %s", mpaserr.GetCode(err), mpaserr.CodeTimeout)
	}
}

func TestExecuteRunIsolation(t *testing.T) {
	engine := NewEngine(nil)

	first := mustParse(t, "PROGRAM One; VAR a : INTEGER; BEGIN a := 1 END.")
	if _, err := engine.Execute(context.Background(), first); err != nil {
		t.Fatalf("Execute(first) error = %v", err)
	}

	// the second program reads a variable the first program assigned;
	// state must not leak between runs
	second := mustParse(t, "PROGRAM Two; VAR a, b : INTEGER; BEGIN b := a END.")
	_, err := engine.Execute(context.Background(), second)
	if !mpaserr.HasCode(err, mpaserr.CodeUndefinedVariable) {
		t.Errorf("Execute(second) error = %v, want %s", err, mpaserr.CodeUndefinedVariable)
	}
}
