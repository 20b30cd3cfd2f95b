// File: pascal_test.go
// Title: Engine Tests
// Description: End-to-end tests for the full pipeline: lexing, parsing,
//              semantic analysis, and execution through the Engine API.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial tests

package pascal

import (
	"context"
	"testing"
	"time"

	mpaserr "github.com/msto63/mPAS/core/error"
	mpasinterp "github.com/msto63/mPAS/pascal/interpreter"
	mpasparser "github.com/msto63/mPAS/pascal/parser"
)

func TestEngineRun(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    map[string]mpasinterp.Value
		wantErr mpaserr.Code
	}{
		{
			name: "two integer bindings",
			source: `PROGRAM Part10AST;
VAR
  a, b : INTEGER;
BEGIN
  a := 10;
  b := 20
END.`,
			want: map[string]mpasinterp.Value{
				"A": mpasinterp.IntValue(10),
				"B": mpasinterp.IntValue(20),
			},
		},
		{
			name: "trailing semicolon before END",
			source: `PROGRAM Test;
VAR a, b : INTEGER;
BEGIN
  a := 10;
  b := a + 5 * 2;
END.`,
			want: map[string]mpasinterp.Value{
				"A": mpasinterp.IntValue(10),
				"B": mpasinterp.IntValue(20),
			},
		},
		{
			name: "leading comment and float division",
			source: `{ this is ignored } PROGRAM P;
VAR x : REAL;
BEGIN
  x := 7 / 2;
END.`,
			want: map[string]mpasinterp.Value{
				"X": mpasinterp.RealValue(3.5),
			},
		},
		{
			name: "real assignment with comment",
			source: `PROGRAM WithComment;
VAR x : REAL;
BEGIN
  { initialize x }
  x := 3.5
END.`,
			want: map[string]mpasinterp.Value{
				"X": mpasinterp.RealValue(3.5),
			},
		},
		{
			name: "precedence yields real seventeen",
			source: `PROGRAM Precedence;
VAR r : REAL;
BEGIN
  r := 14 + 2 * 3 - 6 / 2
END.`,
			want: map[string]mpasinterp.Value{
				"R": mpasinterp.RealValue(17.0),
			},
		},
		{
			name: "chained unary minus",
			source: `PROGRAM Signs;
VAR a : INTEGER;
BEGIN
  a := - - 5
END.`,
			want: map[string]mpasinterp.Value{
				"A": mpasinterp.IntValue(5),
			},
		},
		{
			name: "full lowercase program",
			source: `program lowercase;
var n : integer;
begin
  n := 6 div 4
end.`,
			want: map[string]mpasinterp.Value{
				"N": mpasinterp.IntValue(1),
			},
		},
		{
			name: "undeclared identifier aborts before execution",
			source: `PROGRAM Bad;
VAR a : INTEGER;
BEGIN
  a := 1;
  y := 2
END.`,
			wantErr: mpaserr.CodeUndeclaredIdentifier,
		},
		{
			name: "syntax error",
			source: `PROGRAM Bad;
BEGIN
  :=
END.`,
			wantErr: mpaserr.CodeInvalidSyntax,
		},
		{
			name:    "lexical error",
			source:  "PROGRAM Bad; BEGIN @ END.",
			wantErr: mpaserr.CodeInvalidCharacter,
		},
		{
			name:    "unterminated comment",
			source:  "PROGRAM Bad; { open BEGIN END.",
			wantErr: mpaserr.CodeUnterminatedComment,
		},
		{
			name: "division by zero at runtime",
			source: `PROGRAM Bad;
VAR a : INTEGER;
BEGIN
  a := 5 DIV (3 - 3)
END.`,
			wantErr: mpaserr.CodeDivisionByZero,
		},
		{
			name:    "empty source",
			source:  "",
			wantErr: mpaserr.CodeInvalidInput,
		},
		{
			name:    "blank source",
			source:  "   \n\t  ",
			wantErr: mpaserr.CodeInvalidInput,
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Run(context.Background(), tt.source)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("Run() expected error, got nil")
				}
				if !mpaserr.HasCode(err, tt.wantErr) {
					t.Errorf("error code = %s, want %s", mpaserr.GetCode(err), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if result.RunID == "" {
				t.Error("RunID is empty")
			}
			if len(result.Globals) != len(tt.want) {
				t.Fatalf("got %d globals, want %d: %v", len(result.Globals), len(tt.want), result.Globals)
			}
			for name, want := range tt.want {
				if got := result.Globals[name]; got != want {
					t.Errorf("global %s = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestEngineRunIDsUnique(t *testing.T) {
	engine := NewEngine()
	source := "PROGRAM P; VAR a : INTEGER; BEGIN a := 1 END."

	first, err := engine.Run(context.Background(), source)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := engine.Run(context.Background(), source)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if first.RunID == second.RunID {
		t.Errorf("both runs share RunID %s", first.RunID)
	}
}

func TestEngineCheck(t *testing.T) {
	engine := NewEngine()

	symbols, err := engine.Check(`PROGRAM P;
VAR count : INTEGER; ratio : REAL;
BEGIN
  count := 1;
  ratio := count / 2
END.`)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	vars := symbols.Variables()
	if len(vars) != 2 {
		t.Fatalf("got %d variables, want 2", len(vars))
	}
	if vars[0].Name != "COUNT" || vars[0].Type != "INTEGER" {
		t.Errorf("variables[0] = %s, want <COUNT : INTEGER>", vars[0])
	}
	if vars[1].Name != "RATIO" || vars[1].Type != "REAL" {
		t.Errorf("variables[1] = %s, want <RATIO : REAL>", vars[1])
	}
}

func TestEngineParse(t *testing.T) {
	engine := NewEngine()

	prog, err := engine.Parse("PROGRAM Hello; BEGIN END.")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Name != "HELLO" {
		t.Errorf("program name = %q, want HELLO", prog.Name)
	}
}

func TestEngineTokenize(t *testing.T) {
	engine := NewEngine()

	tokens, err := engine.Tokenize("BEGIN x := 1 END.")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	wantTypes := []mpasparser.TokenType{
		mpasparser.TokenBegin,
		mpasparser.TokenID,
		mpasparser.TokenAssign,
		mpasparser.TokenIntegerConst,
		mpasparser.TokenEnd,
		mpasparser.TokenDot,
		mpasparser.TokenEOF,
	}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantTypes))
	}
	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("token[%d].Type = %s, want %s", i, tokens[i].Type, want)
		}
	}
}

func TestEngineExecutionTimeout(t *testing.T) {
	engine := NewEngine(Options{ExecutionTimeout: time.Nanosecond})

	// the timeout context is already expired when execution starts
	_, err := engine.Run(context.Background(),
		"PROGRAM P; VAR a : INTEGER; BEGIN a := 1 END.")
	if err != nil && !mpaserr.HasCode(err, mpaserr.CodeTimeout) {
		t.Errorf("error code = %s, want %s", mpaserr.GetCode(err), mpaserr.CodeTimeout)
	}
}

func TestEngineMaxSourceLength(t *testing.T) {
	engine := NewEngine(Options{MaxSourceLength: 16})

	_, err := engine.Run(context.Background(),
		"PROGRAM TooLong; BEGIN END.")
	if !mpaserr.HasCode(err, mpaserr.CodeInvalidInput) {
		t.Errorf("error code = %s, want %s", mpaserr.GetCode(err), mpaserr.CodeInvalidInput)
	}
}
