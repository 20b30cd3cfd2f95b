// File: lexer_test.go
// Title: Lexer Tests
// Description: Tests for tokenization, case normalization, comment
//              handling, number literals, and lexical errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial tests

package parser

import (
	"testing"

	mpaserr "github.com/msto63/mPAS/core/error"
)

func TestLexerTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "assignment with operators",
			input: "a := 2 + 3 * 4",
			want: []Token{
				{Type: TokenID, Value: "A"},
				{Type: TokenAssign, Value: ":="},
				{Type: TokenIntegerConst, Value: "2"},
				{Type: TokenPlus, Value: "+"},
				{Type: TokenIntegerConst, Value: "3"},
				{Type: TokenMul, Value: "*"},
				{Type: TokenIntegerConst, Value: "4"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "keywords are case-insensitive",
			input: "bEgIn EnD pRoGrAm div",
			want: []Token{
				{Type: TokenBegin, Value: "BEGIN"},
				{Type: TokenEnd, Value: "END"},
				{Type: TokenProgram, Value: "PROGRAM"},
				{Type: TokenIntDiv, Value: "DIV"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "identifiers are upper-cased",
			input: "number _count x1",
			want: []Token{
				{Type: TokenID, Value: "NUMBER"},
				{Type: TokenID, Value: "_COUNT"},
				{Type: TokenID, Value: "X1"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "real and integer constants",
			input: "42 3.14 7.",
			want: []Token{
				{Type: TokenIntegerConst, Value: "42"},
				{Type: TokenRealConst, Value: "3.14"},
				{Type: TokenRealConst, Value: "7."},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "colon versus assign",
			input: "x : integer; y := 1",
			want: []Token{
				{Type: TokenID, Value: "X"},
				{Type: TokenColon, Value: ":"},
				{Type: TokenInteger, Value: "INTEGER"},
				{Type: TokenSemi, Value: ";"},
				{Type: TokenID, Value: "Y"},
				{Type: TokenAssign, Value: ":="},
				{Type: TokenIntegerConst, Value: "1"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "comments are skipped",
			input: "a := { a comment\nspanning lines } 5",
			want: []Token{
				{Type: TokenID, Value: "A"},
				{Type: TokenAssign, Value: ":="},
				{Type: TokenIntegerConst, Value: "5"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "delimiters",
			input: "( ) , . ; / -",
			want: []Token{
				{Type: TokenLParen, Value: "("},
				{Type: TokenRParen, Value: ")"},
				{Type: TokenComma, Value: ","},
				{Type: TokenDot, Value: "."},
				{Type: TokenSemi, Value: ";"},
				{Type: TokenFloatDiv, Value: "/"},
				{Type: TokenMinus, Value: "-"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "empty input",
			input: "",
			want: []Token{
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "whitespace only",
			input: "  \t\r\n  ",
			want: []Token{
				{Type: TokenEOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.want), tokens)
			}
			for i, want := range tt.want {
				if tokens[i].Type != want.Type {
					t.Errorf("token[%d].Type = %s, want %s", i, tokens[i].Type, want.Type)
				}
				if tokens[i].Value != want.Value {
					t.Errorf("token[%d].Value = %q, want %q", i, tokens[i].Value, want.Value)
				}
			}
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode mpaserr.Code
	}{
		{
			name:     "invalid character",
			input:    "a := 5 ? 3",
			wantCode: mpaserr.CodeInvalidCharacter,
		},
		{
			name:     "invalid character at start",
			input:    "#",
			wantCode: mpaserr.CodeInvalidCharacter,
		},
		{
			name:     "unterminated comment",
			input:    "a := { no closing brace",
			wantCode: mpaserr.CodeUnterminatedComment,
		},
		{
			name:     "unterminated comment spanning lines",
			input:    "begin\n{ comment\nstill open",
			wantCode: mpaserr.CodeUnterminatedComment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input).Tokenize()
			if err == nil {
				t.Fatal("Tokenize() expected error, got nil")
			}
			if !mpaserr.HasCode(err, tt.wantCode) {
				t.Errorf("error code = %s, want %s", mpaserr.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	input := "begin\n  x := 1\nend"
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	wantPositions := []struct {
		value  string
		line   int
		column int
	}{
		{"BEGIN", 1, 1},
		{"X", 2, 3},
		{":=", 2, 5},
		{"1", 2, 8},
		{"END", 3, 1},
	}

	for i, want := range wantPositions {
		tok := tokens[i]
		if tok.Value != want.value {
			t.Fatalf("token[%d].Value = %q, want %q", i, tok.Value, want.value)
		}
		if tok.Line != want.line || tok.Column != want.column {
			t.Errorf("token %q at %d:%d, want %d:%d",
				tok.Value, tok.Line, tok.Column, want.line, want.column)
		}
	}
}

func TestLexerEOFIdempotent(t *testing.T) {
	l := NewLexer("x")

	tok, err := l.NextToken()
	if err != nil || tok.Type != TokenID {
		t.Fatalf("NextToken() = %v, %v, want ID", tok, err)
	}

	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken() after end error = %v", err)
		}
		if tok.Type != TokenEOF {
			t.Errorf("NextToken() after end = %s, want EOF", tok.Type)
		}
	}
}
