// File: lexer.go
// Title: Lexical Analyzer
// Description: Implements the tokenizer for Pascal source text with
//              line/column tracking, case normalization, curly-brace
//              comment handling, and structured lexical errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial lexer implementation

package parser

import (
	"strings"

	mpaserr "github.com/msto63/mPAS/core/error"
)

// Lexer tokenizes Pascal source text
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current character under examination
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// readChar advances to the next character in the input
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken returns the next token from the input. At end of input it
// returns an EOF token; repeated calls after EOF keep returning EOF.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	tok := Token{
		Position: l.position,
		Line:     l.line,
		Column:   l.column,
	}

	switch l.ch {
	case 0:
		tok.Type = TokenEOF
		tok.Value = ""
		return tok, nil
	case '+':
		tok.Type = TokenPlus
		tok.Value = "+"
	case '-':
		tok.Type = TokenMinus
		tok.Value = "-"
	case '*':
		tok.Type = TokenMul
		tok.Value = "*"
	case '/':
		tok.Type = TokenFloatDiv
		tok.Value = "/"
	case '(':
		tok.Type = TokenLParen
		tok.Value = "("
	case ')':
		tok.Type = TokenRParen
		tok.Value = ")"
	case ';':
		tok.Type = TokenSemi
		tok.Value = ";"
	case ',':
		tok.Type = TokenComma
		tok.Value = ","
	case '.':
		tok.Type = TokenDot
		tok.Value = "."
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = TokenAssign
			tok.Value = ":="
		} else {
			tok.Type = TokenColon
			tok.Value = ":"
		}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier(tok), nil
		}
		if isDigit(l.ch) {
			return l.readNumber(tok), nil
		}
		return Token{}, mpaserr.Newf("invalid character %q", string(l.ch)).
			WithCode(mpaserr.CodeInvalidCharacter).
			WithDetail("character", string(l.ch)).
			WithDetail("line", tok.Line).
			WithDetail("column", tok.Column).
			WithOperation("lexer.NextToken")
	}

	l.readChar()
	return tok, nil
}

// readIdentifier reads an identifier or keyword starting at the current
// position. The lexeme is upper-cased before keyword lookup.
func (l *Lexer) readIdentifier(tok Token) Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	lexeme := strings.ToUpper(l.input[start:l.position])
	tok.Type = lookupIdent(lexeme)
	tok.Value = lexeme
	return tok
}

// readNumber reads an integer or real literal. A dot directly after the
// integer part turns the literal into a real constant, even when no
// fractional digits follow.
func (l *Lexer) readNumber(tok Token) Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		tok.Type = TokenRealConst
	} else {
		tok.Type = TokenIntegerConst
	}

	tok.Value = l.input[start:l.position]
	return tok
}

// skipWhitespaceAndComments advances past whitespace and curly-brace
// comments. An unclosed comment is a lexical error.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch != '{' {
			return nil
		}

		startLine := l.line
		startColumn := l.column
		l.readChar()
		for l.ch != '}' {
			if l.ch == 0 {
				return mpaserr.New("unterminated comment").
					WithCode(mpaserr.CodeUnterminatedComment).
					WithDetail("line", startLine).
					WithDetail("column", startColumn).
					WithOperation("lexer.NextToken")
			}
			l.readChar()
		}
		l.readChar() // consume closing brace
	}
}

// Tokenize reads all tokens from the input up to and including EOF.
// It stops at the first lexical error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// isLetter reports whether ch can start or continue an identifier
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

// isDigit reports whether ch is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
