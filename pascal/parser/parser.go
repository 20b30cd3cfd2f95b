// File: parser.go
// Title: Recursive Descent Parser
// Description: Implements the recursive descent parser that turns Pascal
//              source text into an AST. One parse method per grammar rule,
//              single token lookahead, structured syntax errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	mpaserr "github.com/msto63/mPAS/core/error"
	"github.com/msto63/mPAS/core/log"
	"github.com/msto63/mPAS/pascal/ast"
)

const (
	// DefaultMaxSourceLength is the default maximum source length in bytes
	DefaultMaxSourceLength = 1 << 20 // 1 MiB
)

// Options configures the parser
type Options struct {
	// Logger for diagnostic output (optional)
	Logger *log.Logger

	// MaxSourceLength limits the accepted source size in bytes.
	// Zero selects DefaultMaxSourceLength.
	MaxSourceLength int
}

// Parser parses Pascal source text into an AST
type Parser struct {
	lexer   *Lexer
	current Token
	logger  *log.Logger
	options Options
}

// New creates a new parser with the given options
func New(options Options) *Parser {
	if options.MaxSourceLength <= 0 {
		options.MaxSourceLength = DefaultMaxSourceLength
	}
	if options.Logger == nil {
		options.Logger = log.GetDefault().WithName("parser")
	}

	return &Parser{
		logger:  options.Logger,
		options: options,
	}
}

// Parse parses a complete program from source text. The source must
// consist of exactly one program followed by end of input.
func (p *Parser) Parse(source string) (*ast.Program, error) {
	if len(source) > p.options.MaxSourceLength {
		return nil, mpaserr.Newf("source exceeds maximum length of %d bytes", p.options.MaxSourceLength).
			WithCode(mpaserr.CodeInvalidInput).
			WithDetail("length", len(source)).
			WithDetail("max_length", p.options.MaxSourceLength).
			WithOperation("parser.Parse")
	}

	p.logger.Debug("parsing program", log.Int("source_length", len(source)))

	p.lexer = NewLexer(source)
	if err := p.advance(); err != nil {
		return nil, err
	}

	program, err := p.parseProgram()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, p.parseError("unexpected input after end of program")
	}

	p.logger.Debug("parsed program", log.String("program", program.Name))
	return program, nil
}

// advance moves to the next token
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// expect consumes the current token if it has the given type, otherwise
// it reports a syntax error
func (p *Parser) expect(t TokenType) (Token, error) {
	if p.current.Type != t {
		return Token{}, p.parseError("expected " + t.String())
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// parseError creates a syntax error at the current token
func (p *Parser) parseError(message string) error {
	return mpaserr.New(message).
		WithCode(mpaserr.CodeInvalidSyntax).
		WithDetail("token", p.current.Type.String()).
		WithDetail("value", p.current.Value).
		WithDetail("line", p.current.Line).
		WithDetail("column", p.current.Column).
		WithOperation("parser.Parse")
}

// currentPosition returns the position of the current token
func (p *Parser) currentPosition() ast.Position {
	return ast.Position{
		Line:   p.current.Line,
		Column: p.current.Column,
		Offset: p.current.Position,
	}
}

// parseProgram parses: PROGRAM ID SEMI block DOT
func (p *Parser) parseProgram() (*ast.Program, error) {
	pos := p.currentPosition()

	if _, err := p.expect(TokenProgram); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemi); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenDot); err != nil {
		return nil, err
	}

	return &ast.Program{
		Name:  name.Value,
		Block: block,
		Pos:   pos,
	}, nil
}

// parseBlock parses: declarations compound_statement
func (p *Parser) parseBlock() (*ast.Block, error) {
	pos := p.currentPosition()

	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}

	compound, err := p.parseCompound()
	if err != nil {
		return nil, err
	}

	return &ast.Block{
		Declarations: decls,
		Compound:     compound,
		Pos:          pos,
	}, nil
}

// parseDeclarations parses any number of VAR sections and procedure
// declarations, in source order
func (p *Parser) parseDeclarations() ([]ast.Decl, error) {
	var decls []ast.Decl

	for {
		switch p.current.Type {
		case TokenVar:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.current.Type != TokenID {
				return nil, p.parseError("expected variable declaration after VAR")
			}
			for p.current.Type == TokenID {
				varDecls, err := p.parseVarDecl()
				if err != nil {
					return nil, err
				}
				decls = append(decls, varDecls...)
				if _, err := p.expect(TokenSemi); err != nil {
					return nil, err
				}
			}
		case TokenProcedure:
			decl, err := p.parseProcedureDecl()
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
		default:
			return decls, nil
		}
	}
}

// parseVarDecl parses: ID (COMMA ID)* COLON type_spec
// Each listed identifier yields its own declaration node.
func (p *Parser) parseVarDecl() ([]ast.Decl, error) {
	first, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}

	names := []ast.Position{{Line: first.Line, Column: first.Column, Offset: first.Position}}
	idents := []string{first.Value}

	for p.current.Type == TokenComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		id, err := p.expect(TokenID)
		if err != nil {
			return nil, err
		}
		names = append(names, ast.Position{Line: id.Line, Column: id.Column, Offset: id.Position})
		idents = append(idents, id.Value)
	}

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}

	typeName, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}

	decls := make([]ast.Decl, 0, len(idents))
	for i, name := range idents {
		decls = append(decls, &ast.VarDecl{
			VarName:  name,
			TypeName: typeName,
			Pos:      names[i],
		})
	}
	return decls, nil
}

// parseTypeSpec parses: INTEGER | REAL
func (p *Parser) parseTypeSpec() (string, error) {
	switch p.current.Type {
	case TokenInteger, TokenReal:
		name := p.current.Value
		if err := p.advance(); err != nil {
			return "", err
		}
		return name, nil
	default:
		return "", p.parseError("expected type name INTEGER or REAL")
	}
}

// parseProcedureDecl parses: PROCEDURE ID SEMI block SEMI
func (p *Parser) parseProcedureDecl() (*ast.ProcedureDecl, error) {
	pos := p.currentPosition()

	if _, err := p.expect(TokenProcedure); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemi); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemi); err != nil {
		return nil, err
	}

	return &ast.ProcedureDecl{
		Name:  name.Value,
		Block: block,
		Pos:   pos,
	}, nil
}

// parseCompound parses: BEGIN statement_list END
func (p *Parser) parseCompound() (*ast.Compound, error) {
	pos := p.currentPosition()

	if _, err := p.expect(TokenBegin); err != nil {
		return nil, err
	}

	stmts, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEnd); err != nil {
		return nil, err
	}

	return &ast.Compound{
		Statements: stmts,
		Pos:        pos,
	}, nil
}

// parseStatementList parses: statement (SEMI statement)*
func (p *Parser) parseStatementList() ([]ast.Stmt, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmts := []ast.Stmt{stmt}
	for p.current.Type == TokenSemi {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement parses: compound_statement | assignment_statement | empty
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.current.Type {
	case TokenBegin:
		return p.parseCompound()
	case TokenID:
		return p.parseAssignment()
	default:
		return &ast.NoOp{Pos: p.currentPosition()}, nil
	}
}

// parseAssignment parses: variable ASSIGN expr
func (p *Parser) parseAssignment() (*ast.Assign, error) {
	target, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{
		Target: target,
		Value:  value,
		Pos:    target.Pos,
	}, nil
}

// parseVariable parses: ID
func (p *Parser) parseVariable() (*ast.Var, error) {
	pos := p.currentPosition()
	tok, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}
	return &ast.Var{Name: tok.Value, Pos: pos}, nil
}

// parseExpr parses: term ((PLUS | MINUS) term)*
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := ast.OpAdd
		if p.current.Type == TokenMinus {
			op = ast.OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{
			Left:  left,
			Op:    op,
			Right: right,
			Pos:   left.Position(),
		}
	}
	return left, nil
}

// parseTerm parses: factor ((MUL | DIV | FLOAT_DIV) factor)*
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenMul || p.current.Type == TokenIntDiv || p.current.Type == TokenFloatDiv {
		var op ast.Operator
		switch p.current.Type {
		case TokenMul:
			op = ast.OpMul
		case TokenIntDiv:
			op = ast.OpIntDiv
		case TokenFloatDiv:
			op = ast.OpFloatDiv
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{
			Left:  left,
			Op:    op,
			Right: right,
			Pos:   left.Position(),
		}
	}
	return left, nil
}

// parseFactor parses:
//
//	PLUS factor | MINUS factor | INTEGER_CONST | REAL_CONST
//	| LPAREN expr RPAREN | variable
func (p *Parser) parseFactor() (ast.Expr, error) {
	pos := p.currentPosition()

	switch p.current.Type {
	case TokenPlus, TokenMinus:
		op := ast.OpAdd
		if p.current.Type == TokenMinus {
			op = ast.OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Operand: operand, Pos: pos}, nil

	case TokenIntegerConst:
		raw := p.current.Value
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, p.parseError("invalid integer literal")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Num{Raw: raw, Int: value, Pos: pos}, nil

	case TokenRealConst:
		raw := p.current.Value
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, p.parseError("invalid real literal")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Num{Raw: raw, IsReal: true, Real: value, Pos: pos}, nil

	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	case TokenID:
		return p.parseVariable()

	default:
		return nil, p.parseError("expected expression")
	}
}
