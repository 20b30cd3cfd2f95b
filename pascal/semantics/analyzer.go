// File: analyzer.go
// Title: Semantic Analyzer
// Description: Walks the AST to build the symbol table and verify that
//              variables are declared before use and declared only once.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial analyzer implementation

package semantics

import (
	"errors"

	mpaserr "github.com/msto63/mPAS/core/error"
	"github.com/msto63/mPAS/core/log"
	"github.com/msto63/mPAS/pascal/ast"
)

// Analyzer performs semantic analysis over parsed programs
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer creates a new semantic analyzer
func NewAnalyzer(logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.GetDefault().WithName("semantics")
	}
	return &Analyzer{logger: logger}
}

// Analyze checks the program and returns its symbol table. Each call
// works on a fresh table, so the analyzer is reusable across programs.
func (a *Analyzer) Analyze(program *ast.Program) (*SymbolTable, error) {
	if program == nil {
		return nil, mpaserr.New("program must not be nil").
			WithCode(mpaserr.CodeInvalidInput).
			WithOperation("analyzer.Analyze")
	}

	table := NewSymbolTable()
	if err := a.checkBlock(table, program.Block); err != nil {
		return nil, err
	}

	a.logger.Debug("analyzed program",
		log.String("program", program.Name),
		log.Int("variables", len(table.Variables())))
	return table, nil
}

// checkBlock registers the block's declarations and checks its body
func (a *Analyzer) checkBlock(table *SymbolTable, block *ast.Block) error {
	for _, decl := range block.Declarations {
		switch d := decl.(type) {
		case *ast.VarDecl:
			if typeSym, ok := table.Resolve(d.TypeName); !ok || typeSym.Kind != KindBuiltinType {
				return mpaserr.Newf("unknown type %s", d.TypeName).
					WithCode(mpaserr.CodeUndeclaredIdentifier).
					WithDetail("name", d.TypeName).
					WithDetail("line", d.Pos.Line).
					WithDetail("column", d.Pos.Column).
					WithOperation("analyzer.Analyze")
			}
			sym := &Symbol{Name: d.VarName, Kind: KindVariable, Type: d.TypeName}
			if err := table.Define(sym); err != nil {
				return withPosition(err, d.Pos)
			}
		case *ast.ProcedureDecl:
			// procedure bodies are never executed and stay unchecked
		}
	}
	return a.checkStmt(table, block.Compound)
}

// checkStmt verifies variable references inside a statement
func (a *Analyzer) checkStmt(table *SymbolTable, stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Compound:
		for _, inner := range s.Statements {
			if err := a.checkStmt(table, inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.Assign:
		if err := a.checkVar(table, s.Target); err != nil {
			return err
		}
		return a.checkExpr(table, s.Value)
	case *ast.NoOp:
		return nil
	default:
		return nil
	}
}

// checkExpr verifies variable references inside an expression
func (a *Analyzer) checkExpr(table *SymbolTable, expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.BinOp:
		if err := a.checkExpr(table, e.Left); err != nil {
			return err
		}
		return a.checkExpr(table, e.Right)
	case *ast.UnaryOp:
		return a.checkExpr(table, e.Operand)
	case *ast.Var:
		return a.checkVar(table, e)
	case *ast.Num:
		return nil
	default:
		return nil
	}
}

// checkVar verifies that a referenced variable is declared
func (a *Analyzer) checkVar(table *SymbolTable, v *ast.Var) error {
	sym, ok := table.Resolve(v.Name)
	if !ok || sym.Kind != KindVariable {
		return mpaserr.Newf("undeclared identifier %s", v.Name).
			WithCode(mpaserr.CodeUndeclaredIdentifier).
			WithDetail("name", v.Name).
			WithDetail("line", v.Pos.Line).
			WithDetail("column", v.Pos.Column).
			WithOperation("analyzer.Analyze")
	}
	return nil
}

// withPosition attaches source position details to a semantic error
func withPosition(err error, pos ast.Position) error {
	var mErr *mpaserr.Error
	if errors.As(err, &mErr) {
		return mErr.WithDetail("line", pos.Line).WithDetail("column", pos.Column)
	}
	return err
}
