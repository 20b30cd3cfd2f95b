// File: interpreter.go
// Title: Tree-Walking Evaluator
// Description: Implements the execution engine that evaluates analyzed
//              programs statement by statement, maintaining a per-run
//              variable store and observing context cancellation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial evaluator implementation

package interpreter

import (
	"context"
	"errors"
	"time"

	mpaserr "github.com/msto63/mPAS/core/error"
	"github.com/msto63/mPAS/core/log"
	"github.com/msto63/mPAS/pascal/ast"
)

// Engine evaluates programs. It keeps no state between runs; every
// Execute call starts from an empty variable store.
type Engine struct {
	logger *log.Logger
}

// Result holds the outcome of a program run
type Result struct {
	// Globals maps variable names to their final values. Variables
	// that were declared but never assigned are absent.
	Globals map[string]Value

	// ExecutionTime is the wall-clock duration of the run
	ExecutionTime time.Duration
}

// NewEngine creates a new evaluation engine
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.GetDefault().WithName("interpreter")
	}
	return &Engine{logger: logger}
}

// Execute runs the program and returns the final variable bindings.
// Cancellation of ctx is checked between statements.
func (e *Engine) Execute(ctx context.Context, program *ast.Program) (*Result, error) {
	if program == nil {
		return nil, mpaserr.New("program must not be nil").
			WithCode(mpaserr.CodeInvalidInput).
			WithOperation("engine.Execute")
	}

	start := time.Now()
	globals := make(map[string]Value)

	if err := e.execStmt(ctx, globals, program.Block.Compound); err != nil {
		return nil, err
	}

	result := &Result{
		Globals:       globals,
		ExecutionTime: time.Since(start),
	}

	e.logger.Debug("executed program",
		log.String("program", program.Name),
		log.Int("globals", len(globals)),
		log.Duration("duration", result.ExecutionTime))
	return result, nil
}

// execStmt executes a single statement
func (e *Engine) execStmt(ctx context.Context, globals map[string]Value, stmt ast.Stmt) error {
	if err := ctx.Err(); err != nil {
		return mpaserr.Wrap(err, "execution cancelled").
			WithCode(mpaserr.CodeTimeout).
			WithOperation("engine.Execute")
	}

	switch s := stmt.(type) {
	case *ast.Compound:
		for _, inner := range s.Statements {
			if err := e.execStmt(ctx, globals, inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.Assign:
		value, err := e.evalExpr(globals, s.Value)
		if err != nil {
			return err
		}
		globals[s.Target.Name] = value
		return nil

	case *ast.NoOp:
		return nil

	default:
		return mpaserr.Newf("unsupported statement type %T", stmt).
			WithCode(mpaserr.CodeInternal).
			WithOperation("engine.Execute")
	}
}

// evalExpr evaluates an expression to a value
func (e *Engine) evalExpr(globals map[string]Value, expr ast.Expr) (Value, error) {
	switch x := expr.(type) {
	case *ast.Num:
		if x.IsReal {
			return RealValue(x.Real), nil
		}
		return IntValue(x.Int), nil

	case *ast.Var:
		value, ok := globals[x.Name]
		if !ok {
			return Value{}, mpaserr.Newf("variable %s has no value", x.Name).
				WithCode(mpaserr.CodeUndefinedVariable).
				WithDetail("name", x.Name).
				WithDetail("line", x.Pos.Line).
				WithDetail("column", x.Pos.Column).
				WithOperation("engine.Execute")
		}
		return value, nil

	case *ast.UnaryOp:
		operand, err := e.evalExpr(globals, x.Operand)
		if err != nil {
			return Value{}, err
		}
		if x.Op == ast.OpSub {
			return operand.Neg(), nil
		}
		return operand, nil

	case *ast.BinOp:
		left, err := e.evalExpr(globals, x.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := e.evalExpr(globals, x.Right)
		if err != nil {
			return Value{}, err
		}
		return e.applyBinOp(x, left, right)

	default:
		return Value{}, mpaserr.Newf("unsupported expression type %T", expr).
			WithCode(mpaserr.CodeInternal).
			WithOperation("engine.Execute")
	}
}

// applyBinOp applies a binary operator, attaching the operator position
// to runtime errors
func (e *Engine) applyBinOp(op *ast.BinOp, left, right Value) (Value, error) {
	switch op.Op {
	case ast.OpAdd:
		return left.Add(right), nil
	case ast.OpSub:
		return left.Sub(right), nil
	case ast.OpMul:
		return left.Mul(right), nil
	case ast.OpIntDiv:
		value, err := left.IntDiv(right)
		if err != nil {
			return Value{}, withPosition(err, op.Pos)
		}
		return value, nil
	case ast.OpFloatDiv:
		value, err := left.FloatDiv(right)
		if err != nil {
			return Value{}, withPosition(err, op.Pos)
		}
		return value, nil
	default:
		return Value{}, mpaserr.Newf("unsupported operator %s", op.Op).
			WithCode(mpaserr.CodeInternal).
			WithOperation("engine.Execute")
	}
}

// withPosition attaches source position details to a runtime error
func withPosition(err error, pos ast.Position) error {
	var mErr *mpaserr.Error
	if errors.As(err, &mErr) {
		return mErr.WithDetail("line", pos.Line).WithDetail("column", pos.Column)
	}
	return err
}
