// File: pascal.go
// Title: Pascal Main Interface and Engine
// Description: Provides the main mPAS engine interface and high-level API
//              for parsing, checking, and running Pascal programs.
//              Integrates lexer, parser, semantic analyzer, and evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial engine implementation

package pascal

import (
	"context"
	"time"

	"github.com/google/uuid"

	mpaserr "github.com/msto63/mPAS/core/error"
	mpaslog "github.com/msto63/mPAS/core/log"
	mpasast "github.com/msto63/mPAS/pascal/ast"
	mpasinterp "github.com/msto63/mPAS/pascal/interpreter"
	mpasparser "github.com/msto63/mPAS/pascal/parser"
	mpassem "github.com/msto63/mPAS/pascal/semantics"
	mpasstringx "github.com/msto63/mPAS/utils/stringx"
)

// Engine represents the main mPAS engine that coordinates parsing,
// semantic analysis, and execution
type Engine struct {
	parser   *mpasparser.Parser
	analyzer *mpassem.Analyzer
	executor *mpasinterp.Engine
	logger   *mpaslog.Logger
	options  Options
}

// Options configures the mPAS engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mpaslog.Logger

	// LogLevel for engine-specific logging (default: logger's level)
	LogLevel mpaslog.Level

	// MaxSourceLength limits input source length in bytes (default: 1 MiB)
	MaxSourceLength int

	// ExecutionTimeout sets maximum program execution time (default: 30s)
	ExecutionTimeout time.Duration
}

// Result represents the result of a program run
type Result struct {
	// RunID uniquely identifies this run
	RunID string

	// ProgramName is the upper-cased name from the PROGRAM header
	ProgramName string

	// Globals maps variable names to their final values
	Globals map[string]mpasinterp.Value

	// Symbols is the symbol table built during semantic analysis
	Symbols *mpassem.SymbolTable

	// Program is the parsed AST
	Program *mpasast.Program

	// ExecutionTime is the time taken to run the program
	ExecutionTime time.Duration
}

// NewEngine creates a new mPAS engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:           mpaslog.GetDefault(),
		MaxSourceLength:  mpasparser.DefaultMaxSourceLength,
		ExecutionTimeout: 30 * time.Second,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel != 0 {
			options.LogLevel = provided.LogLevel
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		if provided.ExecutionTimeout > 0 {
			options.ExecutionTimeout = provided.ExecutionTimeout
		}
	}

	logger := options.Logger.WithField("component", "pascal-engine")
	if options.LogLevel != 0 {
		logger = logger.WithLevel(options.LogLevel)
	}

	engine := &Engine{
		parser: mpasparser.New(mpasparser.Options{
			Logger:          logger,
			MaxSourceLength: options.MaxSourceLength,
		}),
		analyzer: mpassem.NewAnalyzer(logger),
		executor: mpasinterp.NewEngine(logger),
		logger:   logger,
		options:  options,
	}

	logger.Debug("mPAS engine initialized", mpaslog.Fields{
		"maxSourceLength":  options.MaxSourceLength,
		"executionTimeout": options.ExecutionTimeout,
	})

	return engine
}

// Run parses, checks, and executes a program. The four pipeline stages
// run in order and the first failing stage aborts the run.
func (e *Engine) Run(ctx context.Context, source string) (*Result, error) {
	runID := uuid.New().String()
	logger := e.logger.WithField("runId", runID)

	timer := logger.StartTimer("program_run")
	defer timer.Stop()

	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	program, err := e.parser.Parse(source)
	if err != nil {
		logger.Warn("parsing failed", mpaslog.Err(err))
		return nil, err
	}

	symbols, err := e.analyzer.Analyze(program)
	if err != nil {
		logger.Warn("semantic analysis failed", mpaslog.Fields{
			"program": program.Name,
			"error":   err.Error(),
		})
		return nil, err
	}

	runCtx := ctx
	if e.options.ExecutionTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.options.ExecutionTimeout)
		defer cancel()
	}

	execResult, err := e.executor.Execute(runCtx, program)
	if err != nil {
		logger.Error("execution failed", mpaslog.Fields{
			"program": program.Name,
			"error":   err.Error(),
		})
		return nil, err
	}

	result := &Result{
		RunID:         runID,
		ProgramName:   program.Name,
		Globals:       execResult.Globals,
		Symbols:       symbols,
		Program:       program,
		ExecutionTime: execResult.ExecutionTime,
	}

	logger.Info("program executed successfully", mpaslog.Fields{
		"program":  program.Name,
		"globals":  len(result.Globals),
		"duration": result.ExecutionTime,
	})

	return result, nil
}

// Parse parses a program without checking or executing it
func (e *Engine) Parse(source string) (*mpasast.Program, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}
	return e.parser.Parse(source)
}

// Check parses and semantically checks a program without executing it,
// returning its symbol table
func (e *Engine) Check(source string) (*mpassem.SymbolTable, error) {
	program, err := e.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.analyzer.Analyze(program)
}

// Tokenize runs only the lexer and returns the full token stream
func (e *Engine) Tokenize(source string) ([]mpasparser.Token, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}
	return mpasparser.NewLexer(source).Tokenize()
}

// validateInput validates the input source text
func (e *Engine) validateInput(source string) error {
	if mpasstringx.IsBlank(source) {
		return mpaserr.New("source input cannot be empty").
			WithCode(mpaserr.CodeInvalidInput).
			WithOperation("engine.Run")
	}

	if len(source) > e.options.MaxSourceLength {
		return mpaserr.Newf("source input exceeds maximum length: %d > %d",
			len(source), e.options.MaxSourceLength).
			WithCode(mpaserr.CodeInvalidInput).
			WithOperation("engine.Run")
	}

	return nil
}

// String returns a string representation of the result
func (r *Result) String() string {
	return "Program " + r.ProgramName + " (" + r.ExecutionTime.String() + ")"
}

// IsEmpty returns true if the run produced no variable bindings
func (r *Result) IsEmpty() bool {
	return len(r.Globals) == 0
}

// Count returns the number of variable bindings in the result
func (r *Result) Count() int {
	return len(r.Globals)
}
