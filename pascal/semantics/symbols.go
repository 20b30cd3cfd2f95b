// File: symbols.go
// Title: Symbol Table
// Description: Defines symbols and the flat symbol table with built-in
//              type symbols and duplicate detection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial symbol table implementation

package semantics

import (
	"fmt"
	"sort"
	"strings"

	mpaserr "github.com/msto63/mPAS/core/error"
)

// SymbolKind distinguishes the categories of symbols in the table
type SymbolKind int

const (
	// KindBuiltinType marks a predefined type symbol (INTEGER, REAL)
	KindBuiltinType SymbolKind = iota

	// KindVariable marks a declared variable
	KindVariable
)

// String returns the readable name of the symbol kind
func (k SymbolKind) String() string {
	switch k {
	case KindBuiltinType:
		return "builtin type"
	case KindVariable:
		return "variable"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// Symbol represents a named entity in a program
type Symbol struct {
	Name string     // Upper-cased symbol name
	Kind SymbolKind // Symbol category
	Type string     // Type name for variables, empty for type symbols
}

// String returns a readable representation of the symbol
func (s *Symbol) String() string {
	if s.Kind == KindVariable {
		return fmt.Sprintf("<%s : %s>", s.Name, s.Type)
	}
	return fmt.Sprintf("<%s>", s.Name)
}

// SymbolTable holds all symbols of a program in a single flat scope
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates a symbol table preloaded with the built-in
// type symbols
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
	st.symbols["INTEGER"] = &Symbol{Name: "INTEGER", Kind: KindBuiltinType}
	st.symbols["REAL"] = &Symbol{Name: "REAL", Kind: KindBuiltinType}
	return st
}

// Define adds a symbol to the table. Defining a name twice is an error,
// including collisions with built-in type symbols.
func (st *SymbolTable) Define(sym *Symbol) error {
	if existing, ok := st.symbols[sym.Name]; ok {
		return mpaserr.Newf("duplicate identifier %s", sym.Name).
			WithCode(mpaserr.CodeDuplicateIdentifier).
			WithDetail("name", sym.Name).
			WithDetail("existing_kind", existing.Kind.String()).
			WithOperation("symboltable.Define")
	}
	st.symbols[sym.Name] = sym
	return nil
}

// Resolve looks up a symbol by its upper-cased name
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Variables returns all variable symbols sorted by name
func (st *SymbolTable) Variables() []*Symbol {
	var vars []*Symbol
	for _, sym := range st.symbols {
		if sym.Kind == KindVariable {
			vars = append(vars, sym)
		}
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}

// String returns a readable listing of all variable symbols
func (st *SymbolTable) String() string {
	var sb strings.Builder
	sb.WriteString("Symbols:")
	for _, sym := range st.Variables() {
		sb.WriteString("\n  " + sym.String())
	}
	return sb.String()
}
