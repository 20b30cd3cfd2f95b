// File: value.go
// Title: Runtime Values
// Description: Defines the dynamically typed runtime value with its
//              arithmetic operations, type promotion rules, and floored
//              integer division.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15
//
// Change History:
// - 2026-06-15 v0.1.0: Initial value implementation

package interpreter

import (
	"fmt"
	"strconv"

	mpaserr "github.com/msto63/mPAS/core/error"
)

// ValueType represents the runtime type of a value
type ValueType int

const (
	// TypeInteger marks an integer value
	TypeInteger ValueType = iota

	// TypeReal marks a real value
	TypeReal
)

// String returns the readable name of the value type
func (t ValueType) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeReal:
		return "REAL"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Value represents a runtime value. The active field follows Type.
type Value struct {
	Type ValueType
	Int  int64
	Real float64
}

// IntValue creates an integer value
func IntValue(v int64) Value {
	return Value{Type: TypeInteger, Int: v}
}

// RealValue creates a real value
func RealValue(v float64) Value {
	return Value{Type: TypeReal, Real: v}
}

// AsReal returns the value as a float64, converting integers
func (v Value) AsReal() float64 {
	if v.Type == TypeInteger {
		return float64(v.Int)
	}
	return v.Real
}

// String formats the value for display. Integers render without a
// decimal point, reals in their shortest exact representation.
func (v Value) String() string {
	if v.Type == TypeInteger {
		return strconv.FormatInt(v.Int, 10)
	}
	return strconv.FormatFloat(v.Real, 'g', -1, 64)
}

// Add returns v + other with numeric promotion
func (v Value) Add(other Value) Value {
	if v.Type == TypeInteger && other.Type == TypeInteger {
		return IntValue(v.Int + other.Int)
	}
	return RealValue(v.AsReal() + other.AsReal())
}

// Sub returns v - other with numeric promotion
func (v Value) Sub(other Value) Value {
	if v.Type == TypeInteger && other.Type == TypeInteger {
		return IntValue(v.Int - other.Int)
	}
	return RealValue(v.AsReal() - other.AsReal())
}

// Mul returns v * other with numeric promotion
func (v Value) Mul(other Value) Value {
	if v.Type == TypeInteger && other.Type == TypeInteger {
		return IntValue(v.Int * other.Int)
	}
	return RealValue(v.AsReal() * other.AsReal())
}

// IntDiv returns v DIV other, flooring toward negative infinity.
// Both operands must be integers and the divisor must be non-zero.
func (v Value) IntDiv(other Value) (Value, error) {
	if v.Type != TypeInteger || other.Type != TypeInteger {
		return Value{}, mpaserr.New("DIV requires integer operands").
			WithCode(mpaserr.CodeInvalidInput).
			WithDetail("left_type", v.Type.String()).
			WithDetail("right_type", other.Type.String()).
			WithOperation("value.IntDiv")
	}
	if other.Int == 0 {
		return Value{}, mpaserr.New("integer division by zero").
			WithCode(mpaserr.CodeDivisionByZero).
			WithOperation("value.IntDiv")
	}

	q := v.Int / other.Int
	if v.Int%other.Int != 0 && (v.Int < 0) != (other.Int < 0) {
		q--
	}
	return IntValue(q), nil
}

// FloatDiv returns v / other as a real, regardless of operand types.
// The divisor must be non-zero.
func (v Value) FloatDiv(other Value) (Value, error) {
	if other.AsReal() == 0 {
		return Value{}, mpaserr.New("division by zero").
			WithCode(mpaserr.CodeDivisionByZero).
			WithOperation("value.FloatDiv")
	}
	return RealValue(v.AsReal() / other.AsReal()), nil
}

// Neg returns the arithmetic negation of v
func (v Value) Neg() Value {
	if v.Type == TypeInteger {
		return IntValue(-v.Int)
	}
	return RealValue(-v.Real)
}
