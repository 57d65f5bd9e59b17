// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and error kinds.
// All operations return one of these sentinels, wrapped with the operation
// name ("Add: ValidateSameShape: Rows: sparse: shape mismatch"). Callers match
// with errors.Is, or classify with KindOf. User input never triggers a panic.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested shape is negative or
	// when bulk ingestion receives a value count that does not match the shape.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrOutOfRange indicates a row or column outside [0,Rows) × [0,Cols).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes:
	// Add with different rows or cols, Multiply where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrCommonValueMismatch indicates operands whose common values differ.
	ErrCommonValueMismatch = errors.New("sparse: common value mismatch")

	// ErrNonZeroCommonValue marks a product requested on operands sharing a
	// non-zero common value; the sparse product is only defined for zero.
	ErrNonZeroCommonValue = errors.New("sparse: non-zero common value not supported")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// Kind classifies an error returned by this package.
type Kind int

// Error kinds, one per sentinel family.
const (
	KindNone Kind = iota
	KindInvalidArgument
	KindIndexOutOfRange
	KindShapeMismatch
	KindCommonValueMismatch
	KindUnsupportedCommonValue
	KindOther
)

var kindNames = [...]string{
	KindNone:                   "none",
	KindInvalidArgument:        "invalid argument",
	KindIndexOutOfRange:        "index out of range",
	KindShapeMismatch:          "shape mismatch",
	KindCommonValueMismatch:    "common value mismatch",
	KindUnsupportedCommonValue: "unsupported common value",
	KindOther:                  "other",
}

// String returns a short human-readable name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// KindOf maps err onto its Kind. nil maps to KindNone; errors that wrap none of
// the package sentinels (e.g. a cancelled context) map to KindOther.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrCommonValueMismatch):
		return KindCommonValueMismatch
	case errors.Is(err, ErrNonZeroCommonValue):
		return KindUnsupportedCommonValue
	case errors.Is(err, ErrOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrInvalidDimensions), errors.Is(err, ErrNilMatrix):
		return KindInvalidArgument
	default:
		return KindOther
	}
}

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
