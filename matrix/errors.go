// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors return these sentinels (optionally wrapped with coordinates);
// callers match them via errors.Is. No accessor panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN signals a NaN value was passed to Set. +Inf is allowed and means "absent".
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNegativeInf signals -Inf was passed to Set; only +Inf has a meaning here.
	ErrNegativeInf = errors.New("matrix: -Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
