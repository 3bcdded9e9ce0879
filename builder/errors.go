// SPDX-License-Identifier: MIT
// Package: buddies/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadWeight indicates a negative or non-finite weight parameter.
var ErrBadWeight = errors.New("builder: bad weight")
