// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; messages carry
// the constructor name and offending parameter.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below the minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that a WithX option received an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")
