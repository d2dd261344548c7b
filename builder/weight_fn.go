// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// weight_fn.go - edge weight policies. Weights are non-negative so generated
// graphs are always valid shortest-path inputs.

package builder

import "math/rand"

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn is used.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng is nil unless WithSeed/WithRand was given.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns value for every edge. value must be ≥ 0.
func ConstantWeightFn(value int64) (WeightFn, error) {
	if value < 0 {
		return nil, builderErrorf("ConstantWeightFn", "value=%d < 0: %w", value, ErrOptionViolation)
	}

	return func(_ *rand.Rand) int64 { return value }, nil
}

// UniformWeightFn draws uniformly from [lo, hi]. Requires 0 ≤ lo ≤ hi.
// Without an rng it returns lo.
func UniformWeightFn(lo, hi int64) (WeightFn, error) {
	if lo < 0 || hi < lo {
		return nil, builderErrorf("UniformWeightFn", "require 0 ≤ lo ≤ hi, got lo=%d hi=%d: %w", lo, hi, ErrOptionViolation)
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}, nil
}
