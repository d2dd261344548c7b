// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// options.go - BuilderOption setters. Invalid values are recorded and
// reported by BuildGraph as ErrOptionViolation.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption configures BuildGraph.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
	err      error
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithRand uses r for stochastic constructors and weights. r must be non-nil.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSeed uses a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight policy. fn must be non-nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("WithWeightFn(nil): %w", ErrOptionViolation)
			return
		}
		c.weightFn = fn
	}
}

// WithDirected emits one arc per edge, oriented from the lower-numbered node
// in the constructor's order (RandomSparse samples both orientations).
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}
