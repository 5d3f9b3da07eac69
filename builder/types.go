// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/core"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Graph is the fixture type every constructor fills.
type Graph = core.AdjacencyList[int, core.WeightedEdge[int]]

// DefaultSeed seeds the RNG when WithSeed is not given.
const DefaultSeed int64 = 1

// WeightFn produces an edge weight from rng.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns 1.
func DefaultWeightFn(_ *rand.Rand) float64 { return 1 }

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn samples integers uniformly in [min, max]. Panics unless 0 ≤ min ≤ max.
// Integer weights keep path sums exact, which tests comparing distances rely on.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(max-min+1))
	}
}

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds the builder's RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}
