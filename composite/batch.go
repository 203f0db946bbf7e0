package composite

import (
	"fmt"
	"sort"

	"github.com/optimorph/optimorph/category"
)

// Pair names one source/target query for OptimizeMany, together with the
// initial size that query should start from.
type Pair struct {
	SourceID    string
	TargetID    string
	InitialSize any
}

// OptimizeFunc is the shape shared by accumulate.Optimize, negate.Optimize,
// and negate.OptimizeInfallible, letting OptimizeMany and RankByScore stay
// agnostic to which optimizer produced a CompositeMorphism. O is the
// optimizer package's own Option type.
type OptimizeFunc[O any] func(cat *category.Category, sourceID, targetID string, initialSize any, opts ...O) (*CompositeMorphism, error)

// OptimizeMany runs optimize once per pair against cat, in order, stopping
// at the first error. It is the batch counterpart to a single optimizer
// call, for callers who need the best path for several source/target
// queries over the same category. optimize is called without options.
func OptimizeMany[O any](optimize OptimizeFunc[O], cat *category.Category, pairs []Pair) ([]*CompositeMorphism, error) {
	results := make([]*CompositeMorphism, 0, len(pairs))
	for _, p := range pairs {
		r, err := optimize(cat, p.SourceID, p.TargetID, p.InitialSize)
		if err != nil {
			return nil, fmt.Errorf("composite: pair %q -> %q: %w", p.SourceID, p.TargetID, err)
		}
		results = append(results, r)
	}

	return results, nil
}

// RankByScore returns a copy of results sorted ascending by score, leaving
// the input slice untouched. score may return the raw total cost, or any
// derived figure of merit — see CostScore and CostPerInputScore.
func RankByScore(results []*CompositeMorphism, score func(*CompositeMorphism) float64) []*CompositeMorphism {
	ranked := make([]*CompositeMorphism, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool { return score(ranked[i]) < score(ranked[j]) })

	return ranked
}

// CostScore is the identity score: rank by TotalCost as reported.
func CostScore(c *CompositeMorphism) float64 {
	return c.TotalCost
}

// CostPerInputScore builds a score function that ranks by cost divided by
// initial size, using toFloat to project the opaque InitialSize into a
// comparable figure. This mirrors ranking a set of candidate transformations
// by efficiency rather than by absolute cost.
func CostPerInputScore(toFloat func(any) float64) func(*CompositeMorphism) float64 {
	return func(c *CompositeMorphism) float64 {
		denom := toFloat(c.InitialSize)
		if denom == 0 {
			return c.TotalCost
		}

		return c.TotalCost / denom
	}
}
