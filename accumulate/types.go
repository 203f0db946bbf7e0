// Package accumulate implements the Accumulating optimizer: best-first
// search over a category.Category's bipartite projection that threads the
// size arriving at each state through to the morphisms it expands, so that
// a morphism's cost and output size always reflect the size actually
// flowing through the path being built — not a size fixed up front.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |objects| + |morphisms|, E = 2·|morphisms|
//	   • Each bipartite node is closed at most once under non-negative costs.
//	   • Each expansion may push one new heap entry per outgoing edge.
//	   • Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//	– Space: O(V) for the closed set, cost table, and predecessor table.
//
// Options:
//
//	– Logger: optional debug sink for search tracing (default: discards).
//
// Errors (sentinel):
//
//	– ErrUnknownObject             if source or target is not in the category.
//	– ErrUnreachable               if no path exists from source to target.
//	– ErrNegativeCostInAccumulating if any Apply call along the search yields a negative cost.
package accumulate

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by Optimize.
var (
	// ErrNilCategory indicates a nil *category.Category was passed to Optimize.
	ErrNilCategory = errors.New("accumulate: category is nil")

	// ErrUnknownObject indicates sourceID or targetID does not name an
	// object in the category.
	ErrUnknownObject = errors.New("accumulate: unknown object")

	// ErrUnreachable indicates targetID cannot be reached from sourceID.
	ErrUnreachable = errors.New("accumulate: target unreachable from source")

	// ErrNegativeCostInAccumulating indicates a morphism's Apply produced a
	// negative cost; Accumulating requires non-negative costs because its
	// best-first search assumes monotone, non-decreasing path cost.
	ErrNegativeCostInAccumulating = errors.New("accumulate: negative cost encountered")
)

// Options configures Optimize.
type Options struct {
	// Logger receives debug-level traces of relaxations and node closures.
	// Defaults to a logger that discards everything.
	Logger *log.Logger
}

// Option is a functional option for Optimize.
type Option func(*Options)

// WithLogger sets the debug logger Optimize reports search progress to.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns an Options value with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.NewWithOptions(io.Discard, log.Options{})}
}
