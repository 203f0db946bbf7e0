// Package negate implements the Negatable and NegatableInfallible
// optimizers: Bellman-Ford relaxation over a category.Category's
// size-constant bipartite projection, supporting morphisms with negative
// cost as long as no negative cycle that is both reachable from the source
// and able to reach the target exists.
package negate

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by Optimize and OptimizeInfallible.
var (
	// ErrNilCategory indicates a nil *category.Category was passed.
	ErrNilCategory = errors.New("negate: category is nil")

	// ErrUnknownObject indicates sourceID or targetID does not name an
	// object in the category.
	ErrUnknownObject = errors.New("negate: unknown object")

	// ErrUnreachable indicates targetID cannot be reached from sourceID.
	ErrUnreachable = errors.New("negate: target unreachable from source")

	// ErrNegativeCycle indicates a negative-cost cycle exists that is both
	// reachable from sourceID and able to reach targetID, making the
	// minimum cost unbounded below. Optimize returns this error without a
	// result; OptimizeInfallible never returns it, reporting the condition
	// through CompositeMorphism.NegativeCycleObserved instead.
	ErrNegativeCycle = errors.New("negate: negative cycle affects path cost")
)

// Options configures Optimize and OptimizeInfallible.
type Options struct {
	// Logger receives debug-level traces of relaxation passes.
	// Defaults to a logger that discards everything.
	Logger *log.Logger
}

// Option is a functional option for Optimize and OptimizeInfallible.
type Option func(*Options)

// WithLogger sets the debug logger Optimize and OptimizeInfallible report
// relaxation progress to.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns an Options value with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.NewWithOptions(io.Discard, log.Options{})}
}
