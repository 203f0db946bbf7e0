// Package category provides the read-only Category data model that every
// optimizer in this module searches over: a set of Objects (vertices) and
// Morphisms (uniquely identified, directed edges carrying a cost/size
// transformation), plus the derived index needed to enumerate a given
// object's outgoing morphisms in a stable order.
//
// Why a dedicated Category instead of a plain graph?
//
//   - Morphisms are first-class: two morphisms may share the same
//     (Source, Target) pair and remain distinguishable by ID, which a plain
//     adjacency map keyed by (from,to) cannot express.
//   - Costs are input-dependent: a Morphism's cost is not a static number but
//     the result of calling its Apply(inputSize) capability, computed lazily
//     by the caller (see the bigraph package), not stored on the Morphism.
//   - The store is immutable after BuildCategory returns, so concurrent
//     optimizations over the same *Category require no locking.
//
// Configuration:
//
// There are no construction-time flags (WithDirected, WithWeighted, ...) the
// way a general-purpose graph library needs, because a Category has exactly
// one shape: directed, multi-edge-capable by construction (multiple
// morphisms may share endpoints), self-loops permitted (Source == Target is
// legal), and costs are always supplied per-morphism via Apply rather than a
// single Weight field.
//
// Core surface:
//
//	BuildCategory(objects []*Object, morphisms []*Morphism) (*Category, error)
//	(*Category) GetObject(id string) (*Object, bool)
//	(*Category) GetMorphism(id string) (*Morphism, bool)
//	(*Category) Contains(id string) bool
//	(*Category) Outgoing(objectID string) ([]string, bool)
//	(*Category) Objects() []string
//	(*Category) Morphisms() []string
//
// Errors:
//
//	ErrEmptyObjectID     – an Object was supplied with an empty ID.
//	ErrEmptyMorphismID   – a Morphism was supplied with an empty ID.
//	ErrNilApply          – a Morphism was supplied without an Apply function.
//	ErrDuplicateID       – two objects/morphisms (or an object and a morphism) share an ID.
//	ErrDanglingReference – a morphism's Source or Target does not resolve.
//	ErrUnknownObject     – a requested object ID is not present.
//	ErrUnknownMorphism   – a requested morphism ID is not present.
package category
