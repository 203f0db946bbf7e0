// File: view.go
// Role: the two successor projections of a Category's bipartite graph.
// Determinism:
//   - Successors(Obj(o)) always enumerates morphisms in Category.Outgoing
//     declaration order; this is the tie-break contract every optimizer in
//     this module relies on (earlier-declared morphism wins cost ties).
// Concurrency:
//   - A View only reads its Category; multiple Views (and callers) may use
//     the same Category concurrently.
package bigraph

import (
	"fmt"
	"sort"

	"github.com/optimorph/optimorph/category"
)

// WeightedEdge is one outgoing edge of the bipartite projection: a
// destination Node and the cost of moving to it.
type WeightedEdge struct {
	To     Node
	Weight float64
}

// StaticView is the size-constant projection described in the spec: every
// morphism is priced once, using the initialSize supplied to NewStaticView,
// and that price never changes for the lifetime of the view. It backs the
// Negatable and NegatableInfallible optimizers, which select a path by
// pricing every morphism as if it were applied directly to the original
// input, then only account for real size propagation during reconstruction.
//
// A StaticView is safe for concurrent use; it never mutates its Category and
// its price cache is populated once, at construction.
type StaticView struct {
	cat    *category.Category
	prices map[string]float64
}

// NewStaticView precomputes the price of every morphism in cat by calling
// its Apply with initialSize, and returns a view ready for repeated
// Successors queries.
//
// Complexity: O(|morphisms|) Apply calls, each assumed O(1) amortized.
func NewStaticView(cat *category.Category, initialSize any) *StaticView {
	ids := cat.Morphisms()
	prices := make(map[string]float64, len(ids))
	for _, id := range ids {
		m, _ := cat.GetMorphism(id)
		_, cost := m.Apply(initialSize)
		prices[id] = cost
	}

	return &StaticView{cat: cat, prices: prices}
}

// Price returns the precomputed size-constant cost of the morphism with the
// given ID. ok is false if the ID is unknown.
func (v *StaticView) Price(morphismID string) (cost float64, ok bool) {
	cost, ok = v.prices[morphismID]

	return cost, ok
}

// Successors returns n's outgoing edges under the size-constant projection:
//   - Obj(o) -> Mor(m) for every m in Category.Outgoing(o), weighted by the
//     precomputed price of m, in declaration order.
//   - Mor(m) -> Obj(m.Target), weighted zero.
//
// Complexity: O(out-degree(n)).
func (v *StaticView) Successors(n Node) ([]WeightedEdge, error) {
	if n.IsObject() {
		outs, ok := v.cat.Outgoing(n.ID)
		if !ok {
			return nil, fmt.Errorf("bigraph: unknown object %q", n.ID)
		}
		edges := make([]WeightedEdge, len(outs))
		for i, mid := range outs {
			edges[i] = WeightedEdge{To: Mor(mid), Weight: v.prices[mid]}
		}

		return edges, nil
	}

	m, ok := v.cat.GetMorphism(n.ID)
	if !ok {
		return nil, fmt.Errorf("bigraph: unknown morphism %q", n.ID)
	}

	return []WeightedEdge{{To: Obj(m.Target), Weight: 0}}, nil
}

// AllNodes enumerates every vertex of the bipartite projection: one Node per
// object, sorted lexicographically by ID since Category.Objects makes no
// ordering promise of its own (it is backed by a map), followed by one Node
// per morphism in Category.Morphisms' declaration order.
//
// The morphism ordering is not incidental: negate's Bellman-Ford pass builds
// its edge list by walking AllNodes, and a Mor node's zero-weight edge to its
// target object is what lets two sibling morphisms (same source, equal cost)
// compete for which one gets recorded as a shared target's predecessor
// within a single relaxation pass. Sorting morphisms by ID instead of
// declaration order would let a later-declared but alphabetically-earlier
// morphism win that tie, contradicting the stable-outgoing-order contract
// every optimizer in this module honors. Object ordering carries no such
// contract — objects never compete as siblings — so sorting them
// lexicographically is purely for reproducible enumeration.
//
// Complexity: O(|objects| log |objects| + |morphisms| log |morphisms|).
func (v *StaticView) AllNodes() []Node {
	objs := v.cat.Objects()
	sort.Strings(objs)
	mors := v.cat.Morphisms()
	nodes := make([]Node, 0, len(objs)+len(mors))
	for _, id := range objs {
		nodes = append(nodes, Obj(id))
	}
	for _, id := range mors {
		nodes = append(nodes, Mor(id))
	}

	return nodes
}

// Expand is the size-propagating step used by the Accumulating optimizer:
// it applies the named morphism to inputSize and returns the size that
// arrives at the morphism's target together with the step's cost. Unlike
// StaticView, there is no cacheable "projection" here — the spec is explicit
// that size-propagating weights depend on path history, so this is a plain
// function of (morphism, size-at-this-point-in-the-search), called fresh by
// the search for every state it expands.
//
// Complexity: one Apply call, assumed O(1) amortized.
func Expand(cat *category.Category, morphismID string, inputSize any) (outputSize any, cost float64, err error) {
	m, ok := cat.GetMorphism(morphismID)
	if !ok {
		return nil, 0, fmt.Errorf("bigraph: unknown morphism %q", morphismID)
	}
	outputSize, cost = m.Apply(inputSize)

	return outputSize, cost, nil
}

// Outgoing re-exposes Category.Outgoing so callers that only hold a
// *StaticView (rather than the underlying Category) can still enumerate an
// object's outgoing morphisms in declaration order. The accumulate package
// does not use it; it calls Category.Outgoing directly.
func (v *StaticView) Outgoing(objectID string) ([]string, bool) {
	return v.cat.Outgoing(objectID)
}
