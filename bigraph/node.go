// Package bigraph projects a category.Category into the bipartite graph the
// spec describes: one vertex kind per object, one vertex kind per morphism.
// Lifting morphisms into the vertex space is what lets multiple morphisms
// share a (source, target) pair while staying individually addressable —
// something a plain adjacency map keyed by endpoint pair cannot represent.
//
// The projection is purely virtual: NewStaticView and Expand compute
// successors on demand from the Category they were handed, never
// materializing an adjacency structure of their own. This file declares the
// Node type; view.go declares the two successor projections described in
// the spec (size-constant and size-propagating).
package bigraph

import "fmt"

// Kind distinguishes the two vertex kinds of the bipartite projection.
type Kind uint8

const (
	// ObjectKind marks a Node that stands in for a category.Object.
	ObjectKind Kind = iota
	// MorphismKind marks a Node that stands in for a category.Morphism.
	MorphismKind
)

// Node is a vertex of the bipartite projection: either an object or a
// morphism, never both. Node is comparable and safe to use as a map key,
// which optimizers rely on for closed sets and predecessor tables.
type Node struct {
	Kind Kind
	ID   string
}

// Obj constructs a Node standing in for the object with the given ID.
func Obj(id string) Node { return Node{Kind: ObjectKind, ID: id} }

// Mor constructs a Node standing in for the morphism with the given ID.
func Mor(id string) Node { return Node{Kind: MorphismKind, ID: id} }

// IsObject reports whether n represents a category.Object.
func (n Node) IsObject() bool { return n.Kind == ObjectKind }

// IsMorphism reports whether n represents a category.Morphism.
func (n Node) IsMorphism() bool { return n.Kind == MorphismKind }

// String renders n as "Obj(id)" or "Mor(id)", primarily for error messages
// and test failure output.
func (n Node) String() string {
	if n.IsObject() {
		return fmt.Sprintf("Obj(%s)", n.ID)
	}

	return fmt.Sprintf("Mor(%s)", n.ID)
}
