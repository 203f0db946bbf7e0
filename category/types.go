// Package category defines the central Category, Object, and Morphism types:
// a read-only, indexed collection of user-supplied objects and the morphisms
// that connect them.
//
// A Category is built once via BuildCategory and never mutated afterwards.
// Optimizers elsewhere in this module treat a *Category as a read-only data
// source, which is what makes concurrent optimizations over the same
// Category safe: there is no lock here because there is nothing left to
// protect once construction has returned.
//
// This file declares Object, Morphism, ApplyFunc, Category, and the sentinel
// errors of this package. BuildCategory returns the first five; the Category
// accessors report a missing ID through their ok result, and no function in
// this package returns ErrUnknownObject or ErrUnknownMorphism.
//
// Errors:
//
//	ErrEmptyObjectID     - an Object was supplied with an empty ID.
//	ErrEmptyMorphismID   - a Morphism was supplied with an empty ID.
//	ErrNilApply          - a Morphism was supplied without an Apply function.
//	ErrDuplicateID       - two objects/morphisms share an ID.
//	ErrDanglingReference - a morphism's Source or Target resolves to nothing.
//	ErrUnknownObject     - a requested object ID is not present.
//	ErrUnknownMorphism   - a requested morphism ID is not present.
package category

import "errors"

// Sentinel errors for category construction and lookup.
var (
	// ErrEmptyObjectID indicates an Object was supplied with an empty ID.
	ErrEmptyObjectID = errors.New("category: object ID is empty")

	// ErrEmptyMorphismID indicates a Morphism was supplied with an empty ID.
	ErrEmptyMorphismID = errors.New("category: morphism ID is empty")

	// ErrNilApply indicates a Morphism was supplied without an Apply function.
	ErrNilApply = errors.New("category: morphism has a nil Apply function")

	// ErrDuplicateID indicates two objects, two morphisms, or an object and a
	// morphism share the same ID.
	ErrDuplicateID = errors.New("category: duplicate ID")

	// ErrDanglingReference indicates a morphism's Source or Target does not
	// resolve to any object passed to BuildCategory.
	ErrDanglingReference = errors.New("category: dangling object reference")

	// ErrUnknownObject indicates a requested object ID is not present in the
	// category.
	ErrUnknownObject = errors.New("category: unknown object")

	// ErrUnknownMorphism indicates a requested morphism ID is not present in
	// the category.
	ErrUnknownMorphism = errors.New("category: unknown morphism")
)

// ApplyFunc is the capability every Morphism carries: given the size arriving
// at the morphism's Source, it returns the size that will arrive at Target
// and the cost of making that transition.
//
// Apply must be pure and deterministic for the duration of one optimizer
// call; it may cache internally, but two calls with an identical inputSize
// during the same optimization must return identical results. Apply does not
// report failure: a morphism that cannot compute for some input must not be
// placed in the category in the first place.
type ApplyFunc func(inputSize any) (outputSize any, cost float64)

// Object is a vertex in the user-facing category. ID is unique within a
// Category; Payload is opaque to the core and is never inspected, compared,
// or copied during optimization.
type Object struct {
	// ID uniquely identifies this Object within its Category.
	ID string

	// Payload stores arbitrary user data. The core only ever borrows it by
	// reference through GetObject; it is never deep-copied.
	Payload any
}

// Morphism is a uniquely identified, directed transformation between two
// objects. Apply may be invoked several times for the same morphism during a
// single optimizer call: while the path is selected and again when
// composite.Reconstruct re-applies the chosen path.
type Morphism struct {
	// ID uniquely identifies this morphism across the whole Category.
	ID string

	// Source and Target are the Object IDs this morphism connects.
	Source string
	Target string

	// Apply computes (output size, cost) for a given input size.
	Apply ApplyFunc

	// rank records the position of this morphism in the slice passed to
	// BuildCategory. Morphisms() sorts by it to return declaration order,
	// which bigraph.StaticView.AllNodes relies on for tie-breaking.
	rank int
}

// Category is the read-only collection of objects and morphisms produced by
// BuildCategory, plus the derived object -> outgoing-morphism index that
// optimizers search over. The zero value is not usable; always obtain a
// Category from BuildCategory.
type Category struct {
	objects   map[string]*Object
	morphisms map[string]*Morphism

	// outgoing[o] lists the IDs of morphisms with Source == o, ordered by
	// rank (the order they were declared in BuildCategory's morphisms
	// argument). This ordering is the stable tie-break contract consumed by
	// the bigraph and optimizer packages.
	outgoing map[string][]string
}
