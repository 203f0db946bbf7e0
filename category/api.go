// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing the Category constructor
// and read-only getters.
// Policy:
//   - No search algorithms live here; this file only builds and queries.
//   - Category is immutable after BuildCategory returns.

package category

import (
	"fmt"
	"sort"
)

// BuildCategory validates objects and morphisms and assembles them into a
// Category, deriving the object -> outgoing-morphism index used by every
// optimizer in this module.
//
// Validation order (first failure wins):
//  1. Every object ID is non-empty and unique (ErrEmptyObjectID, ErrDuplicateID).
//  2. Then each morphism in slice order, all checks for one morphism before
//     the next: its ID is non-empty, it carries a non-nil Apply, its ID is
//     unique across both the morphism and object ID spaces
//     (ErrEmptyMorphismID, ErrNilApply, ErrDuplicateID), and its Source and
//     Target resolve to a supplied object (ErrDanglingReference).
//
// Morphisms are indexed into outgoing[source] in the order they appear in
// the morphisms slice; that declaration order is the tie-break contract used
// throughout the bigraph and optimizer packages, so callers that care about
// deterministic tie-breaking should pass morphisms in a stable order.
//
// Complexity: O(|objects| + |morphisms|).
func BuildCategory(objects []*Object, morphisms []*Morphism) (*Category, error) {
	cat := &Category{
		objects:   make(map[string]*Object, len(objects)),
		morphisms: make(map[string]*Morphism, len(morphisms)),
		outgoing:  make(map[string][]string, len(objects)),
	}

	for _, o := range objects {
		if o.ID == "" {
			return nil, ErrEmptyObjectID
		}
		if _, exists := cat.objects[o.ID]; exists {
			return nil, fmt.Errorf("%w: object %q", ErrDuplicateID, o.ID)
		}
		cat.objects[o.ID] = o
		if _, ok := cat.outgoing[o.ID]; !ok {
			cat.outgoing[o.ID] = nil
		}
	}

	for rank, m := range morphisms {
		if m.ID == "" {
			return nil, ErrEmptyMorphismID
		}
		if m.Apply == nil {
			return nil, fmt.Errorf("%w: morphism %q", ErrNilApply, m.ID)
		}
		if _, exists := cat.morphisms[m.ID]; exists {
			return nil, fmt.Errorf("%w: morphism %q", ErrDuplicateID, m.ID)
		}
		if _, exists := cat.objects[m.ID]; exists {
			return nil, fmt.Errorf("%w: morphism %q collides with an object ID", ErrDuplicateID, m.ID)
		}
		if _, ok := cat.objects[m.Source]; !ok {
			return nil, fmt.Errorf("%w: morphism %q source %q", ErrDanglingReference, m.ID, m.Source)
		}
		if _, ok := cat.objects[m.Target]; !ok {
			return nil, fmt.Errorf("%w: morphism %q target %q", ErrDanglingReference, m.ID, m.Target)
		}

		stored := &Morphism{ID: m.ID, Source: m.Source, Target: m.Target, Apply: m.Apply, rank: rank}
		cat.morphisms[m.ID] = stored
		cat.outgoing[m.Source] = append(cat.outgoing[m.Source], m.ID)
	}

	return cat, nil
}

// GetObject returns the object with the given ID, or ok=false if no such
// object exists. The returned pointer aliases the Category's storage; do not
// mutate it.
//
// Complexity: O(1).
func (c *Category) GetObject(id string) (obj *Object, ok bool) {
	obj, ok = c.objects[id]

	return obj, ok
}

// GetMorphism returns the morphism with the given ID, or ok=false if no such
// morphism exists.
//
// Complexity: O(1).
func (c *Category) GetMorphism(id string) (mor *Morphism, ok bool) {
	mor, ok = c.morphisms[id]

	return mor, ok
}

// Contains reports whether id names either a known object or a known
// morphism.
//
// Complexity: O(1).
func (c *Category) Contains(id string) bool {
	if _, ok := c.objects[id]; ok {
		return true
	}
	_, ok := c.morphisms[id]

	return ok
}

// Outgoing returns the IDs of morphisms whose Source is objectID, ordered by
// declaration order (BuildCategory's morphisms argument). The returned slice
// is a fresh copy; callers may mutate it freely. ok=false if objectID is not
// a known object.
//
// Complexity: O(out-degree of objectID).
func (c *Category) Outgoing(objectID string) (ids []string, ok bool) {
	list, exists := c.outgoing[objectID]
	if !exists {
		return nil, false
	}
	ids = make([]string, len(list))
	copy(ids, list)

	return ids, true
}

// Objects returns the IDs of every object in the category, in no particular
// order. Intended for diagnostics (see the diagnostics package) and tests,
// not for use inside a hot search loop.
//
// Complexity: O(|objects|).
func (c *Category) Objects() []string {
	ids := make([]string, 0, len(c.objects))
	for id := range c.objects {
		ids = append(ids, id)
	}

	return ids
}

// Morphisms returns the IDs of every morphism in the category, in
// declaration order (the order they were passed to BuildCategory, the same
// order rank tracks internally). Callers that need a deterministic,
// tie-break-consistent enumeration of every morphism — such as
// bigraph.StaticView.AllNodes — rely on this ordering; it is not merely
// incidental.
//
// Complexity: O(|morphisms| log |morphisms|).
func (c *Category) Morphisms() []string {
	ids := make([]string, 0, len(c.morphisms))
	for id := range c.morphisms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return c.morphisms[ids[i]].rank < c.morphisms[ids[j]].rank })

	return ids
}
