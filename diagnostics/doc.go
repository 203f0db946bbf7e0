// Package diagnostics renders a category.Category as a Graphviz diagram: one
// box per object, one diamond per morphism, both emitted in lexicographic ID
// order.
// It never exposes the underlying bipartite projection used internally by
// the optimizer packages — only objects and morphisms, the vocabulary a
// category's own caller already uses.
//
// # Usage
//
//	dot := diagnostics.ToDOT(cat, diagnostics.Options{})
//	svg, err := diagnostics.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package diagnostics
