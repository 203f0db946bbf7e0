package diagnostics

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/optimorph/optimorph/category"
)

// Options configures category diagram rendering.
type Options struct {
	// ShowCosts has no effect: ToDOT does not read it and never labels
	// edges. Each morphism's ID is the label of its diamond node.
	ShowCosts bool
}

// ToDOT converts cat to Graphviz DOT format. Objects render as rounded
// boxes; morphisms render as diamonds wired Source -> morphism -> Target, so
// multiple morphisms sharing a (Source, Target) pair remain individually
// visible rather than collapsing into one edge.
func ToDOT(cat *category.Category, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("\n")

	for _, id := range sortedIDs(cat.Objects()) {
		fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=white, label=%q];\n", "obj:"+id, id)
	}
	buf.WriteString("\n")
	for _, id := range sortedIDs(cat.Morphisms()) {
		m, _ := cat.GetMorphism(id)
		fmt.Fprintf(&buf, "  %q [shape=diamond, style=filled, fillcolor=lightgrey, label=%q];\n", "mor:"+id, id)
		fmt.Fprintf(&buf, "  %q -> %q;\n", "obj:"+m.Source, "mor:"+id)
		fmt.Fprintf(&buf, "  %q -> %q;\n", "mor:"+id, "obj:"+m.Target)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders a DOT graph produced by ToDOT to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("diagnostics: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("diagnostics: render: %w", err)
	}

	return buf.Bytes(), nil
}

// sortedIDs returns ids in lexicographic order. Category.Objects makes no
// ordering guarantee, and sorting Category.Morphisms' declaration-ordered
// IDs too keeps DOT output independent of declaration order, for
// diffability.
func sortedIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)

	return out
}
