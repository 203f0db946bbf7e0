package negate

import (
	"fmt"

	"github.com/optimorph/optimorph/bigraph"
	"github.com/optimorph/optimorph/category"
	"github.com/optimorph/optimorph/composite"
)

// edge is one materialized edge of the bipartite projection, cached once so
// both the relaxation passes and the reverse-reachability BFS can reuse it.
type edge struct {
	From   bigraph.Node
	To     bigraph.Node
	Weight float64
}

// Optimize finds a minimum-cost CompositeMorphism from sourceID to targetID
// in cat, pricing every morphism once against initialSize via a
// bigraph.StaticView. It returns ErrNegativeCycle if a negative cycle
// reachable from sourceID and able to reach targetID exists.
func Optimize(cat *category.Category, sourceID, targetID string, initialSize any, opts ...Option) (*composite.CompositeMorphism, error) {
	path, negCycle, err := run(cat, sourceID, targetID, initialSize, opts...)
	if err != nil {
		return nil, err
	}
	if negCycle {
		return nil, fmt.Errorf("%w: between %q and %q", ErrNegativeCycle, sourceID, targetID)
	}

	return composite.Reconstruct(cat, path, initialSize)
}

// OptimizeInfallible finds a minimum-cost CompositeMorphism from sourceID to
// targetID in cat the same way Optimize does, except a negative cycle that
// affects the source-to-target cost never produces an error: instead, the
// best path found within |V|-1 relaxation passes is reconstructed and
// returned with NegativeCycleObserved set to true. When the predecessor
// chain from the target loops inside the cycle without reaching the source,
// the path along which the target was first reached is returned instead.
func OptimizeInfallible(cat *category.Category, sourceID, targetID string, initialSize any, opts ...Option) (*composite.CompositeMorphism, error) {
	path, negCycle, err := run(cat, sourceID, targetID, initialSize, opts...)
	if err != nil {
		return nil, err
	}

	result, err := composite.Reconstruct(cat, path, initialSize)
	if err != nil {
		return nil, err
	}
	result.NegativeCycleObserved = negCycle

	return result, nil
}

// run performs the shared validation and Bellman-Ford search for Optimize
// and OptimizeInfallible, returning the winning node sequence and whether a
// negative cycle affects the source-to-target cost.
func run(cat *category.Category, sourceID, targetID string, initialSize any, opts ...Option) (path []bigraph.Node, negCycle bool, err error) {
	if cat == nil {
		return nil, false, ErrNilCategory
	}
	if _, ok := cat.GetObject(sourceID); !ok {
		return nil, false, fmt.Errorf("%w: source %q", ErrUnknownObject, sourceID)
	}
	if _, ok := cat.GetObject(targetID); !ok {
		return nil, false, fmt.Errorf("%w: target %q", ErrUnknownObject, targetID)
	}

	source := bigraph.Obj(sourceID)
	target := bigraph.Obj(targetID)
	if sourceID == targetID {
		return []bigraph.Node{source}, false, nil
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.Logger

	view := bigraph.NewStaticView(cat, initialSize)
	nodes := view.AllNodes()

	edges := make([]edge, 0, 2*len(nodes))
	for _, n := range nodes {
		succ, serr := view.Successors(n)
		if serr != nil {
			return nil, false, fmt.Errorf("negate: %w", serr)
		}
		for _, e := range succ {
			edges = append(edges, edge{From: n, To: e.To, Weight: e.Weight})
		}
	}

	dist := map[bigraph.Node]float64{source: 0}
	pred := map[bigraph.Node]bigraph.Node{}
	// firstPred records the edge each node was first reached by. Every entry
	// points at a node reached earlier, so its chains always end at source.
	firstPred := map[bigraph.Node]bigraph.Node{}

	for pass := 0; pass < len(nodes)-1; pass++ {
		changed := false
		for _, e := range edges {
			d, ok := dist[e.From]
			if !ok {
				continue
			}
			if nd := d + e.Weight; nd < getOr(dist, e.To, 0) || !hasNode(dist, e.To) {
				if !hasNode(dist, e.To) {
					firstPred[e.To] = e.From
				}
				dist[e.To] = nd
				pred[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			break
		}
		logger.Debug("relaxation pass complete", "pass", pass)
	}

	cycleNodes := map[bigraph.Node]bool{}
	for _, e := range edges {
		d, ok := dist[e.From]
		if !ok {
			continue
		}
		if nd := d + e.Weight; nd < getOr(dist, e.To, 0) || !hasNode(dist, e.To) {
			cycleNodes[e.To] = true
		}
	}

	if len(cycleNodes) > 0 {
		reverse := map[bigraph.Node][]bigraph.Node{}
		for _, e := range edges {
			reverse[e.To] = append(reverse[e.To], e.From)
		}
		canReachTarget := bfs(reverse, target)
		for v := range cycleNodes {
			if canReachTarget[v] {
				negCycle = true

				break
			}
		}
	}

	if _, ok := dist[target]; !ok {
		return nil, negCycle, fmt.Errorf("%w: no path from %q to %q", ErrUnreachable, sourceID, targetID)
	}

	path = reconstructPath(pred, target, source)
	if pred[path[1]] != source {
		// The pred chain looped inside a negative cycle without reaching
		// source; use the path along which target was first reached instead.
		path = reconstructPath(firstPred, target, source)
	}

	return path, negCycle, nil
}

// bfs returns the set of nodes reachable from start by following adj,
// ignoring weights — used to test whether a candidate cycle node can still
// reach the target.
func bfs(adj map[bigraph.Node][]bigraph.Node, start bigraph.Node) map[bigraph.Node]bool {
	visited := map[bigraph.Node]bool{start: true}
	queue := []bigraph.Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range adj[n] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return visited
}

// reconstructPath walks pred backwards from target to source and returns the
// forward node sequence composite.Reconstruct expects.
//
// visited guards against a predecessor chain that cycles without ever
// passing through source — possible when an unresolved negative cycle lies
// between source and target and the snapshot of pred taken after the fixed
// number of relaxation passes points entirely within that cycle. When this
// happens the walk stops at the repeated node and splices source in
// directly rather than looping forever; the result is then not a valid
// path, and run detects this and walks firstPred instead.
func reconstructPath(pred map[bigraph.Node]bigraph.Node, target, source bigraph.Node) []bigraph.Node {
	rev := []bigraph.Node{target}
	visited := map[bigraph.Node]bool{target: true}
	cur := target
	for cur != source {
		next, ok := pred[cur]
		if !ok || visited[next] {
			break
		}
		visited[next] = true
		cur = next
		rev = append(rev, cur)
	}
	if cur != source {
		rev = append(rev, source)
	}
	path := make([]bigraph.Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}

	return path
}

func hasNode(dist map[bigraph.Node]float64, n bigraph.Node) bool {
	_, ok := dist[n]

	return ok
}

func getOr(dist map[bigraph.Node]float64, n bigraph.Node, fallback float64) float64 {
	if v, ok := dist[n]; ok {
		return v
	}

	return fallback
}
