package accumulate

import (
	"container/heap"
	"fmt"

	"github.com/optimorph/optimorph/bigraph"
	"github.com/optimorph/optimorph/category"
	"github.com/optimorph/optimorph/composite"
)

// Optimize finds a minimum-cost CompositeMorphism from sourceID to targetID
// in cat, pricing every morphism with bigraph.Expand against the size that
// actually accumulates along the candidate path being extended.
//
// Complexity: O((V + E) log V); see the package doc for the full accounting.
func Optimize(cat *category.Category, sourceID, targetID string, initialSize any, opts ...Option) (*composite.CompositeMorphism, error) {
	if cat == nil {
		return nil, ErrNilCategory
	}
	if _, ok := cat.GetObject(sourceID); !ok {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownObject, sourceID)
	}
	if _, ok := cat.GetObject(targetID); !ok {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownObject, targetID)
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.Logger

	source := bigraph.Obj(sourceID)
	target := bigraph.Obj(targetID)

	if sourceID == targetID {
		return composite.Reconstruct(cat, []bigraph.Node{source}, initialSize)
	}

	bestCost := map[bigraph.Node]float64{source: 0}
	bestSize := map[bigraph.Node]any{source: initialSize}
	pred := map[bigraph.Node]bigraph.Node{}
	closed := map[bigraph.Node]bool{}

	seq := 0
	pq := &nodePQ{{node: source, cost: 0, size: initialSize, seq: seq}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if closed[cur.node] {
			continue
		}
		if cur.cost > bestCost[cur.node] {
			continue
		}
		closed[cur.node] = true
		logger.Debug("closing node", "node", cur.node.String(), "cost", cur.cost)

		// Closing target does not end the search: an unexplored branch
		// elsewhere in the frontier may still contain a negative-cost
		// morphism, and Accumulating must surface that as a fatal error
		// even when it would never have won on cost. The search keeps
		// draining the heap until every reachable state has been closed.
		if cur.node.IsObject() {
			outs, ok := cat.Outgoing(cur.node.ID)
			if !ok {
				continue
			}
			// outs preserves declaration order. Each Mor(mid) below is
			// priced with its own step cost right away — the Obj->Mor edge
			// weight bigraph.StaticView also uses for negate — rather than
			// deferring pricing to when the Mor node is popped; deferring it
			// would push every sibling with the same priority (cur.cost) and
			// leave their relative order to container/heap's internal swap
			// pattern, which is not FIFO once three or more entries tie.
			// Pricing immediately still leaves genuine cost ties between
			// siblings (e.g. two morphisms of equal cost), which seq below
			// resolves in declaration order.
			for _, mid := range outs {
				next := bigraph.Mor(mid)
				if closed[next] {
					continue
				}
				outputSize, stepCost, err := bigraph.Expand(cat, mid, cur.size)
				if err != nil {
					return nil, fmt.Errorf("accumulate: %w", err)
				}
				if stepCost < 0 {
					return nil, fmt.Errorf("%w: morphism %q", ErrNegativeCostInAccumulating, mid)
				}
				newCost := cur.cost + stepCost
				if prev, seen := bestCost[next]; !seen || newCost < prev {
					bestCost[next] = newCost
					bestSize[next] = outputSize
					pred[next] = cur.node
					seq++
					heap.Push(pq, pqItem{node: next, cost: newCost, size: outputSize, seq: seq})
				}
			}

			continue
		}

		m, _ := cat.GetMorphism(cur.node.ID)
		next := bigraph.Obj(m.Target)
		if closed[next] {
			continue
		}
		if prev, seen := bestCost[next]; !seen || cur.cost < prev {
			bestCost[next] = cur.cost
			bestSize[next] = cur.size
			pred[next] = cur.node
			seq++
			heap.Push(pq, pqItem{node: next, cost: cur.cost, size: cur.size, seq: seq})
		}
	}

	if !closed[target] {
		return nil, fmt.Errorf("%w: no path from %q to %q", ErrUnreachable, sourceID, targetID)
	}

	path := reconstructPath(pred, target, source)

	return composite.Reconstruct(cat, path, initialSize)
}

// reconstructPath walks pred backwards from target to source and returns the
// forward node sequence Reconstruct expects.
func reconstructPath(pred map[bigraph.Node]bigraph.Node, target, source bigraph.Node) []bigraph.Node {
	rev := []bigraph.Node{target}
	cur := target
	for cur != source {
		cur = pred[cur]
		rev = append(rev, cur)
	}
	path := make([]bigraph.Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}

	return path
}

// pqItem is one entry of the best-first search's priority queue. seq is the
// order this item was pushed in, used only to break cost ties.
type pqItem struct {
	node bigraph.Node
	cost float64
	size any
	seq  int
}

// nodePQ is a min-heap of pqItem ordered by cost, falling back to seq on a
// tie. container/heap does not preserve push order among equal-priority
// entries once three or more are live at once, so relying on its internal
// swap pattern for tie-breaking is not safe; seq makes the first-pushed
// (i.e. first-declared, since Optimize pushes outgoing morphisms in
// Category.Outgoing order) equal-cost entry win explicitly.
type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
