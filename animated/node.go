package animated

import "slices"

// graphNode is implemented by every node in the graph. attach and detach
// are called when a node gains its first dependent and loses its last one.
type graphNode interface {
	base() *nodeBase
	attach()
	detach()
}

// output is a leaf that recomputes its full value from its upstream nodes
// and pushes it somewhere outside the graph.
type output interface {
	graphNode
	update()
}

// Scalar is a numeric node that other nodes can derive from.
type Scalar interface {
	graphNode
	Value() float64
}

type nodeBase struct {
	children []graphNode
}

func (b *nodeBase) base() *nodeBase {
	return b
}

// NumDependents reports how many nodes currently derive from this one.
func (b *nodeBase) NumDependents() int {
	return len(b.children)
}

func addChild(parent, child graphNode) {
	b := parent.base()
	if slices.Contains(b.children, child) {
		return
	}
	if len(b.children) == 0 {
		parent.attach()
	}
	b.children = append(b.children, child)
}

func removeChild(parent, child graphNode) {
	b := parent.base()
	idx := slices.Index(b.children, child)
	if idx < 0 {
		return
	}
	b.children = slices.Delete(b.children, idx, idx+1)
	if len(b.children) == 0 {
		parent.detach()
	}
}
