package animated

import mapset "github.com/deckarep/golang-set/v2"

// flush recomputes every output leaf reachable from root.
//
// Discovery and recomputation are separate passes: a leaf can be fed by
// several independent sources, so it has to rebuild its whole output from
// its own upstream nodes rather than from the edge that changed. The visited
// set makes a leaf reachable along two paths recompute once.
func flush(root graphNode) {
	visited := mapset.NewThreadUnsafeSet[graphNode]()
	var leaves []output

	var find func(n graphNode)
	find = func(n graphNode) {
		for _, child := range n.base().children {
			if !visited.Add(child) {
				continue
			}
			if leaf, ok := child.(output); ok {
				leaves = append(leaves, leaf)
				continue
			}
			find(child)
		}
	}
	find(root)

	for _, leaf := range leaves {
		leaf.update()
	}
}
