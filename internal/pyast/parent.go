package pyast

// ParentMap records each node's immediate parent. It is built once per rule
// invocation and passed alongside the tree so rules can walk upward without
// the tree itself being mutated.
type ParentMap map[*Node]*Node

// BuildParents indexes the parent of every node reachable from root.
func BuildParents(root *Node) ParentMap {
	pm := make(ParentMap)
	Walk(root, func(n *Node) bool {
		for _, c := range n.Children() {
			pm[c] = n
		}
		return true
	})
	return pm
}

// Parent returns the immediate parent of n, or nil at the root.
func (pm ParentMap) Parent(n *Node) *Node { return pm[n] }

// Enclosing walks upward from n (exclusive) and returns the first ancestor
// matching one of the given kinds, or nil.
func (pm ParentMap) Enclosing(n *Node, kinds ...Kind) *Node {
	for cur := pm[n]; cur != nil; cur = pm[cur] {
		for _, k := range kinds {
			if cur.Kind == k {
				return cur
			}
		}
	}
	return nil
}

// InsideCallTo reports whether n sits anywhere inside a call to the named
// plain function (walking upward through the parent map, n inclusive).
func (pm ParentMap) InsideCallTo(n *Node, name string) bool {
	for cur := n; cur != nil; cur = pm[cur] {
		if cur.Kind == Call && cur.Func != nil && cur.Func.Kind == Name && cur.Func.Name == name {
			return true
		}
	}
	return false
}
