package dom

// NodeList represents a collection of nodes. It is either live (a view of
// a parent's current children) or static (a snapshot).
type NodeList struct {
	parent      *Node
	staticNodes []*Node
	isLive      bool
}

// newNodeList creates a live NodeList over the given parent's children.
func newNodeList(parent *Node) *NodeList {
	return &NodeList{parent: parent, isLive: true}
}

// NewStaticNodeList creates a static NodeList from a slice of nodes.
func NewStaticNodeList(nodes []*Node) *NodeList {
	staticCopy := make([]*Node, len(nodes))
	copy(staticCopy, nodes)
	return &NodeList{staticNodes: staticCopy}
}

// Length returns the number of nodes in the collection.
func (nl *NodeList) Length() int {
	if nl.isLive {
		return len(nl.parent.childNodes)
	}
	return len(nl.staticNodes)
}

// Item returns the node at the given index, or nil if out of bounds.
func (nl *NodeList) Item(index int) *Node {
	nodes := nl.staticNodes
	if nl.isLive {
		nodes = nl.parent.childNodes
	}
	if index < 0 || index >= len(nodes) {
		return nil
	}
	return nodes[index]
}

// ForEach calls fn for each node in the collection.
func (nl *NodeList) ForEach(fn func(node *Node, index int)) {
	nodes := nl.staticNodes
	if nl.isLive {
		nodes = nl.parent.childNodes
	}
	for i, node := range nodes {
		fn(node, i)
	}
}

// ToSlice returns the collection's nodes as a fresh slice.
func (nl *NodeList) ToSlice() []*Node {
	nodes := nl.staticNodes
	if nl.isLive {
		nodes = nl.parent.childNodes
	}
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	return out
}
