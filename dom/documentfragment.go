package dom

// DocumentFragment represents a minimal parentless container. Inserting a
// fragment into the tree spreads its children into the target and leaves
// the fragment empty.
type DocumentFragment Node

// NewDocumentFragment creates a new detached, empty document fragment.
func NewDocumentFragment() *DocumentFragment {
	return (*DocumentFragment)(newNode(DocumentFragmentNode, "#document-fragment"))
}

// AsNode returns the underlying Node.
func (df *DocumentFragment) AsNode() *Node {
	return (*Node)(df)
}

// Append appends nodes to this fragment.
func (df *DocumentFragment) Append(nodes ...*Node) {
	for _, node := range nodes {
		df.AsNode().AppendChild(node)
	}
}
