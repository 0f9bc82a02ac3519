package dom

// TreeObserver receives notifications about tree mutations. Observers are
// the hook contract consumed by higher layers (layout, event subsystems).
// Hooks are invoked synchronously, in document order, and always after the
// structure is internally consistent: inserted nodes are linked and
// removed nodes unlinked before the hook runs. A hook that re-enters the
// mutation API is treated as an ordinary new top-level call.
type TreeObserver interface {
	// OnNodeInserted is called after node has been inserted under parent.
	OnNodeInserted(parent, node *Node)

	// OnNodeRemoved is called after node has been unlinked from oldParent.
	// The node's subtree is already detached from the document.
	OnNodeRemoved(oldParent, node *Node)

	// OnCharacterDataChanged is called after a text or comment payload
	// changed.
	OnCharacterDataChanged(node *Node, oldValue string)
}

// treeObservers stores registered observers per document.
var treeObservers = make(map[*Document][]TreeObserver)

// RegisterTreeObserver registers an observer for mutations in the given
// document's tree.
func RegisterTreeObserver(doc *Document, observer TreeObserver) {
	if doc == nil || observer == nil {
		return
	}
	treeObservers[doc] = append(treeObservers[doc], observer)
}

// UnregisterTreeObserver removes an observer from a document.
func UnregisterTreeObserver(doc *Document, observer TreeObserver) {
	if doc == nil {
		return
	}
	observers := treeObservers[doc]
	for i, o := range observers {
		if o == observer {
			treeObservers[doc] = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

// ClearTreeObservers removes all observers for a document.
func ClearTreeObservers(doc *Document) {
	delete(treeObservers, doc)
}

func notifyNodeInserted(doc *Document, parent, node *Node) {
	if doc == nil {
		return
	}
	for _, o := range treeObservers[doc] {
		o.OnNodeInserted(parent, node)
	}
}

func notifyNodeRemoved(doc *Document, oldParent, node *Node) {
	if doc == nil {
		return
	}
	for _, o := range treeObservers[doc] {
		o.OnNodeRemoved(oldParent, node)
	}
}

func notifyCharacterDataChanged(node *Node, oldValue string) {
	doc := node.ownerDoc
	if doc == nil || !doc.Live() {
		return
	}
	for _, o := range treeObservers[doc] {
		o.OnCharacterDataChanged(node, oldValue)
	}
}
