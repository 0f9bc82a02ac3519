package dom

// Node lifetime is governed by two orthogonal mechanisms: the tree's
// ownership edge (a parent pins each child while the edge exists) and
// external pins taken with Refer by holders outside the tree, such as a
// scripting binding keeping a wrapper alive. A node's storage is reclaimed
// only when both are gone: the pin count is zero and the node has no
// parent. A removed node that is still pinned stays alive, detached, and
// re-insertable until its last holder releases it.

// Refer pins this node on behalf of an external holder.
func (n *Node) Refer() {
	if n.disposed {
		return
	}
	n.refCount++
}

// Unrefer releases one external pin. When the last pin is gone and the
// node has no parent, the node is reclaimed.
func (n *Node) Unrefer() {
	n.unrefer()
}

// Pinned returns the number of pins currently held on this node, the
// tree's ownership edge included.
func (n *Node) Pinned() int {
	return n.refCount
}

// Disposed reports whether this node's storage has been reclaimed.
// Disposed nodes reject further mutation with InvalidStateError.
func (n *Node) Disposed() bool {
	return n.disposed
}

func (n *Node) refer() {
	n.refCount++
}

func (n *Node) unrefer() {
	if n.disposed {
		return
	}
	n.refCount--
	if n.refCount <= 0 && n.parentNode == nil {
		n.dispose()
	}
}

// dispose reclaims the node: ownership of the child subtree is released
// (children without external pins are reclaimed with it), the payload is
// dropped, and the node is marked unusable.
func (n *Node) dispose() {
	n.disposed = true
	children := n.childNodes
	n.childNodes = nil
	for _, child := range children {
		child.parentNode = nil
		child.ownerDoc = nil
		child.refCount--
		if child.refCount <= 0 {
			child.dispose()
		}
	}
	n.elementData = nil
	n.charData = nil
	n.docTypeData = nil
	n.documentData = nil
	n.listeners = nil
	n.issuedBy = nil
	n.ownerDoc = nil
}
