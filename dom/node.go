package dom

import "strings"

// Node represents a node in the document tree. It is the base from which
// Document, Element, Text, Comment, DocumentType, and DocumentFragment
// derive their typed views.
//
// Children are held in an ordered slice; each child's parentNode points
// back at its parent. The parent edge is the only strong ownership edge in
// the tree: a parent pins each of its children for as long as the edge
// exists (see refcount.go). Sibling accessors are derived by locating the
// node in its parent's child sequence.
type Node struct {
	eventTarget

	nodeType   NodeType
	nodeName   string
	parentNode *Node
	childNodes []*Node

	// ownerDoc follows the attach cycle: set for every node of a subtree
	// when it connects to a live document, cleared when it disconnects.
	ownerDoc *Document

	// Type-specific payload; at most one is non-nil, chosen by nodeType.
	elementData  *elementData
	charData     *string
	docTypeData  *docTypeData
	documentData *documentData

	refCount int
	disposed bool
}

// elementData holds data specific to Element nodes. Attributes are a plain
// name/value map; the full attribute model (namespaces, Attr nodes) is a
// higher layer's concern, but the map participates in the clone contract.
type elementData struct {
	localName  string
	tagName    string
	attributes map[string]string
}

// docTypeData holds data specific to DocumentType nodes.
type docTypeData struct {
	name     string
	publicID string
	systemID string
}

// documentData holds data specific to Document nodes.
type documentData struct {
	// live reports whether the document is a live root: nodes under a live
	// document count as connected. Close() clears it.
	live bool

	// nextTargetID hands out document-scoped event-target identities.
	nextTargetID uint64
}

// newNode creates a detached node with the given type and name. Nodes are
// born without a parent and without a document association.
func newNode(nodeType NodeType, nodeName string) *Node {
	return &Node{nodeType: nodeType, nodeName: nodeName}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node.
// For elements, this is the tag name in uppercase.
// For text nodes, "#text"; comments, "#comment"; documents, "#document";
// document fragments, "#document-fragment"; doctypes, the doctype name.
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the character data payload of a text or comment node,
// or an empty string for other node types.
func (n *Node) NodeValue() string {
	if n.charData != nil {
		return *n.charData
	}
	return ""
}

// SetNodeValue sets the character data payload of a text or comment node.
// For other node types this is a no-op.
func (n *Node) SetNodeValue(value string) {
	switch n.nodeType {
	case TextNode, CommentNode:
		old := ""
		if n.charData != nil {
			old = *n.charData
		}
		n.charData = &value
		notifyCharacterDataChanged(n, old)
	}
}

// OwnerDocument returns the Document whose tree this node is currently part
// of, or nil if the node is detached. For Document nodes this returns nil.
func (n *Node) OwnerDocument() *Document {
	if n.nodeType == DocumentNode {
		return nil
	}
	return n.ownerDoc
}

// ParentNode returns the parent of this node, or nil if detached.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ChildNodes returns a live NodeList of child nodes.
func (n *Node) ChildNodes() *NodeList {
	return newNodeList(n)
}

// FirstChild returns the first child node, or nil if there are no children.
func (n *Node) FirstChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[0]
}

// LastChild returns the last child node, or nil if there are no children.
func (n *Node) LastChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[len(n.childNodes)-1]
}

// childIndex returns the position of child in n's child sequence, or -1.
func (n *Node) childIndex(child *Node) int {
	for i, c := range n.childNodes {
		if c == child {
			return i
		}
	}
	return -1
}

// PreviousSibling returns the sibling immediately before this node, or nil.
func (n *Node) PreviousSibling() *Node {
	if n.parentNode == nil {
		return nil
	}
	if i := n.parentNode.childIndex(n); i > 0 {
		return n.parentNode.childNodes[i-1]
	}
	return nil
}

// NextSibling returns the sibling immediately after this node, or nil.
func (n *Node) NextSibling() *Node {
	if n.parentNode == nil {
		return nil
	}
	if i := n.parentNode.childIndex(n); i >= 0 && i+1 < len(n.parentNode.childNodes) {
		return n.parentNode.childNodes[i+1]
	}
	return nil
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return len(n.childNodes) > 0
}

// GetRootNode returns the root of the tree containing this node.
func (n *Node) GetRootNode() *Node {
	root := n
	for root.parentNode != nil {
		root = root.parentNode
	}
	return root
}

// IsConnected reports whether the node is part of a live document's tree.
// It is always computed from the ancestor chain, never stored.
func (n *Node) IsConnected() bool {
	root := n.GetRootNode()
	if root.nodeType != DocumentNode {
		return false
	}
	return (*Document)(root).Live()
}

// Contains returns true if other is this node or a descendant of it.
func (n *Node) Contains(other *Node) bool {
	for node := other; node != nil; node = node.parentNode {
		if node == n {
			return true
		}
	}
	return false
}

// IsSameNode returns true if this node and other are the same node.
func (n *Node) IsSameNode(other *Node) bool {
	return n == other
}

// AppendChild adds a node to the end of the list of children of this node.
// For the error-returning version, use AppendChildWithError.
func (n *Node) AppendChild(child *Node) *Node {
	result, _ := n.AppendChildWithError(child)
	return result
}

// AppendChildWithError adds a node to the end of the list of children of
// this node. If child already has a parent it is first removed from it.
func (n *Node) AppendChildWithError(child *Node) (*Node, error) {
	return n.InsertBeforeWithError(child, nil)
}

// InsertBefore inserts a node before a reference child node. If refChild is
// nil, the node is appended to the end. For the error-returning version,
// use InsertBeforeWithError.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	result, _ := n.InsertBeforeWithError(newChild, refChild)
	return result
}

// InsertBeforeWithError inserts a node before a reference child node.
// If refChild is nil, the node is appended to the end. No structural change
// happens unless every precondition holds.
func (n *Node) InsertBeforeWithError(newChild, refChild *Node) (*Node, error) {
	if err := n.validatePreInsertion(newChild, refChild); err != nil {
		return nil, err
	}
	return n.insertBefore(newChild, refChild)
}

// validatePreInsertion implements the pre-insertion validation steps.
func (n *Node) validatePreInsertion(node, child *Node) error {
	return n.validateInsertionOrReplace(node, child, false)
}

func (n *Node) validatePreReplace(node, child *Node) error {
	return n.validateInsertionOrReplace(node, child, true)
}

func (n *Node) validateInsertionOrReplace(node, child *Node, isReplace bool) error {
	if node == nil {
		return ErrNotFound("The node to be inserted is null.")
	}
	if n.disposed || node.disposed {
		return ErrInvalidState("The node has been reclaimed and can no longer be used.")
	}

	if !n.canHaveChildren() {
		return ErrHierarchyRequest("The operation would yield an incorrect node tree.")
	}

	// Cycle check: walking up from the parent must not reach node.
	if n.isInclusiveAncestor(node) {
		return ErrHierarchyRequest("The new child contains the parent.")
	}

	if child != nil && child.parentNode != n {
		if isReplace {
			return ErrNotFound("The node to be replaced is not a child of this node.")
		}
		return ErrNotFound("The node before which the new node is to be inserted is not a child of this node.")
	}

	if node.nodeType == DocumentNode {
		return ErrHierarchyRequest("The operation would yield an incorrect node tree.")
	}
	if node.nodeType == TextNode && n.nodeType == DocumentNode {
		return ErrHierarchyRequest("Cannot insert a Text node as a direct child of a Document.")
	}
	if node.nodeType == DocumentTypeNode && n.nodeType != DocumentNode {
		return ErrHierarchyRequest("DocumentType nodes can only be children of a Document.")
	}

	if n.nodeType == DocumentNode {
		return n.validateDocumentInsertionOrReplace(node, child, isReplace)
	}
	return nil
}

// canHaveChildren returns true if this node can have child nodes.
func (n *Node) canHaveChildren() bool {
	switch n.nodeType {
	case DocumentNode, DocumentFragmentNode, ElementNode:
		return true
	default:
		return false
	}
}

// isInclusiveAncestor returns true if node is this node or an ancestor of it.
func (n *Node) isInclusiveAncestor(node *Node) bool {
	for current := n; current != nil; current = current.parentNode {
		if current == node {
			return true
		}
	}
	return false
}

// validateDocumentInsertionOrReplace enforces the document child-placement
// rules: at most one element child, at most one doctype, doctype before the
// document element. When isReplace is true the replaced child is excluded
// from the counts.
func (n *Node) validateDocumentInsertionOrReplace(node, child *Node, isReplace bool) error {
	var exclude *Node
	if isReplace {
		exclude = child
	}

	switch node.nodeType {
	case DocumentFragmentNode:
		elementCount := 0
		for _, c := range node.childNodes {
			switch c.nodeType {
			case ElementNode:
				elementCount++
			case TextNode:
				return ErrHierarchyRequest("Cannot insert a Text node as a direct child of a Document.")
			}
		}
		if elementCount > 1 {
			return ErrHierarchyRequest("Document can have only one element child.")
		}
		if elementCount == 1 {
			if n.hasElementChildExcluding(exclude) {
				return ErrHierarchyRequest("Document already has a document element.")
			}
			if child != nil && !(isReplace && child.nodeType == ElementNode) {
				if child.nodeType == DocumentTypeNode || n.doctypeFollows(child) {
					return ErrHierarchyRequest("Cannot insert an element before the doctype.")
				}
			}
		}

	case ElementNode:
		if n.hasElementChildExcluding(exclude) {
			return ErrHierarchyRequest("Document already has a document element.")
		}
		if child != nil && !(isReplace && child.nodeType == ElementNode) {
			if child.nodeType == DocumentTypeNode || n.doctypeFollows(child) {
				return ErrHierarchyRequest("Cannot insert an element before the doctype.")
			}
		}

	case DocumentTypeNode:
		if n.hasDoctypeExcluding(exclude) {
			return ErrHierarchyRequest("Document already has a doctype.")
		}
		if n.hasElementChildExcluding(exclude) {
			if child == nil || n.elementPrecedesExcluding(child, exclude) {
				return ErrHierarchyRequest("Cannot insert a doctype after the document element.")
			}
		}
	}
	return nil
}

// hasElementChildExcluding returns true if this node has an element child
// other than exclude.
func (n *Node) hasElementChildExcluding(exclude *Node) bool {
	for _, c := range n.childNodes {
		if c != exclude && c.nodeType == ElementNode {
			return true
		}
	}
	return false
}

// hasDoctypeExcluding returns true if this node has a doctype child other
// than exclude.
func (n *Node) hasDoctypeExcluding(exclude *Node) bool {
	for _, c := range n.childNodes {
		if c != exclude && c.nodeType == DocumentTypeNode {
			return true
		}
	}
	return false
}

// doctypeFollows returns true if a doctype node follows the given child.
func (n *Node) doctypeFollows(child *Node) bool {
	i := n.childIndex(child)
	if i < 0 {
		return false
	}
	for _, c := range n.childNodes[i+1:] {
		if c.nodeType == DocumentTypeNode {
			return true
		}
	}
	return false
}

// elementPrecedesExcluding returns true if an element node other than
// exclude precedes the given child.
func (n *Node) elementPrecedesExcluding(child, exclude *Node) bool {
	for _, c := range n.childNodes {
		if c == child {
			return false
		}
		if c != exclude && c.nodeType == ElementNode {
			return true
		}
	}
	return false
}

// insertBefore performs the structural insertion after validation passed.
func (n *Node) insertBefore(newChild, refChild *Node) (*Node, error) {
	// A DocumentFragment spreads its children into the parent; the fragment
	// itself is left empty and detached.
	if newChild.nodeType == DocumentFragmentNode {
		children := make([]*Node, len(newChild.childNodes))
		copy(children, newChild.childNodes)
		for _, child := range children {
			if err := n.insertOne(child, refChild); err != nil {
				return nil, err
			}
		}
		return newChild, nil
	}

	// Inserting a node before itself is a no-op.
	if newChild == refChild {
		return newChild, nil
	}

	if err := n.insertOne(newChild, refChild); err != nil {
		return nil, err
	}
	return newChild, nil
}

// insertOne links a single node into the child sequence before refChild
// (append when nil), moving it out of any current parent first, then
// propagates document association and fires the insertion notification.
// The notification runs only once the structure is fully consistent, so a
// hook that re-enters the mutation API observes an ordinary tree.
func (n *Node) insertOne(newChild, refChild *Node) error {
	// Hold a pin across the move so an unpinned node is not reclaimed
	// between leaving its old parent and joining the new one.
	newChild.refer()
	defer newChild.unrefer()

	// Detach-then-reattach: an implicit removal is a real removal,
	// notifications included.
	if newChild.parentNode != nil {
		newChild.parentNode.removeChildNode(newChild)
	}

	// The removal may have fired hooks that re-entered the mutation API, so
	// the operands are re-checked against the current shape before linking.
	// A hook that claimed newChild for another parent wins; linking it here
	// as well would give the node two positions in the tree.
	if newChild.parentNode != nil {
		return ErrInvalidState("The node was claimed by another parent during the move.")
	}
	if n.disposed {
		return ErrInvalidState("The node has been reclaimed and can no longer be used.")
	}

	// Compute the slot only after the detach above: removing newChild from
	// this same parent would have shifted the index.
	idx := len(n.childNodes)
	if refChild != nil {
		idx = n.childIndex(refChild)
		if idx < 0 {
			return ErrNotFound("The node before which the new node is to be inserted is not a child of this node.")
		}
	}

	n.childNodes = append(n.childNodes, nil)
	copy(n.childNodes[idx+1:], n.childNodes[idx:])
	n.childNodes[idx] = newChild
	newChild.parentNode = n
	newChild.refer() // the tree edge pins the child

	doc := n.attachedDocument()
	if doc != nil {
		doc.adoptSubtree(newChild)
	}
	notifyNodeInserted(doc, n, newChild)
	return nil
}

// attachedDocument returns the live document whose tree this node is part
// of, or nil when the node is detached.
func (n *Node) attachedDocument() *Document {
	root := n.GetRootNode()
	if root.nodeType != DocumentNode {
		return nil
	}
	doc := (*Document)(root)
	if !doc.Live() {
		return nil
	}
	return doc
}

// RemoveChild removes a child node from this node. For the error-returning
// version, use RemoveChildWithError.
func (n *Node) RemoveChild(child *Node) *Node {
	result, _ := n.RemoveChildWithError(child)
	return result
}

// RemoveChildWithError removes a child node from this node. The removed
// node is returned detached; it stays alive for as long as an external
// holder pins it.
func (n *Node) RemoveChildWithError(child *Node) (*Node, error) {
	if child == nil {
		return nil, ErrNotFound("The node to be removed is null.")
	}
	if n.disposed {
		return nil, ErrInvalidState("The node has been reclaimed and can no longer be used.")
	}
	if child.parentNode != n {
		return nil, ErrNotFound("The node to be removed is not a child of this node.")
	}
	n.removeChildNode(child)
	return child, nil
}

// Remove detaches this node from its parent. Removing an already detached
// node is a no-op.
func (n *Node) Remove() {
	if n.parentNode != nil {
		n.parentNode.removeChildNode(n)
	}
}

// removeChildNode unlinks child from this node: the slot is spliced out,
// the subtree's document association is cleared, and only then does the
// removal notification fire, so hooks observe the post-mutation shape with
// the removed node passed alongside its old parent. The tree edge's pin is
// released last; the child is reclaimed when no external holder remains.
func (n *Node) removeChildNode(child *Node) {
	idx := n.childIndex(child)
	n.childNodes = append(n.childNodes[:idx], n.childNodes[idx+1:]...)
	child.parentNode = nil

	doc := child.ownerDoc
	if doc != nil {
		detachSubtree(child)
		// Same convention as the insert path: a closed document notifies
		// nothing.
		if !doc.Live() {
			doc = nil
		}
	}

	notifyNodeRemoved(doc, n, child)
	child.unrefer()
}

// detachSubtree clears the document association for node and every
// descendant in one pre-order walk; the whole subtree flips to detached as
// a single operation.
func detachSubtree(node *Node) {
	node.ownerDoc = nil
	for _, child := range node.childNodes {
		detachSubtree(child)
	}
}

// ReplaceChild replaces a child node with a new node. For the
// error-returning version, use ReplaceChildWithError.
func (n *Node) ReplaceChild(newChild, oldChild *Node) *Node {
	result, _ := n.ReplaceChildWithError(newChild, oldChild)
	return result
}

// ReplaceChildWithError replaces oldChild with newChild in place and
// returns the replaced node. The swap is a single slot write: no observer
// ever sees a child sequence with both nodes or neither.
func (n *Node) ReplaceChildWithError(newChild, oldChild *Node) (*Node, error) {
	if oldChild == nil {
		return nil, ErrNotFound("The node to be replaced is null.")
	}
	if err := n.validatePreReplace(newChild, oldChild); err != nil {
		return nil, err
	}
	if newChild == oldChild {
		return oldChild, nil
	}

	// A fragment replaces the slot with its child sequence.
	if newChild.nodeType == DocumentFragmentNode {
		children := make([]*Node, len(newChild.childNodes))
		copy(children, newChild.childNodes)

		ref := oldChild.NextSibling()
		n.removeChildNode(oldChild)
		for _, child := range children {
			if err := n.insertOne(child, ref); err != nil {
				return nil, err
			}
		}
		return oldChild, nil
	}

	// Moving newChild out of its current parent first may shift oldChild's
	// slot, so the index is computed after the detach. The transient pin
	// keeps an unpinned newChild alive across the move.
	newChild.refer()
	defer newChild.unrefer()
	if newChild.parentNode != nil {
		newChild.parentNode.removeChildNode(newChild)
	}

	// The implicit removal may have fired hooks that re-entered the
	// mutation API; re-check both operands before touching the slot.
	if newChild.parentNode != nil {
		return nil, ErrInvalidState("The node was claimed by another parent during the move.")
	}
	idx := n.childIndex(oldChild)
	if idx < 0 {
		return nil, ErrNotFound("The node to be replaced is not a child of this node.")
	}

	n.childNodes[idx] = newChild
	oldChild.parentNode = nil
	newChild.parentNode = n
	newChild.refer()

	oldDoc := oldChild.ownerDoc
	if oldDoc != nil {
		detachSubtree(oldChild)
		if !oldDoc.Live() {
			oldDoc = nil
		}
	}
	doc := n.attachedDocument()
	if doc != nil {
		doc.adoptSubtree(newChild)
	}

	// Both notifications fire against the final shape.
	notifyNodeRemoved(oldDoc, n, oldChild)
	notifyNodeInserted(doc, n, newChild)
	oldChild.unrefer()

	return oldChild, nil
}

// CloneNode creates a copy of this node. The clone is always detached and
// has no document association, regardless of the source's state; no
// notifications fire. If deep is true, the full child sequence is cloned
// recursively, preserving order.
func (n *Node) CloneNode(deep bool) *Node {
	if n.disposed {
		return nil
	}
	clone := n.shallowClone()
	if deep {
		for _, child := range n.childNodes {
			clone.insertOne(child.CloneNode(true), nil)
		}
	}
	return clone
}

// shallowClone copies the node's type tag and type-specific value content.
func (n *Node) shallowClone() *Node {
	clone := newNode(n.nodeType, n.nodeName)

	switch n.nodeType {
	case ElementNode:
		if n.elementData != nil {
			attrs := make(map[string]string, len(n.elementData.attributes))
			for name, value := range n.elementData.attributes {
				attrs[name] = value
			}
			clone.elementData = &elementData{
				localName:  n.elementData.localName,
				tagName:    n.elementData.tagName,
				attributes: attrs,
			}
		}
	case TextNode, CommentNode:
		if n.charData != nil {
			data := *n.charData
			clone.charData = &data
		}
	case DocumentTypeNode:
		if n.docTypeData != nil {
			clone.docTypeData = &docTypeData{
				name:     n.docTypeData.name,
				publicID: n.docTypeData.publicID,
				systemID: n.docTypeData.systemID,
			}
		}
	case DocumentNode:
		// A cloned document is a fresh root, not a live one.
		clone.documentData = &documentData{nextTargetID: 1}
	}
	return clone
}

// TextContent returns the text content of the node and its descendants:
// the concatenation of all descendant text payloads in document order.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case DocumentNode, DocumentTypeNode:
		return ""
	case TextNode, CommentNode:
		return n.NodeValue()
	default:
		var sb strings.Builder
		n.collectTextContent(&sb)
		return sb.String()
	}
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for _, child := range n.childNodes {
		switch child.nodeType {
		case TextNode:
			sb.WriteString(child.NodeValue())
		case ElementNode, DocumentFragmentNode:
			child.collectTextContent(sb)
		}
	}
}

// SetTextContent replaces the node's content with the given string. On a
// text or comment node the payload is written directly. On an element or
// fragment every existing child is replaced by a single text node (none
// when value is empty) as one logical step: the child sequence is swapped
// first and all notifications fire against the final shape, never against
// a half-emptied node. Documents and doctypes ignore the call.
func (n *Node) SetTextContent(value string) {
	switch n.nodeType {
	case DocumentNode, DocumentTypeNode:
		return
	case TextNode, CommentNode:
		n.SetNodeValue(value)
	default:
		removed := n.childNodes
		n.childNodes = nil
		for _, child := range removed {
			child.parentNode = nil
			if child.ownerDoc != nil {
				detachSubtree(child)
			}
		}

		var text *Node
		if value != "" {
			text = NewText(value).AsNode()
			n.childNodes = []*Node{text}
			text.parentNode = n
			text.refer()
		}

		doc := n.attachedDocument()
		if doc != nil && text != nil {
			doc.adoptSubtree(text)
		}
		for _, child := range removed {
			notifyNodeRemoved(doc, n, child)
		}
		if text != nil {
			notifyNodeInserted(doc, n, text)
		}
		for _, child := range removed {
			child.unrefer()
		}
	}
}
