package dom

import "strings"

// Document represents a document node: the root that owns a tree, decides
// connectedness, and hands out node identity on attach.
type Document Node

// NewDocument creates a new, live document. Nodes inserted under it (and
// their subtrees) become connected.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document")
	node.documentData = &documentData{live: true, nextTargetID: 2}
	doc := (*Document)(node)
	node.targetID = 1
	node.issuedBy = doc
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// Live reports whether this document is a live root. Nodes under a dead
// document are not connected.
func (d *Document) Live() bool {
	data := d.AsNode().documentData
	return data != nil && data.live
}

// Close marks the document as no longer live. The tree keeps its shape but
// every node in it stops being connected.
func (d *Document) Close() {
	if data := d.AsNode().documentData; data != nil {
		data.live = false
	}
}

// DocumentElement returns the document's root element, or nil.
func (d *Document) DocumentElement() *Element {
	for _, child := range d.AsNode().childNodes {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// Doctype returns the document's DocumentType child, or nil.
func (d *Document) Doctype() *DocumentType {
	for _, child := range d.AsNode().childNodes {
		if child.nodeType == DocumentTypeNode {
			return (*DocumentType)(child)
		}
	}
	return nil
}

// adoptSubtree registers node and every descendant under this document in
// one pre-order walk: the document association is set and a document-scoped
// event-target identity is assigned on first attach to this document. An
// identity issued by another document is not carried over; it would collide
// with IDs this document hands out on its own. This walk is the only place
// connectedness is materialized as a side effect; IsConnected reads stay
// pure.
func (d *Document) adoptSubtree(node *Node) {
	node.ownerDoc = d
	if node.targetID == 0 || node.issuedBy != d {
		node.targetID = d.AsNode().documentData.nextTargetID
		d.AsNode().documentData.nextTargetID++
		node.issuedBy = d
	}
	for _, child := range node.childNodes {
		d.adoptSubtree(child)
	}
}

// CreateElement creates a detached element with the given tag name.
func (d *Document) CreateElement(localName string) *Element {
	return NewElement(localName)
}

// CreateTextNode creates a detached text node holding the given data.
func (d *Document) CreateTextNode(data string) *Text {
	return NewText(data)
}

// CreateComment creates a detached comment node holding the given data.
func (d *Document) CreateComment(data string) *Comment {
	return NewComment(data)
}

// CreateDocumentType creates a detached doctype node.
func (d *Document) CreateDocumentType(name, publicID, systemID string) *DocumentType {
	return NewDocumentType(name, publicID, systemID)
}

// CreateDocumentFragment creates a detached, empty document fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	return NewDocumentFragment()
}

// NewElement creates a detached element with the given tag name. The node
// name is the tag name in uppercase, HTML-style.
func NewElement(localName string) *Element {
	lower := strings.ToLower(localName)
	node := newNode(ElementNode, strings.ToUpper(localName))
	node.elementData = &elementData{
		localName:  lower,
		tagName:    strings.ToUpper(localName),
		attributes: make(map[string]string),
	}
	return (*Element)(node)
}
