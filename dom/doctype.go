package dom

// DocumentType represents a doctype node.
type DocumentType Node

// NewDocumentType creates a detached doctype node.
func NewDocumentType(name, publicID, systemID string) *DocumentType {
	node := newNode(DocumentTypeNode, name)
	node.docTypeData = &docTypeData{name: name, publicID: publicID, systemID: systemID}
	return (*DocumentType)(node)
}

// AsNode returns the underlying Node.
func (dt *DocumentType) AsNode() *Node {
	return (*Node)(dt)
}

// Name returns the doctype name.
func (dt *DocumentType) Name() string {
	return dt.AsNode().docTypeData.name
}

// PublicID returns the doctype public identifier.
func (dt *DocumentType) PublicID() string {
	return dt.AsNode().docTypeData.publicID
}

// SystemID returns the doctype system identifier.
func (dt *DocumentType) SystemID() string {
	return dt.AsNode().docTypeData.systemID
}
