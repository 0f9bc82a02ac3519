package dom

// Text represents a text node in the tree.
type Text Node

// NewText creates a detached text node holding the given data.
func NewText(data string) *Text {
	node := newNode(TextNode, "#text")
	node.charData = &data
	return (*Text)(node)
}

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// Data returns the text payload.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData replaces the text payload.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text payload in bytes.
func (t *Text) Length() int {
	return len(t.Data())
}
