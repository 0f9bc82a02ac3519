package dom

// Comment represents a comment node in the tree.
type Comment Node

// NewComment creates a detached comment node holding the given data.
func NewComment(data string) *Comment {
	node := newNode(CommentNode, "#comment")
	node.charData = &data
	return (*Comment)(node)
}

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// Data returns the comment payload.
func (c *Comment) Data() string {
	return c.AsNode().NodeValue()
}

// SetData replaces the comment payload.
func (c *Comment) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}
