package dom

// Element represents an element node in the tree.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// TagName returns the uppercase tag name.
func (e *Element) TagName() string {
	return e.AsNode().elementData.tagName
}

// LocalName returns the lowercase local name.
func (e *Element) LocalName() string {
	return e.AsNode().elementData.localName
}

// GetAttribute returns the value of the named attribute, or an empty
// string if it is absent.
func (e *Element) GetAttribute(name string) string {
	return e.AsNode().elementData.attributes[name]
}

// HasAttribute returns true if the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.AsNode().elementData.attributes[name]
	return ok
}

// SetAttribute sets the named attribute.
func (e *Element) SetAttribute(name, value string) {
	e.AsNode().elementData.attributes[name] = value
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.AsNode().elementData.attributes, name)
}

// AttributeNames returns the names of the element's attributes.
func (e *Element) AttributeNames() []string {
	attrs := e.AsNode().elementData.attributes
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	return names
}
