package dom

import (
	"testing"
)

func TestAppendChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()

	result, err := parent.AppendChildWithError(child)
	if err != nil {
		t.Fatalf("AppendChild returned error: %v", err)
	}
	if result != child {
		t.Error("AppendChild should return the inserted node")
	}
	if child.ParentNode() != parent {
		t.Error("child's parentNode should be the parent")
	}
	if parent.LastChild() != child {
		t.Error("parent's last child should be the appended node")
	}
	if parent.ChildNodes().Length() != 1 {
		t.Errorf("expected 1 child, got %d", parent.ChildNodes().Length())
	}
}

func TestAppendChild_CycleRejected(t *testing.T) {
	a := NewElement("div").AsNode()
	b := NewElement("span").AsNode()

	if _, err := a.AppendChildWithError(b); err != nil {
		t.Fatalf("setup append failed: %v", err)
	}

	_, err := b.AppendChildWithError(a)
	if err == nil {
		t.Fatal("expected HierarchyRequestError for cycle")
	}
	domErr, ok := err.(*DOMError)
	if !ok || domErr.Name != "HierarchyRequestError" {
		t.Errorf("expected HierarchyRequestError, got %v", err)
	}

	// The tree must be unchanged.
	if b.ParentNode() != a {
		t.Error("b should still be a child of a")
	}
	if a.ParentNode() != nil {
		t.Error("a should still be a root")
	}
	if b.HasChildNodes() {
		t.Error("b should have no children")
	}
}

func TestAppendChild_SelfRejected(t *testing.T) {
	a := NewElement("div").AsNode()
	_, err := a.AppendChildWithError(a)
	if err == nil {
		t.Fatal("expected HierarchyRequestError appending a node to itself")
	}
}

func TestAppendChild_Reattach(t *testing.T) {
	a1 := NewElement("div").AsNode()
	a2 := NewElement("div").AsNode()
	b := NewElement("span").AsNode()

	a1.AppendChild(b)
	if _, err := a2.AppendChildWithError(b); err != nil {
		t.Fatalf("reattach failed: %v", err)
	}

	if b.ParentNode() != a2 {
		t.Error("b's parent should be a2 after reattach")
	}
	if a1.ChildNodes().Length() != 0 {
		t.Error("b should be absent from a1's children")
	}
	if a2.FirstChild() != b {
		t.Error("b should be a2's child")
	}
	if b.Disposed() {
		t.Error("b must not be reclaimed during a move between parents")
	}
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("ul").AsNode()
	first := NewElement("li").AsNode()
	third := NewElement("li").AsNode()
	parent.AppendChild(first)
	parent.AppendChild(third)

	second := NewElement("li").AsNode()
	if _, err := parent.InsertBeforeWithError(second, third); err != nil {
		t.Fatalf("InsertBefore returned error: %v", err)
	}

	children := parent.ChildNodes().ToSlice()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0] != first || children[1] != second || children[2] != third {
		t.Error("children are not in insertion order")
	}
	if second.PreviousSibling() != first {
		t.Error("second's previous sibling should be first")
	}
	if second.NextSibling() != third {
		t.Error("second's next sibling should be third")
	}
}

func TestInsertBefore_NilReferenceAppends(t *testing.T) {
	parent := NewElement("div").AsNode()
	a := NewText("a").AsNode()
	b := NewText("b").AsNode()
	parent.AppendChild(a)

	parent.InsertBefore(b, nil)
	if parent.LastChild() != b {
		t.Error("insertBefore with nil reference should append")
	}
}

func TestInsertBefore_ReferenceNotChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	stranger := NewElement("span").AsNode()
	node := NewText("x").AsNode()

	_, err := parent.InsertBeforeWithError(node, stranger)
	if err == nil {
		t.Fatal("expected NotFoundError")
	}
	domErr, ok := err.(*DOMError)
	if !ok || domErr.Name != "NotFoundError" {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if parent.HasChildNodes() {
		t.Error("tree must be unchanged after a failed insert")
	}
	if node.ParentNode() != nil {
		t.Error("node must stay detached after a failed insert")
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	child.Refer()
	defer child.Unrefer()
	parent.AppendChild(child)

	result, err := parent.RemoveChildWithError(child)
	if err != nil {
		t.Fatalf("RemoveChild returned error: %v", err)
	}
	if result != child {
		t.Error("RemoveChild should return the removed node")
	}
	if child.ParentNode() != nil {
		t.Error("removed child's parent should be nil")
	}
	if parent.ChildNodes().Length() != 0 {
		t.Error("parent should have no children")
	}
}

func TestRemoveChild_NotAChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	other := NewElement("span").AsNode()

	_, err := parent.RemoveChildWithError(other)
	if err == nil {
		t.Fatal("expected NotFoundError")
	}
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "NotFoundError" {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	child.Refer()
	defer child.Unrefer()
	parent.AppendChild(child)

	child.Remove()
	if child.ParentNode() != nil {
		t.Error("Remove should detach the node")
	}

	// Removing an already detached node is a no-op.
	child.Remove()
}

func TestReplaceChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	a := NewElement("a").AsNode()
	old := NewElement("b").AsNode()
	c := NewElement("c").AsNode()
	parent.AppendChild(a)
	parent.AppendChild(old)
	parent.AppendChild(c)

	old.Refer()
	defer old.Unrefer()

	replacement := NewElement("i").AsNode()
	result, err := parent.ReplaceChildWithError(replacement, old)
	if err != nil {
		t.Fatalf("ReplaceChild returned error: %v", err)
	}
	if result != old {
		t.Error("ReplaceChild should return the replaced node")
	}

	children := parent.ChildNodes().ToSlice()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0] != a || children[1] != replacement || children[2] != c {
		t.Error("replacement should occupy the replaced node's slot")
	}
	if old.ParentNode() != nil {
		t.Error("replaced node should be detached")
	}
}

func TestReplaceChild_OldNotChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	stranger := NewElement("span").AsNode()
	replacement := NewElement("i").AsNode()

	_, err := parent.ReplaceChildWithError(replacement, stranger)
	if err == nil {
		t.Fatal("expected NotFoundError")
	}
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "NotFoundError" {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestReplaceChild_WithFollowingSibling(t *testing.T) {
	parent := NewElement("div").AsNode()
	old := NewElement("a").AsNode()
	sibling := NewElement("b").AsNode()
	parent.AppendChild(old)
	parent.AppendChild(sibling)

	old.Refer()
	defer old.Unrefer()

	if _, err := parent.ReplaceChildWithError(sibling, old); err != nil {
		t.Fatalf("ReplaceChild returned error: %v", err)
	}
	children := parent.ChildNodes().ToSlice()
	if len(children) != 1 || children[0] != sibling {
		t.Errorf("expected only the sibling to remain, got %d children", len(children))
	}
}

func TestDocumentFragment_Spreads(t *testing.T) {
	parent := NewElement("div").AsNode()
	frag := NewDocumentFragment()
	a := NewElement("a").AsNode()
	b := NewElement("b").AsNode()
	frag.Append(a, b)

	parent.AppendChild(frag.AsNode())

	if frag.AsNode().HasChildNodes() {
		t.Error("fragment should be empty after insertion")
	}
	children := parent.ChildNodes().ToSlice()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Error("fragment children should be spread into the parent in order")
	}
	if frag.AsNode().ParentNode() != nil {
		t.Error("the fragment itself must not be inserted")
	}
}

func TestCloneNode_Shallow(t *testing.T) {
	el := NewElement("div")
	el.SetAttribute("id", "original")
	el.AsNode().AppendChild(NewText("hello").AsNode())

	clone := el.AsNode().CloneNode(false)
	if clone.NodeType() != ElementNode {
		t.Error("clone should have the same node type")
	}
	if clone.HasChildNodes() {
		t.Error("shallow clone should have no children")
	}
	if (*Element)(clone).GetAttribute("id") != "original" {
		t.Error("clone should carry a copy of the attributes")
	}

	// The copy is by value.
	(*Element)(clone).SetAttribute("id", "copy")
	if el.GetAttribute("id") != "original" {
		t.Error("mutating the clone's attributes must not touch the source")
	}
}

func TestCloneNode_Deep(t *testing.T) {
	doc := NewDocument()
	root := NewElement("div").AsNode()
	doc.AsNode().AppendChild(root)
	child := NewElement("p").AsNode()
	child.AppendChild(NewText("hello ").AsNode())
	child.AppendChild(NewText("world").AsNode())
	root.AppendChild(child)

	clone := root.CloneNode(true)
	if clone.TextContent() != root.TextContent() {
		t.Errorf("deep clone text content = %q, want %q", clone.TextContent(), root.TextContent())
	}
	if clone.IsConnected() {
		t.Error("clone must always be detached")
	}
	if clone.OwnerDocument() != nil {
		t.Error("clone must have no document association")
	}
	if clone.FirstChild() == child {
		t.Error("deep clone must copy children, not share them")
	}
}

func TestTextContent(t *testing.T) {
	root := NewElement("div").AsNode()
	p := NewElement("p").AsNode()
	p.AppendChild(NewText("hello").AsNode())
	root.AppendChild(p)
	root.AppendChild(NewComment("ignored").AsNode())
	root.AppendChild(NewText(" world").AsNode())

	if got := root.TextContent(); got != "hello world" {
		t.Errorf("TextContent = %q, want %q", got, "hello world")
	}
}

func TestSetTextContent_RoundTrip(t *testing.T) {
	root := NewElement("div").AsNode()
	root.AppendChild(NewElement("p").AsNode())
	root.AppendChild(NewText("old").AsNode())

	root.SetTextContent("fresh content")
	if got := root.TextContent(); got != "fresh content" {
		t.Errorf("TextContent = %q, want %q", got, "fresh content")
	}
	if root.ChildNodes().Length() != 1 {
		t.Errorf("expected a single text child, got %d children", root.ChildNodes().Length())
	}
	if root.FirstChild().NodeType() != TextNode {
		t.Error("the single child should be a text node")
	}
}

func TestSetTextContent_EmptyRemovesChildren(t *testing.T) {
	root := NewElement("div").AsNode()
	root.AppendChild(NewText("old").AsNode())

	root.SetTextContent("")
	if root.HasChildNodes() {
		t.Error("empty text content should leave no children")
	}
}

func TestSetTextContent_OnTextNode(t *testing.T) {
	text := NewText("before").AsNode()
	text.SetTextContent("after")
	if text.NodeValue() != "after" {
		t.Errorf("NodeValue = %q, want %q", text.NodeValue(), "after")
	}
}

func TestSiblingNavigation(t *testing.T) {
	parent := NewElement("div").AsNode()
	a := NewText("a").AsNode()
	b := NewText("b").AsNode()
	c := NewText("c").AsNode()
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	if a.PreviousSibling() != nil {
		t.Error("first child has no previous sibling")
	}
	if a.NextSibling() != b || b.NextSibling() != c || c.NextSibling() != nil {
		t.Error("next sibling chain is wrong")
	}
	if c.PreviousSibling() != b || b.PreviousSibling() != a {
		t.Error("previous sibling chain is wrong")
	}
	if parent.FirstChild() != a || parent.LastChild() != c {
		t.Error("first/last child accessors are wrong")
	}
}

func TestContainsAndRoot(t *testing.T) {
	root := NewElement("div").AsNode()
	mid := NewElement("p").AsNode()
	leaf := NewText("x").AsNode()
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	if !root.Contains(leaf) {
		t.Error("root should contain leaf")
	}
	if !root.Contains(root) {
		t.Error("Contains is inclusive")
	}
	if leaf.Contains(root) {
		t.Error("leaf should not contain root")
	}
	if leaf.GetRootNode() != root {
		t.Error("GetRootNode should walk to the tree root")
	}
}

func TestDocumentCannotBeChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	doc := NewDocument()

	_, err := parent.AppendChildWithError(doc.AsNode())
	if err == nil {
		t.Fatal("expected HierarchyRequestError inserting a Document")
	}
}

func TestTextCannotHaveChildren(t *testing.T) {
	text := NewText("x").AsNode()
	_, err := text.AppendChildWithError(NewText("y").AsNode())
	if err == nil {
		t.Fatal("expected HierarchyRequestError appending under a text node")
	}
}
