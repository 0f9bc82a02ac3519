package dom

import (
	"testing"
)

func TestRefer_KeepsRemovedNodeAlive(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	parent.AppendChild(child)

	child.Refer()
	parent.RemoveChild(child)

	if child.Disposed() {
		t.Fatal("a pinned node must survive removal")
	}
	if child.ParentNode() != nil {
		t.Error("the node should be detached")
	}

	// A detached-but-alive node is re-insertable.
	if _, err := parent.AppendChildWithError(child); err != nil {
		t.Fatalf("re-inserting a pinned node failed: %v", err)
	}
	if child.ParentNode() != parent {
		t.Error("re-insertion should restore the parent")
	}
	child.Unrefer()
	if child.Disposed() {
		t.Error("a parented node must not be reclaimed when its external pin is released")
	}
}

func TestUnpinnedNode_ReclaimedOnRemoval(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	parent.AppendChild(child)

	parent.RemoveChild(child)
	if !child.Disposed() {
		t.Error("an unpinned node is reclaimed when the tree edge is dropped")
	}
}

func TestReclamation_AfterLastUnrefer(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	parent.AppendChild(child)

	child.Refer()
	child.Refer()
	parent.RemoveChild(child)
	if child.Disposed() {
		t.Fatal("node reclaimed while pins remain")
	}

	child.Unrefer()
	if child.Disposed() {
		t.Fatal("node reclaimed while one pin remains")
	}

	child.Unrefer()
	if !child.Disposed() {
		t.Error("node must be reclaimed after the last pin is released")
	}
}

func TestReclamation_ReleasesSubtree(t *testing.T) {
	root := NewElement("div").AsNode()
	inner := NewElement("p").AsNode()
	leaf := NewText("x").AsNode()
	pinned := NewText("y").AsNode()
	inner.AppendChild(leaf)
	inner.AppendChild(pinned)
	root.AppendChild(inner)

	pinned.Refer()
	root.Refer()
	root.Unrefer()

	if !root.Disposed() || !inner.Disposed() || !leaf.Disposed() {
		t.Error("reclaiming a root reclaims its unpinned subtree")
	}
	if pinned.Disposed() {
		t.Error("an externally pinned descendant survives subtree reclamation")
	}
	if pinned.ParentNode() != nil {
		t.Error("a surviving descendant is left detached")
	}
	pinned.Unrefer()
	if !pinned.Disposed() {
		t.Error("the survivor is reclaimed once its pin is released")
	}
}

func TestDisposedNode_RejectsMutation(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	parent.AppendChild(child)
	parent.RemoveChild(child) // child is reclaimed here

	_, err := parent.AppendChildWithError(child)
	if err == nil {
		t.Fatal("expected InvalidStateError inserting a reclaimed node")
	}
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "InvalidStateError" {
		t.Errorf("expected InvalidStateError, got %v", err)
	}
}

func TestPinned_CountsTreeEdge(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()

	if child.Pinned() != 0 {
		t.Errorf("fresh node should have no pins, got %d", child.Pinned())
	}
	parent.AppendChild(child)
	if child.Pinned() != 1 {
		t.Errorf("the tree edge should hold one pin, got %d", child.Pinned())
	}
	child.Refer()
	if child.Pinned() != 2 {
		t.Errorf("expected 2 pins, got %d", child.Pinned())
	}
	child.Unrefer()
	if child.Pinned() != 1 {
		t.Errorf("expected 1 pin after release, got %d", child.Pinned())
	}
}
