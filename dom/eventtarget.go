package dom

// EventListener is the contract for listeners registered on a node. Event
// delivery (capture, bubbling, default actions) is implemented by a higher
// layer; the tree only keeps the registration bookkeeping.
type EventListener interface {
	HandleEvent(eventType string, target *Node)
}

// eventTarget gives a node its identity as an event-target participant.
// The target ID is document-scoped and assigned by the document when the
// node first becomes part of its tree. issuedBy records which document's
// counter produced the ID: adoption by a different document hands out a
// fresh one, so IDs never collide within a document.
type eventTarget struct {
	targetID  uint64
	issuedBy  *Document
	listeners map[string][]EventListener
}

// EventTargetID returns the document-scoped identity of this node, or zero
// if the node has never been attached to a document.
func (n *Node) EventTargetID() uint64 {
	return n.targetID
}

// AddEventListener registers a listener for the given event type.
// Registering the same listener twice for one type is a no-op.
func (n *Node) AddEventListener(eventType string, listener EventListener) {
	if listener == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]EventListener)
	}
	for _, l := range n.listeners[eventType] {
		if l == listener {
			return
		}
	}
	n.listeners[eventType] = append(n.listeners[eventType], listener)
}

// RemoveEventListener unregisters a listener for the given event type.
func (n *Node) RemoveEventListener(eventType string, listener EventListener) {
	listeners := n.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			n.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the listeners registered for the given event type, in
// registration order. Higher layers use this to drive delivery.
func (n *Node) Listeners(eventType string) []EventListener {
	return n.listeners[eventType]
}
