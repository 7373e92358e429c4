package alchemy

// Listener receives store changes, typically to keep a view in sync. Calls
// happen synchronously on the goroutine that mutated the store.
//
// For a combination the order is: both inputs removed, newly discovered types,
// then the created results.
type Listener interface {
	ElementCreated(e Element)
	ElementMoved(e Element)
	ElementRemoved(e Element)
	ElementDiscovered(t ElementType)
}

// NopListener ignores every event. Embed it to implement only some hooks.
type NopListener struct{}

func (NopListener) ElementCreated(Element) {}
func (NopListener) ElementMoved(Element) {}
func (NopListener) ElementRemoved(Element) {}
func (NopListener) ElementDiscovered(ElementType) {}
