package signal

// Store is the external state container this layer observes.
// Implementations live outside this module; only the read and
// subscription surface is consumed here.
type Store interface {
	// CurrentState returns the store's current state.
	CurrentState() any

	// Subscribe registers a listener invoked after every state
	// transition, with no payload. The returned function removes the
	// listener and must be safe to call more than once.
	Subscribe(listener func()) (unsubscribe func())
}
