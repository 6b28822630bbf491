// Package handle provides generation-counted opaque handles for values owned
// on the Go side of a foreign-call boundary.
//
// A host runtime never sees a Go pointer. It receives a Handle, an integer
// that the Table maps back to the owned value:
//
//	table := handle.NewTable[*Engine]()
//
//	// Insert a value, get a handle
//	h := table.Insert(engine)
//
//	// Retrieve value by handle
//	engine, ok := table.Get(h)
//
//	// Remove and get value (ownership returns to the caller)
//	engine, err := table.Remove(h)
//
// # Sentinel
//
// Handle 0 (Invalid) is reserved. Constructors that fail hand it out instead
// of an error so that callers on the far side of the boundary only need an
// integer comparison.
//
// # Generations
//
// The low 32 bits of a handle select a slot, the high 32 bits carry the
// generation that slot had when the handle was issued. Removing a value
// advances the generation, so:
//
//	h := table.Insert(a)
//	table.Remove(h)          // nil
//	table.Remove(h)          // ErrStaleHandle
//	h2 := table.Insert(b)    // same slot, new generation
//	table.Get(h)             // (nil, false), never b
//
// Double removal and use after removal are therefore reported, not silent.
//
// # Pinning
//
// Acquire pins a value for the duration of a call. Remove returns
// ErrOutstandingBorrow while any pin is held.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	table.Subscribe(obs) // obs.OnHandleEvent receives EventCreated/EventDropped
//
// Values implementing Dropper are released on Remove and on Close.
package handle
