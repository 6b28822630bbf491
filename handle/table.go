package handle

import (
	"sync"
)

// Table wraps an Arena with observer notification and Dropper cleanup.
type Table[T any] struct {
	arena     *Arena[T]
	observers []Observer
	obsMu     sync.RWMutex
}

// NewTable creates a new table backed by a fresh Arena.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		arena: NewArena[T](),
	}
}

// Insert adds a value and returns its handle, or Invalid once the table is closed.
func (t *Table[T]) Insert(value T) Handle {
	h, err := t.arena.Create(value)
	if err != nil {
		return Invalid
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: h,
		Value:  value,
	})

	return h
}

// Get retrieves a value by handle.
func (t *Table[T]) Get(h Handle) (T, bool) {
	return t.arena.Get(h)
}

// Check reports why h does not resolve, or nil when it does.
func (t *Table[T]) Check(h Handle) error {
	return t.arena.Check(h)
}

// Acquire resolves h and pins it until the returned release func is called.
// Remove fails with ErrOutstandingBorrow while a value is pinned.
func (t *Table[T]) Acquire(h Handle) (T, func(), error) {
	v, err := t.arena.Borrow(h)
	if err != nil {
		return v, func() {}, err
	}
	var once sync.Once
	return v, func() {
		once.Do(func() { t.arena.ReturnBorrow(h) })
	}, nil
}

// Remove drops a value, runs its Dropper and returns it.
func (t *Table[T]) Remove(h Handle) (T, error) {
	value, err := t.arena.Drop(h)
	if err != nil {
		return value, err
	}

	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: h,
		Value:  value,
	})

	return value, nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[T]) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	return t.arena.Len()
}

// Each iterates over all live values.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.arena.Each(fn)
}

// Clear removes every value that is not currently pinned.
func (t *Table[T]) Clear() {
	// Collect handles first to avoid holding the arena lock during Remove
	var handles []Handle
	t.arena.Each(func(h Handle, _ T) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		_, _ = t.Remove(h)
	}
}

// Close drops all values and stops accepting inserts.
func (t *Table[T]) Close() error {
	for _, v := range t.arena.Close() {
		if d, ok := any(v).(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}

func (t *Table[T]) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnHandleEvent(e)
	}
}
