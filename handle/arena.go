package handle

import (
	"errors"
	"sync"
)

var (
	ErrClosed            = errors.New("handle arena closed")
	ErrUnknownHandle     = errors.New("handle was not issued by this arena")
	ErrStaleHandle       = errors.New("handle refers to a removed value")
	ErrOutstandingBorrow = errors.New("cannot remove value with outstanding borrows")
)

// Arena is an in-memory slot store with generation counting and borrow
// tracking. Removed slots are reused through a free list; every reuse bumps
// the slot generation so handles issued for the previous occupant stop
// resolving.
type Arena[T any] struct {
	entries  []slot[T]
	freeList []uint32
	live     int
	mu       sync.RWMutex
	closed   bool
}

type slot[T any] struct {
	value       T
	gen         uint32
	borrowCount uint32
	valid       bool
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		entries:  make([]slot[T], 0, 16),
		freeList: make([]uint32, 0, 4),
	}
}

// Create stores a value and returns its handle.
func (a *Arena[T]) Create(value T) (Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return Invalid, ErrClosed
	}

	a.live++
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		e := &a.entries[idx]
		e.value = value
		e.valid = true
		e.borrowCount = 0
		return makeHandle(idx, e.gen), nil
	}

	a.entries = append(a.entries, slot[T]{value: value, gen: 1, valid: true})
	return makeHandle(uint32(len(a.entries)-1), 1), nil
}

// lookup resolves h to its slot. Caller holds a.mu.
func (a *Arena[T]) lookup(h Handle) (*slot[T], error) {
	idx, ok := h.Slot()
	if !ok || int(idx) >= len(a.entries) {
		return nil, ErrUnknownHandle
	}
	e := &a.entries[idx]
	if e.gen != h.Generation() {
		if h.Generation() == 0 || h.Generation() > e.gen {
			return nil, ErrUnknownHandle
		}
		return nil, ErrStaleHandle
	}
	if !e.valid {
		return nil, ErrStaleHandle
	}
	return e, nil
}

// Get retrieves a value by handle.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	e, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Check reports why h does not resolve, or nil when it does.
func (a *Arena[T]) Check(h Handle) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return ErrClosed
	}
	_, err := a.lookup(h)
	return err
}

// Drop removes a value and returns it. The slot generation is advanced so
// the handle can never resolve again.
func (a *Arena[T]) Drop(h Handle) (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var zero T
	e, err := a.lookup(h)
	if err != nil {
		return zero, err
	}
	if e.borrowCount > 0 {
		return zero, ErrOutstandingBorrow
	}

	value := e.value
	e.value = zero
	e.valid = false
	e.gen++
	if e.gen == 0 {
		e.gen = 1
	}
	idx, _ := h.Slot()
	a.freeList = append(a.freeList, idx)
	a.live--

	return value, nil
}

// Borrow resolves h and increments its borrow count. The value cannot be
// dropped until ReturnBorrow is called.
func (a *Arena[T]) Borrow(h Handle) (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	e.borrowCount++
	return e.value, nil
}

// ReturnBorrow decrements the borrow count for a handle.
func (a *Arena[T]) ReturnBorrow(h Handle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.lookup(h)
	if err != nil || e.borrowCount == 0 {
		return false
	}
	e.borrowCount--
	return true
}

// Close invalidates every handle and returns the values that were still live.
func (a *Arena[T]) Close() []T {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var live []T
	for i := range a.entries {
		if a.entries[i].valid {
			live = append(live, a.entries[i].value)
		}
	}

	a.entries = nil
	a.freeList = nil
	a.live = 0
	return live
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

// Each iterates over all live values.
func (a *Arena[T]) Each(fn func(Handle, T) bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for i, e := range a.entries {
		if e.valid {
			if !fn(makeHandle(uint32(i), e.gen), e.value) {
				break
			}
		}
	}
}
