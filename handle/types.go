package handle

// Handle is an opaque reference to a value in a table.
// The low 32 bits hold the slot index plus one, the high 32 bits the slot
// generation. Handle 0 is reserved and always invalid.
type Handle uint64

// Invalid is the sentinel handle. It never refers to a value.
const Invalid Handle = 0

func makeHandle(slot uint32, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot+1))
}

// Slot returns the slot index encoded in h, and false for the sentinel.
func (h Handle) Slot() (uint32, bool) {
	low := uint32(h)
	if low == 0 {
		return 0, false
	}
	return low - 1, true
}

// Generation returns the generation encoded in h.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Valid reports whether h is not the sentinel. It says nothing about liveness.
func (h Handle) Valid() bool {
	return uint32(h) != 0
}

// EventType identifies a lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event represents a lifecycle event for one handle.
type Event struct {
	Value  any
	Handle Handle
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// Dropper is optionally implemented by values that need cleanup when their
// handle is removed or the table is closed.
type Dropper interface {
	Drop()
}
