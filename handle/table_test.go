package handle

import (
	"errors"
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnHandleEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable[string]()

	h := table.Insert("test")
	if h == Invalid {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	val, err := table.Remove(h)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}

	if _, err := table.Remove(h); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("second Remove = %v, want ErrStaleHandle", err)
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable[string]()
	obs := &testObserver{}
	table.Subscribe(obs)

	h := table.Insert("test")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated {
		t.Fatal("Expected EventCreated")
	}
	if obs.events[0].Handle != h {
		t.Fatal("Wrong handle in event")
	}

	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDropped {
		t.Fatal("Expected EventDropped")
	}

	// A failed remove does not notify
	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatal("stale Remove should not notify")
	}

	table.Unsubscribe(obs)
	table.Insert("test2")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestTable_Acquire(t *testing.T) {
	table := NewTable[string]()
	h := table.Insert("pinned")

	v, release, err := table.Acquire(h)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if v != "pinned" {
		t.Fatalf("Acquire returned %q", v)
	}

	if _, err := table.Remove(h); !errors.Is(err, ErrOutstandingBorrow) {
		t.Fatalf("Remove while pinned = %v", err)
	}

	release()
	release() // idempotent

	if _, err := table.Remove(h); err != nil {
		t.Fatalf("Remove after release: %v", err)
	}

	if _, release, err := table.Acquire(h); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("Acquire(stale) = %v", err)
	} else {
		release()
	}
}

func TestTable_Clear(t *testing.T) {
	table := NewTable[string]()

	table.Insert("a")
	table.Insert("b")
	table.Insert("c")

	if table.Len() != 3 {
		t.Fatal("Expected Len() == 3")
	}

	table.Clear()

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestTable_DropperInterface(t *testing.T) {
	table := NewTable[*dropCounter]()
	d := &dropCounter{}

	h := table.Insert(d)
	table.Remove(h)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable[*dropCounter]()
	a, b := &dropCounter{}, &dropCounter{}

	table.Insert(a)
	table.Insert(b)

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if a.count != 1 || b.count != 1 {
		t.Fatalf("Close should drop live values, got %d and %d", a.count, b.count)
	}

	if h := table.Insert(&dropCounter{}); h != Invalid {
		t.Fatal("Expected Insert to fail after Close")
	}
}
