package handle

import (
	"errors"
	"sync"
	"testing"
)

func TestArena_Basic(t *testing.T) {
	a := NewArena[string]()

	h, err := a.Create("test value")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if h == Invalid {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := a.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	val, err = a.Drop(h)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	if _, ok := a.Get(h); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
}

func TestArena_DoubleDrop(t *testing.T) {
	a := NewArena[int]()

	h, _ := a.Create(1)
	if _, err := a.Drop(h); err != nil {
		t.Fatalf("first Drop failed: %v", err)
	}
	if _, err := a.Drop(h); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("second Drop: got %v, want ErrStaleHandle", err)
	}
}

func TestArena_GenerationOnReuse(t *testing.T) {
	a := NewArena[string]()

	h1, _ := a.Create("first")
	if _, err := a.Drop(h1); err != nil {
		t.Fatal(err)
	}

	h2, _ := a.Create("second")

	slot1, _ := h1.Slot()
	slot2, _ := h2.Slot()
	if slot1 != slot2 {
		t.Fatalf("expected slot reuse, got %d and %d", slot1, slot2)
	}
	if h1 == h2 {
		t.Fatal("reused slot must produce a different handle")
	}
	if h2.Generation() != h1.Generation()+1 {
		t.Fatalf("generation = %d, want %d", h2.Generation(), h1.Generation()+1)
	}

	if _, ok := a.Get(h1); ok {
		t.Fatal("stale handle resolved to the new occupant")
	}
	if err := a.Check(h1); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("Check(stale) = %v, want ErrStaleHandle", err)
	}
	if v, ok := a.Get(h2); !ok || v != "second" {
		t.Fatalf("Get(h2) = %q, %v", v, ok)
	}
}

func TestArena_Borrow(t *testing.T) {
	a := NewArena[int]()

	h, _ := a.Create(100)

	if _, err := a.Borrow(h); err != nil {
		t.Fatalf("Borrow failed: %v", err)
	}

	// Cannot drop with outstanding borrow
	if _, err := a.Drop(h); !errors.Is(err, ErrOutstandingBorrow) {
		t.Fatalf("Drop with borrow: got %v", err)
	}

	if !a.ReturnBorrow(h) {
		t.Fatal("ReturnBorrow failed")
	}
	if a.ReturnBorrow(h) {
		t.Fatal("ReturnBorrow without borrow should fail")
	}

	if _, err := a.Drop(h); err != nil {
		t.Fatalf("Drop should succeed after returning borrow: %v", err)
	}
}

func TestArena_Close(t *testing.T) {
	a := NewArena[string]()

	a.Create("a")
	a.Create("b")

	live := a.Close()
	if len(live) != 2 {
		t.Fatalf("Close returned %d live values, want 2", len(live))
	}

	if _, err := a.Create("c"); !errors.Is(err, ErrClosed) {
		t.Fatal("Expected ErrClosed after Close")
	}
	if live := a.Close(); live != nil {
		t.Fatal("second Close should return nothing")
	}
}

func TestArena_Concurrent(t *testing.T) {
	a := NewArena[int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			h, _ := a.Create(id)
			a.Borrow(h)
			a.ReturnBorrow(h)
			a.Drop(h)
		}(i)
	}

	wg.Wait()

	if a.Len() != 0 {
		t.Fatalf("Len() = %d after concurrent create/drop", a.Len())
	}
}

func TestArena_LenAndEach(t *testing.T) {
	a := NewArena[string]()

	h1, _ := a.Create("a")
	a.Create("b")
	a.Create("c")

	if a.Len() != 3 {
		t.Fatalf("Expected Len() == 3, got %d", a.Len())
	}

	a.Drop(h1)
	if a.Len() != 2 {
		t.Fatalf("Expected Len() == 2, got %d", a.Len())
	}

	seen := map[string]bool{}
	a.Each(func(h Handle, v string) bool {
		if got, ok := a.Get(h); !ok || got != v {
			t.Errorf("Each handle %#x does not resolve to %q", uint64(h), v)
		}
		seen[v] = true
		return true
	})
	if len(seen) != 2 || !seen["b"] || !seen["c"] {
		t.Fatalf("Each visited %v", seen)
	}

	count := 0
	a.Each(func(Handle, string) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Expected early termination after 1 item, got %d", count)
	}
}

func TestArena_InvalidHandle(t *testing.T) {
	a := NewArena[int]()

	if _, ok := a.Get(Invalid); ok {
		t.Fatal("Invalid handle should not resolve")
	}
	if _, err := a.Drop(Invalid); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("Drop(Invalid) = %v", err)
	}
	if _, err := a.Borrow(Invalid); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("Borrow(Invalid) = %v", err)
	}

	// Non-existent slot
	if _, ok := a.Get(Handle(1<<32 | 999)); ok {
		t.Fatal("Non-existent handle should be invalid")
	}

	// Existing slot, generation never issued
	h, _ := a.Create(1)
	forged := Handle(uint64(h.Generation()+5)<<32 | uint64(uint32(h)))
	if err := a.Check(forged); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("Check(forged) = %v, want ErrUnknownHandle", err)
	}
}

func TestHandle_Encoding(t *testing.T) {
	h := makeHandle(7, 3)
	slot, ok := h.Slot()
	if !ok || slot != 7 {
		t.Fatalf("Slot() = %d, %v", slot, ok)
	}
	if h.Generation() != 3 {
		t.Fatalf("Generation() = %d", h.Generation())
	}
	if !h.Valid() {
		t.Fatal("encoded handle should be valid")
	}
	if Invalid.Valid() {
		t.Fatal("sentinel should not be valid")
	}
}
