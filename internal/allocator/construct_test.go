package allocator

import "testing"

func TestConstructAtPlacesValue(t *testing.T) {
	a, err := NewArena[float64](1000)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}

	p, err := a.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate(1): %v", err)
	}

	a.ConstructAt(p, 3.5)

	if *p != 3.5 {
		t.Errorf("*p = %v, want 3.5", *p)
	}
}

type closerValue struct {
	closed *bool
}

func (c closerValue) Close() error {
	*c.closed = true

	return nil
}

func TestDestroyAtInvokesCloser(t *testing.T) {
	a, err := NewArena[closerValue](1000)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}

	p, err := a.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate(1): %v", err)
	}

	closed := false
	a.ConstructAt(p, closerValue{closed: &closed})

	if err := a.DestroyAt(p); err != nil {
		t.Fatalf("DestroyAt: %v", err)
	}

	if !closed {
		t.Error("DestroyAt did not invoke Close")
	}
}

func TestDestroyAtNoopWithoutCloser(t *testing.T) {
	a, err := NewArena[float64](1000)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}

	p, err := a.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate(1): %v", err)
	}

	a.ConstructAt(p, 1.0)

	if err := a.DestroyAt(p); err != nil {
		t.Errorf("DestroyAt on non-Closer returned error: %v", err)
	}
}
