package allocator

import "testing"

func TestIteratorBeginEnd(t *testing.T) {
	a, err := NewArena[float64](1000)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}

	begin := a.Begin()
	end := a.End()

	if begin.Equal(end) {
		t.Fatal("Begin should not equal End on a non-empty arena")
	}

	if begin.Head() != 992 {
		t.Errorf("Begin().Head() = %d, want 992", begin.Head())
	}

	if !begin.Next().Equal(end) {
		t.Error("single-block arena: Begin().Next() should equal End()")
	}
}

func TestIteratorWalksEveryBlockOnce(t *testing.T) {
	a, err := NewArena[float64](1000)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}

	if _, err := a.Allocate(2); err != nil {
		t.Fatalf("Allocate(2): %v", err)
	}

	if _, err := a.Allocate(2); err != nil {
		t.Fatalf("Allocate(2): %v", err)
	}

	var heads []int32

	end := a.End()
	for it := a.Begin(); !it.Equal(end); it = it.Next() {
		heads = append(heads, it.Head())
	}

	want := []int32{-16, -16, 944}

	if len(heads) != len(want) {
		t.Fatalf("visited %d blocks, want %d (%v)", len(heads), len(want), heads)
	}

	for i := range want {
		if heads[i] != want[i] {
			t.Errorf("block %d head = %d, want %d", i, heads[i], want[i])
		}
	}
}

func TestIteratorNextThenPrevRoundTrips(t *testing.T) {
	a, err := NewArena[float64](1000)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}

	if _, err := a.Allocate(2); err != nil {
		t.Fatalf("Allocate(2): %v", err)
	}

	begin := a.Begin()
	next := begin.Next()

	if !begin.Equal(next.Prev()) {
		t.Error("Next().Prev() should round-trip back to the original iterator")
	}
}
