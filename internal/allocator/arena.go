// Package allocator implements a fixed-capacity, boundary-tag heap
// allocator over a single contiguous byte region, generic over an element
// type T. An Arena partitions its N-byte region into variable-sized blocks
// carved out for T-aligned storage; Allocate returns a pointer to n
// contiguous T slots or fails, and Deallocate coalesces adjacent free
// blocks back together.
//
// The arena is strictly single-threaded: no operation locks, suspends, or
// is reentrant, and a payload pointer borrows from its Arena for as long as
// the Arena lives and the pointer hasn't been passed to Deallocate.
package allocator

import (
	"fmt"
	"unsafe"
)

// Arena owns exactly one N-byte storage region and the ordered sequence of
// blocks tiling it. Two distinct Arena values never compare equal — this
// package deliberately exposes no Equal method.
type Arena[T any] struct {
	store    wordStore
	n        int
	elemSize uintptr
	cfg      *Config
}

// NewArena constructs an Arena of n bytes, holding a single free block of
// payload size n-8. Fails with a ConfigError if n is smaller than
// sizeof(T)+8 or not a multiple of 4.
func NewArena[T any](n int, opts ...Option) (*Arena[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var zero T

	elemSize := unsafe.Sizeof(zero)

	if n%4 != 0 {
		return nil, NewConfigError("arena capacity must be a multiple of 4", map[string]any{"n": n})
	}

	if n < int(elemSize)+8 {
		return nil, NewConfigError("arena capacity too small for one element", map[string]any{
			"n": n, "min": int(elemSize) + 8,
		})
	}

	var (
		store wordStore
		err   error
	)

	if cfg.UseMmapBacking {
		store, err = newMmapStore(n)
		if err != nil {
			return nil, NewConfigError(fmt.Sprintf("mmap backing: %v", err), map[string]any{"n": n})
		}
	} else {
		store = newSliceStore(n)
	}

	a := &Arena[T]{store: store, n: n, elemSize: elemSize, cfg: cfg}

	initial := int32(n - 8)
	a.store.setWordAt(0, initial)
	a.store.setWordAt(n-4, initial)

	return a, nil
}

// Close releases the arena's backing storage (relevant only for the
// mmap-backed storage option; a no-op for the default slice storage).
// Payload pointers handed out by Allocate are invalidated by Close.
func (a *Arena[T]) Close() error {
	return a.store.close()
}

// N returns the arena's total byte capacity.
func (a *Arena[T]) N() int { return a.n }

// ElemSize returns sizeof(T) as used in this arena's arithmetic.
func (a *Arena[T]) ElemSize() uintptr { return a.elemSize }

// WordAt reads the 32-bit signed word at byte offset i, which must be
// 4-byte aligned and within [0, N).
func (a *Arena[T]) WordAt(i int) int32 {
	a.checkWordOffset(i)

	return a.store.wordAt(i)
}

// SetWordAt writes the 32-bit signed word at byte offset i, which must be
// 4-byte aligned and within [0, N).
func (a *Arena[T]) SetWordAt(i int, v int32) {
	a.checkWordOffset(i)

	a.store.setWordAt(i, v)
}

func (a *Arena[T]) checkWordOffset(i int) {
	if i < 0 || i+4 > a.n || i%4 != 0 {
		panic(fmt.Sprintf("allocator: word offset %d out of range or misaligned for arena of size %d", i, a.n))
	}
}

// Begin returns an Iterator at the arena's first block.
func (a *Arena[T]) Begin() Iterator {
	return Iterator{store: a.store, pos: 0}
}

// End returns an Iterator one past the arena's last block.
func (a *Arena[T]) End() Iterator {
	return Iterator{store: a.store, pos: a.n}
}

// Address returns the raw address of a payload pointer, used only to order
// live pointers (e.g. by the replay driver's sorted live-pointer list);
// it carries no meaning beyond relative ordering within this arena.
func (a *Arena[T]) Address(p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
