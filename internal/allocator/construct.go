package allocator

import "io"

// ConstructAt places v into the slot at p. It does not touch any
// sentinel; callers must only invoke it on a slot returned by Allocate and
// not yet destroyed.
func (a *Arena[T]) ConstructAt(p *T, v T) {
	*p = v
}

// DestroyAt finalizes the value at p. If T implements io.Closer,
// its Close method is invoked as the closest Go idiom to a C++ destructor;
// otherwise DestroyAt is a no-op. It does not touch any sentinel, and does
// not itself deallocate the slot — callers still owe a matching
// Deallocate.
func (a *Arena[T]) DestroyAt(p *T) error {
	if c, ok := any(*p).(io.Closer); ok {
		return c.Close()
	}

	return nil
}
