package allocator

import "unsafe"

// Deallocate frees the block at p, which must be a pointer previously
// returned by Allocate on this arena and not yet passed to Deallocate. It
// marks the block FREE and coalesces with a FREE predecessor and/or
// successor, merging up to three blocks into one.
func (a *Arena[T]) Deallocate(p *T) error {
	if p == nil {
		return NewInvalidArgument("pointer is nil", nil)
	}

	payloadOff, ok := a.store.offsetOf(unsafe.Pointer(p))
	if !ok {
		return NewInvalidArgument("pointer does not belong to this arena", nil)
	}

	headPos := payloadOff - 4
	if headPos < 0 || headPos >= a.n {
		return NewInvalidArgument("pointer is not aligned to a block boundary", map[string]any{"offset": payloadOff})
	}

	head := a.store.wordAt(headPos)
	if head >= 0 {
		return NewInvalidArgument("pointer refers to a block that is already free", map[string]any{"offset": payloadOff})
	}

	size := int64(-head)
	a.store.setWordAt(headPos, int32(size))
	a.store.setWordAt(headPos+4+int(size), int32(size))

	// Backward coalesce: merge with a FREE predecessor.
	if headPos != 0 {
		prevTailPos := headPos - 4
		prevTail := a.store.wordAt(prevTailPos)

		if prevTail > 0 {
			prevSize := int64(prevTail)
			prevHeadPos := prevTailPos - int(prevSize) - 4
			newSize := prevSize + 8 + size

			a.store.setWordAt(prevHeadPos, int32(newSize))
			a.store.setWordAt(headPos+4+int(size), int32(newSize))

			headPos = prevHeadPos
			size = newSize
		}
	}

	// Forward coalesce: merge with a FREE successor.
	nextPos := headPos + 8 + int(size)
	if nextPos != a.n {
		nextHead := a.store.wordAt(nextPos)

		if nextHead > 0 {
			nextSize := int64(nextHead)
			newSize := size + 8 + nextSize
			tailPos := nextPos + 4 + int(nextSize)

			a.store.setWordAt(headPos, int32(newSize))
			a.store.setWordAt(tailPos, int32(newSize))
		}
	}

	assertValid(a, "Deallocate")

	return nil
}
