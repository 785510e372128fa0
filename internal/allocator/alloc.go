package allocator

// Allocate performs a first-fit search for a FREE block whose payload can
// hold n contiguous T slots. On success it returns a pointer to the first
// slot; on failure (no free block large enough) it returns an OutOfMemory
// error and leaves the arena unchanged.
func (a *Arena[T]) Allocate(n int) (*T, error) {
	if n < 1 {
		panic("allocator: Allocate requires n >= 1")
	}

	req := int64(a.elemSize) * int64(n)

	it := a.Begin()
	end := a.End()

	for !it.Equal(end) {
		head := it.Head()
		if head > 0 && int64(head) >= req {
			ptr := a.carve(it.pos, int64(head), req)
			assertValid(a, "Allocate")

			return ptr, nil
		}

		it = it.Next()
	}

	return nil, NewOutOfMemory("no free block large enough", map[string]any{
		"requestedSlots": n, "requestedBytes": req,
	})
}

// carve splits or fully consumes the free block starting at pos (with
// payload size avail) to satisfy a request of req bytes, and returns a
// pointer to the new block's payload.
func (a *Arena[T]) carve(pos int, avail, req int64) *T {
	rem := avail - req - 8

	if rem >= int64(a.elemSize) {
		// Split: carve a busy block of payload req, leave a legal free
		// block of payload rem behind it.
		a.store.setWordAt(pos, int32(-req))
		a.store.setWordAt(pos+4+int(req), int32(-req))

		remPos := pos + 8 + int(req)
		a.store.setWordAt(remPos, int32(rem))
		a.store.setWordAt(remPos+4+int(rem), int32(rem))
	} else {
		// Remainder too small to host a legal free block: absorb it into
		// the allocated block instead of leaving a zero/undersized block.
		a.store.setWordAt(pos, int32(-avail))
		a.store.setWordAt(pos+4+int(avail), int32(-avail))
	}

	return (*T)(a.store.ptrAt(pos + 4))
}
