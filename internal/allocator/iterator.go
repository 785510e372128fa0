package allocator

// Iterator walks an Arena block by block. It carries a single
// 4-byte-aligned byte offset into the arena's storage; dereferencing it
// (Head) yields the head sentinel of the block starting there.
//
// Iterator is a small value type, not a pointer: copying one copies the
// cursor, and two Iterators compare Equal iff they reference the same
// offset into the same storage.
type Iterator struct {
	store wordStore
	pos   int
}

// Head returns the head sentinel at the iterator's current position.
func (it Iterator) Head() int32 {
	return it.store.wordAt(it.pos)
}

// Next advances past the current block: the payload size encoded in the
// head sentinel plus the two 4-byte sentinels that bound it.
func (it Iterator) Next() Iterator {
	mag := abs32(it.Head())

	return Iterator{store: it.store, pos: it.pos + int(mag) + 8}
}

// Prev steps back onto the previous block's head sentinel by first reading
// its tail sentinel immediately before the current position.
func (it Iterator) Prev() Iterator {
	tailPos := it.pos - 4
	mag := abs32(it.store.wordAt(tailPos))

	return Iterator{store: it.store, pos: tailPos - int(mag) - 4}
}

// Equal reports whether two iterators reference the same address.
func (it Iterator) Equal(other Iterator) bool {
	return it.store == other.store && it.pos == other.pos
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}

	return v
}
