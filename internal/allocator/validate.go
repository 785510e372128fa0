package allocator

// Valid walks the arena from Begin to End and confirms every block's head
// and tail sentinels agree, that the walk terminates exactly at End, and
// that every payload size is a positive multiple of 4.
//
// This checks BOTH magnitude and sign of the paired sentinels: a BUSY head
// paired with a FREE tail of equal magnitude is treated as invalid, a case
// a magnitude-only comparison would miss.
func (a *Arena[T]) Valid() bool {
	it := a.Begin()
	end := a.End()

	for !it.Equal(end) {
		head := it.Head()
		mag := abs32(head)

		if mag <= 0 || mag%4 != 0 {
			return false
		}

		tailPos := it.pos + 4 + int(mag)
		if tailPos+4 > a.store.size() {
			return false
		}

		tail := a.store.wordAt(tailPos)
		if tail != head {
			return false
		}

		it = it.Next()
	}

	return it.Equal(end)
}
