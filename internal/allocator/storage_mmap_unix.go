//go:build unix

package allocator

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmapStore backs an Arena with an anonymous, private mmap mapping. It
// keeps the arena's bytes off the Go heap entirely, which matters for
// arenas large enough that a client doesn't want the GC scanning or
// copying them.
type mmapStore struct {
	buf []byte
}

func newMmapStore(n int) (wordStore, error) {
	buf, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", n, err)
	}

	return &mmapStore{buf: buf}, nil
}

func (s *mmapStore) size() int { return len(s.buf) }

func (s *mmapStore) wordAt(off int) int32 {
	return *(*int32)(unsafe.Pointer(&s.buf[off]))
}

func (s *mmapStore) setWordAt(off int, v int32) {
	*(*int32)(unsafe.Pointer(&s.buf[off])) = v
}

func (s *mmapStore) ptrAt(off int) unsafe.Pointer {
	return unsafe.Pointer(&s.buf[off])
}

func (s *mmapStore) offsetOf(ptr unsafe.Pointer) (int, bool) {
	if len(s.buf) == 0 {
		return 0, false
	}

	base := uintptr(unsafe.Pointer(&s.buf[0]))
	p := uintptr(ptr)

	if p < base || p >= base+uintptr(len(s.buf)) {
		return 0, false
	}

	return int(p - base), true
}

func (s *mmapStore) close() error {
	return unix.Munmap(s.buf)
}
