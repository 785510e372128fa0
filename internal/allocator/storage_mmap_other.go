//go:build !unix

package allocator

import "fmt"

// newMmapStore has no implementation outside unix targets; WithMmapBacking
// surfaces this as a ConfigError rather than failing to build.
func newMmapStore(n int) (wordStore, error) {
	return nil, fmt.Errorf("mmap-backed arenas are not supported on this platform")
}
