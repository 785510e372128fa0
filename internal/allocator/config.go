package allocator

// Config controls the ambient behaviour of an Arena: debug assertions and
// which storage backend carries the N-byte region. It never affects the
// boundary-tag layout itself.
type Config struct {
	// EnableDebug re-validates the whole arena after every Allocate and
	// Deallocate, panicking on the first invariant violation. O(blocks)
	// per call; leave off for anything benchmark-sensitive.
	EnableDebug bool

	// UseMmapBacking backs the arena's storage with an anonymous mmap
	// region (golang.org/x/sys/unix) instead of a Go byte slice, on
	// platforms that support it. See WithMmapBacking.
	UseMmapBacking bool
}

// Option configures an Arena at construction time.
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		EnableDebug:    true,
		UseMmapBacking: false,
	}
}

// WithDebug toggles post-operation validation. Tests should generally leave
// it on; long-running replay workloads over large arenas may disable it.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.EnableDebug = enabled }
}

// WithMmapBacking requests an mmap-backed storage region instead of a Go
// slice. Returns a ConfigError at construction time on platforms where
// mmap backing isn't wired up (see storage_mmap_other.go).
func WithMmapBacking() Option {
	return func(c *Config) { c.UseMmapBacking = true }
}
