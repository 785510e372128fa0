package allocator

import (
	"log"
	"os"
)

// debugLog carries only assertion failures; it is never written to on the
// successful path. Validation stays a debug-mode assertion, not an
// observable diagnostics feature.
var debugLog = log.New(os.Stderr, "allocator: ", log.LstdFlags|log.Lmicroseconds)

// assertValid re-validates the arena when debug mode is on, panicking with
// the offending operation name if an invariant was broken. A failed
// assertion indicates a bug in this package, not a recoverable condition.
func assertValid[T any](a *Arena[T], op string) {
	if !a.cfg.EnableDebug {
		return
	}

	if !a.Valid() {
		debugLog.Panicf("arena invariant violated after %s", op)
	}
}
