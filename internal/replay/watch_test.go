package replay

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestWatchRerunsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workload.txt")

	if err := os.WriteFile(path, []byte("1\n\n1\n-1\n\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var (
		mu  sync.Mutex
		buf strings.Builder
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- Watch[float64](ctx, path, &discardWriter{
			onWrite: func(s string) {
				mu.Lock()
				buf.WriteString(s)
				mu.Unlock()
			},
		}, 1000, Options{}, func(error) {})
	}()

	// Give the watcher time to perform its initial run.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("1\n\n50\n\n"), 0o644); err != nil {
		t.Fatalf("WriteFile (update): %v", err)
	}

	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}

	mu.Lock()
	full := buf.String()
	mu.Unlock()

	lines := strings.Split(strings.TrimRight(full, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("got %d run lines, want at least 2 (initial + update): %q", len(lines), full)
	}

	if !strings.Contains(lines[0], "992") {
		t.Errorf("first run output = %q, want to contain 992", lines[0])
	}

	last := lines[len(lines)-1]
	if !strings.Contains(last, "-400") {
		t.Errorf("last run output = %q, want to contain -400", last)
	}
}

// discardWriter adapts a callback to io.Writer, one call per Write.
type discardWriter struct {
	onWrite func(string)
}

func (d *discardWriter) Write(p []byte) (int, error) {
	d.onWrite(string(p))

	return len(p), nil
}
