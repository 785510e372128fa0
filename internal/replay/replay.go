// Package replay implements a benchmark/input driver: it reads a stream
// of signed integers describing a mixed allocate/deallocate workload and
// replays it against a fresh allocator.Arena per scenario, printing the
// resulting block sentinels.
//
// This package sits outside the core allocator: it drives an Arena
// through its public operations only, never reaching into block
// internals itself.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/arenalloc/internal/allocator"
)

// defaultFormatConstraint is the semver range accepted for a workload's
// optional leading "#!format=" directive when FormatConstraint is unset.
const defaultFormatConstraint = ">=1.0.0, <2.0.0"

// Options configures a replay run.
type Options struct {
	// FormatConstraint overrides the semver range an input's optional
	// "#!format=<version>" directive must satisfy.
	FormatConstraint string

	// ArenaOptions is forwarded to allocator.NewArena for every scenario.
	ArenaOptions []allocator.Option
}

// Run reads a scenario stream from r and writes one sentinel-dump line
// per scenario to w. n is the byte capacity of each scenario's arena.
func Run[T any](r io.Reader, w io.Writer, n int, opts Options) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	constraintExpr := opts.FormatConstraint
	if constraintExpr == "" {
		constraintExpr = defaultFormatConstraint
	}

	constraint, err := semver.NewConstraint(constraintExpr)
	if err != nil {
		return fmt.Errorf("replay: invalid format constraint %q: %w", constraintExpr, err)
	}

	if !scanner.Scan() {
		return nil
	}

	line := scanner.Text()

	if rest, ok := strings.CutPrefix(line, "#!format="); ok {
		ver, err := semver.NewVersion(strings.TrimSpace(rest))
		if err != nil {
			return fmt.Errorf("replay: malformed format directive %q: %w", line, allocator.ErrConfig)
		}

		if !constraint.Check(ver) {
			return fmt.Errorf("replay: input format %s does not satisfy %s: %w", ver, constraintExpr, allocator.ErrConfig)
		}

		if !scanner.Scan() {
			return nil
		}

		line = scanner.Text()
	}

	tests, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("replay: invalid scenario count %q: %w", line, err)
	}

	if tests < 1 || tests > 100 {
		return fmt.Errorf("replay: scenario count %d out of range [1, 100]", tests)
	}

	// The line immediately after the count is blank, separating it from
	// the first scenario's tokens.
	scanner.Scan()

	for i := 0; i < tests; i++ {
		if err := runScenario[T](scanner, w, n, opts.ArenaOptions); err != nil {
			return fmt.Errorf("replay: scenario %d: %w", i+1, err)
		}
	}

	return scanner.Err()
}

func runScenario[T any](scanner *bufio.Scanner, w io.Writer, n int, arenaOpts []allocator.Option) error {
	arena, err := allocator.NewArena[T](n, arenaOpts...)
	if err != nil {
		return err
	}
	defer arena.Close()

	var live []*T

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			break
		}

		tok, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("invalid token %q: %w", text, err)
		}

		if tok == 0 {
			return fmt.Errorf("token must be non-zero")
		}

		if tok > 0 {
			p, err := arena.Allocate(tok)
			if err != nil {
				return err
			}

			live = append(live, p)
			sort.Slice(live, func(a, b int) bool {
				return arena.Address(live[a]) < arena.Address(live[b])
			})
		} else {
			idx := -tok - 1
			if idx < 0 || idx >= len(live) {
				return fmt.Errorf("deallocate index %d out of range (%d live pointers)", -tok, len(live))
			}

			if err := arena.Deallocate(live[idx]); err != nil {
				return err
			}

			live = append(live[:idx], live[idx+1:]...)
		}
	}

	return dumpSentinels(arena, w)
}

func dumpSentinels[T any](arena *allocator.Arena[T], w io.Writer) error {
	it := arena.Begin()
	end := arena.End()

	first := true

	for !it.Equal(end) {
		if !first {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}

		first = false

		if _, err := fmt.Fprintf(w, "%d", it.Head()); err != nil {
			return err
		}

		it = it.Next()
	}

	_, err := io.WriteString(w, "\n")

	return err
}
