// Command arena-replay is a benchmark/input driver. It reads a stream of
// allocate/deallocate requests from stdin (or -input) and, for each
// scenario, prints the resulting block sentinels in arena order.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/orizon-lang/arenalloc/internal/replay"
)

func main() {
	var (
		inputPath = flag.String("input", "", "path to a replay workload file (default: stdin)")
		watch     = flag.Bool("watch", false, "re-run the replay whenever -input changes (requires -input)")
		format    = flag.String("format", "", "override the accepted #!format= semver constraint")
		arenaSize = flag.Int("arena-size", 1000, "arena capacity in bytes (N)")
	)

	flag.Parse()

	if *watch && *inputPath == "" {
		fmt.Fprintln(os.Stderr, "arena-replay: -watch requires -input")
		os.Exit(2)
	}

	opts := replay.Options{FormatConstraint: *format}

	if *watch {
		runWatch(*inputPath, *arenaSize, opts)
		return
	}

	in := os.Stdin

	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("arena-replay: %v", err)
		}

		defer f.Close()

		in = f
	}

	if err := replay.Run[float64](in, os.Stdout, *arenaSize, opts); err != nil {
		log.Fatalf("arena-replay: %v", err)
	}
}

func runWatch(inputPath string, arenaSize int, opts replay.Options) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := replay.Watch[float64](ctx, inputPath, os.Stdout, arenaSize, opts, func(runErr error) {
		if runErr != nil {
			log.Printf("arena-replay: %v", runErr)
		}
	})
	if err != nil {
		log.Fatalf("arena-replay: %v", err)
	}
}
