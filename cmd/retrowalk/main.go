// Command retrowalk drives the retro package across a whole layer of a
// tablebase construction at a time: starting from a set of seed positions,
// it fans legal_unmoves calls out over a worker pool and repeats on the
// resulting predecessors up to a configured depth, in the same
// channel/errgroup/WaitGroup shape as the donor corpus's own pipeline
// tools (see CounterGo's cmd/fengen and cmd/opengen).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/retrochess/retroboard/retro"
)

func main() {
	jobPath := flag.String("job", "", "path to a YAML job file (required)")
	flag.Parse()

	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "retrowalk: -job is required")
		os.Exit(2)
	}

	j, err := loadJob(*jobPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background(), j); err != nil {
		log.Fatal(err)
	}
}

// positionKey identifies a board state for deduplication across layers:
// the FEN (which already encodes placement, side, ep square and
// uncastling rights) plus both pockets, which FEN alone doesn't capture.
type positionKey string

func keyOf(b *retro.Board) positionKey {
	return positionKey(b.String())
}

// run walks the position graph backward from j.Positions for j.Depth
// layers, logging per-layer counts and colorizing layers that produced no
// predecessors (a terminal layer for that branch of the walk) versus ones
// still growing.
func run(ctx context.Context, j *job) error {
	log.Printf("retrowalk: starting with %d seed position(s), depth=%d, workers=%d", len(j.Positions), j.Depth, j.Workers)

	layer := make(map[positionKey]*retro.Board, len(j.Positions))
	for _, sp := range j.Positions {
		b, err := retro.NewBoard(sp.extendedFEN())
		if err != nil {
			log.Printf("retrowalk: skipping seed %q: %v", sp.FEN, err)
			continue
		}
		layer[keyOf(b)] = b
	}

	seen := make(map[positionKey]bool, len(layer))
	for k := range layer {
		seen[k] = true
	}

	for depth := 1; depth <= j.Depth && len(layer) > 0; depth++ {
		next, err := expandLayer(ctx, layer, j.Workers)
		if err != nil {
			return err
		}

		fresh := make(map[positionKey]*retro.Board, len(next))
		for k, b := range next {
			if seen[k] {
				continue
			}
			seen[k] = true
			fresh[k] = b
		}

		if len(fresh) == 0 {
			color.Yellow("layer %d: 0 new predecessors, walk closed", depth)
			return nil
		}
		color.Green("layer %d: %d new predecessor(s) (%d total seen)", depth, len(fresh), len(seen))
		for _, k := range sortedKeys(fresh) {
			log.Printf("  %s", k)
		}
		layer = fresh
	}

	return nil
}

// sortedKeys orders a layer's keys deterministically so repeated runs over
// the same job produce byte-identical, diffable logs regardless of the
// map's iteration order or any particular Board.String() formatting quirk.
func sortedKeys(layer map[positionKey]*retro.Board) []positionKey {
	keys := make([]positionKey, 0, len(layer))
	for k := range layer {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// expandLayer calls legal_unmoves on every board in layer concurrently
// (bounded by workers goroutines) and collects every distinct predecessor
// board reached from any of them.
func expandLayer(ctx context.Context, layer map[positionKey]*retro.Board, workers int) (map[positionKey]*retro.Board, error) {
	in := make(chan *retro.Board, len(layer))
	for _, b := range layer {
		in <- b
	}
	close(in)

	type found struct {
		key   positionKey
		board *retro.Board
	}
	out := make(chan found, 256)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for b := range in {
				for _, u := range b.LegalUnmoves() {
					b.Push(u)
					// Round-trip through the FEN text instead of copying
					// the Board struct directly: Board carries an
					// epHistory undo slice whose backing array a naive
					// shallow copy would alias across every predecessor
					// taken from the same b, corrupting later layers'
					// Push/Pop bookkeeping.
					pred, err := retro.NewBoard(b.String())
					if err != nil {
						b.Pop(u)
						return fmt.Errorf("retrowalk: round-tripping predecessor: %w", err)
					}
					out <- found{key: keyOf(pred), board: pred}
					b.Pop(u)
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
			return nil
		})
	}

	done := make(chan struct{})
	next := make(map[positionKey]*retro.Board)
	go func() {
		for f := range out {
			if _, ok := next[f.key]; !ok {
				next[f.key] = f.board
			}
		}
		close(done)
	}()

	err := g.Wait()
	close(out)
	<-done
	if err != nil {
		return nil, err
	}
	return next, nil
}
