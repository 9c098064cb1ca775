package main

import (
	"context"
	"testing"

	"github.com/retrochess/retroboard/retro"
)

func TestExpandLayerFindsDistinctPredecessors(t *testing.T) {
	b, err := retro.NewBoard("8/8/8/8/8/8/8/N3K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	layer := map[positionKey]*retro.Board{keyOf(b): b}

	next, err := expandLayer(context.Background(), layer, 2)
	if err != nil {
		t.Fatalf("expandLayer: %v", err)
	}
	if len(next) == 0 {
		t.Fatalf("expected at least one predecessor, got none")
	}
	for k, pred := range next {
		if keyOf(pred) != k {
			t.Errorf("map key %q does not match keyOf(board) %q", k, keyOf(pred))
		}
	}
}

func TestRunWalksStartingPositionToDepthLimit(t *testing.T) {
	// From the fresh starting array only knights (and later the rooks
	// beside them) have squares to retreat to; pawns on their start rank
	// cannot retreat onto the back rank. Every predecessor reached within
	// the depth limit must round-trip through NewBoard without error.
	j := &job{
		Positions: []startPosition{{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"}},
		Depth:     5,
		Workers:   2,
	}
	if err := run(context.Background(), j); err != nil {
		t.Fatalf("run: %v", err)
	}
}
