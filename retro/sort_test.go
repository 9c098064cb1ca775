package retro

import "testing"

func TestSortedUnmovesOrdersByFromThenTo(t *testing.T) {
	moves := []UnMove{
		{From: MakeSquare(4, 3), To: MakeSquare(4, 0), Tag: Normal},
		{From: MakeSquare(0, 1), To: MakeSquare(0, 0), Tag: Normal},
		{From: MakeSquare(0, 1), To: MakeSquare(1, 0), Tag: Normal},
	}
	sorted := SortedUnmoves(moves)
	if len(sorted) != len(moves) {
		t.Fatalf("SortedUnmoves changed length: got %d, want %d", len(sorted), len(moves))
	}
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if a.From > b.From || (a.From == b.From && a.To > b.To) {
			t.Fatalf("SortedUnmoves not ordered at index %d: %v before %v", i, a, b)
		}
	}
}

func TestSortedUnmovesDoesNotMutateInput(t *testing.T) {
	moves := []UnMove{
		{From: MakeSquare(4, 3), To: MakeSquare(4, 0), Tag: Normal},
		{From: MakeSquare(0, 1), To: MakeSquare(0, 0), Tag: Normal},
	}
	original := append([]UnMove(nil), moves...)
	_ = SortedUnmoves(moves)
	for i := range moves {
		if moves[i] != original[i] {
			t.Fatalf("SortedUnmoves mutated its input slice at index %d", i)
		}
	}
}

// TestSortedUnmovesSymmetryInvariant checks §8 invariant 6: a horizontal
// flip relabels every legal unmove by the same file-mirroring permutation
// applied to the board, so the flipped position's legal unmoves are
// exactly the original's with From/To run through that permutation -- as
// a set, independent of either side's enumeration or sort order.
func TestSortedUnmovesSymmetryInvariant(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/N3K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	flipped := b.FlipHorizontal()

	original := SortedUnmoves(b.LegalUnmoves())
	fromFlipped := SortedUnmoves(flipped.LegalUnmoves())
	if len(original) != len(fromFlipped) {
		t.Fatalf("legal unmove count differs after FlipHorizontal: %d vs %d", len(original), len(fromFlipped))
	}

	flipFile := func(sq Square) Square { return MakeSquare(7-sq.File(), sq.Rank()) }
	want := make(map[[2]Square]bool, len(original))
	for _, u := range original {
		want[[2]Square{flipFile(u.From), flipFile(u.To)}] = true
	}
	for _, u := range fromFlipped {
		key := [2]Square{u.From, u.To}
		if !want[key] {
			t.Fatalf("flipped unmove %v has no counterpart among the mirrored originals", u)
		}
		delete(want, key)
	}
	if len(want) != 0 {
		t.Fatalf("%d mirrored original unmove(s) had no counterpart in the flipped set", len(want))
	}
}
