package retro

import "golang.org/x/exp/slices"

// SortedUnmoves returns a copy of moves in a stable, deterministic order
// (by From, then To, then Tag, then Captured kind), independent of the
// order PseudoUnmoves/LegalUnmoves happened to enumerate them in, which
// tracks bitboard iteration order and is not meant to be relied on.
// Tests comparing unmove sets across a geometric transform sort through
// this so set equality doesn't depend on enumeration order.
func SortedUnmoves(moves []UnMove) []UnMove {
	out := append([]UnMove(nil), moves...)
	slices.SortFunc(out, func(a, b UnMove) int {
		if a.From != b.From {
			return int(a.From) - int(b.From)
		}
		if a.To != b.To {
			return int(a.To) - int(b.To)
		}
		if a.Tag != b.Tag {
			return int(a.Tag) - int(b.Tag)
		}
		return int(a.Captured) - int(b.Captured)
	})
	return out
}
