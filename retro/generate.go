package retro

import "math/bits"

// maxCheckers is the largest checker count a single forward move can ever
// produce (§4.5(C), |C| >= 3 case): no unmove is legal, and there's no
// need to even walk the pseudo-unmove candidates.
const maxCheckers = 2

// LegalUnmoves returns every unmove legal in the current position, per
// §4.5 (A)-(E). The slice is freshly allocated and safe for the caller to
// keep past further Push/Pop calls on b.
func (b *Board) LegalUnmoves() []UnMove {
	them := b.sideToUnmove.Other()
	checkers := b.Checkers(them)
	if bits.OnesCount64(checkers) > maxCheckers {
		return nil
	}

	candidates := b.PseudoUnmoves()
	out := make([]UnMove, 0, len(candidates))

	if b.epSquare != NoSquare {
		for _, u := range candidates {
			if !b.isEPCandidate(u) {
				continue
			}
			u.Tag = EnPassant
			if b.isLegal(u, checkers) {
				out = append(out, u)
			}
		}
		return out
	}

	for _, u := range candidates {
		if b.isLegal(u, checkers) {
			out = append(out, u)
		}
	}
	return out
}

// isEPCandidate reports whether u is the one Normal double-push-back
// candidate whose intermediate square matches the board's current ep
// square -- the only pseudo-unmove admissible once an ep square is set
// (§3's ep-consistency invariant: any other unmove would have required
// the ep square to already be cleared).
func (b *Board) isEPCandidate(u UnMove) bool {
	if u.Tag != Normal || u.Piece.Kind() != Pawn {
		return false
	}
	diff := int(u.To) - int(u.From)
	if diff != 16 && diff != -16 {
		return false
	}
	intermediate := Square((int(u.To) + int(u.From)) / 2)
	return intermediate == b.epSquare
}
