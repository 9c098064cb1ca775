package retro

import (
	"math/bits"

	"github.com/retrochess/retroboard/internal/attacks"
)

// isSlider reports whether pieces of kind k have attacks that can be
// discovered by vacating a square on one of their rays.
func isSlider(k PieceKind) bool { return k == Bishop || k == Rook || k == Queen }

// isLegal applies §4.5 (A)-(E) to a single pseudo-unmove candidate u,
// already known to be mechanically well-formed. The board is restored to
// its pre-call state before returning in every case.
func (b *Board) isLegal(u UnMove, checkers uint64) bool {
	us := b.sideToUnmove
	them := us.Other()

	if !b.sourceEmpty(u) {
		return false
	}
	if !b.pawnPromotionEPRules(u) {
		return false
	}
	if !b.checkerConsistent(u, checkers, them) {
		return false
	}
	return b.leavesUsSafe(u, us, them)
}

// sourceEmpty is (A): `from` must be empty on the current board, and any
// un-capture/un-promotion-with-capture must draw from a non-empty pocket
// slot of the named kind.
func (b *Board) sourceEmpty(u UnMove) bool {
	if b.PieceAt(u.From) != NoPiece {
		return false
	}
	if u.IsUncapture() {
		them := u.Piece.Color().Other()
		if b.pockets[them].Count(u.Captured) == 0 {
			return false
		}
	}
	return true
}

// pawnPromotionEPRules is (D) and (E).
func (b *Board) pawnPromotionEPRules(u UnMove) bool {
	us := b.sideToUnmove

	if u.IsUnpromotion() {
		if u.To.Rank() != promotionRank(us) {
			return false
		}
		wantRank := promotionRank(us) - pawnForward(us)/8
		if u.From.Rank() != wantRank {
			return false
		}
	}

	if u.Tag == EnPassant {
		if b.epSquare == NoSquare {
			return false
		}
		intermediate := Square((int(u.To) + int(u.From)) / 2)
		if intermediate != b.epSquare {
			return false
		}
	}

	if u.IsUncapture() && u.Captured == Pawn && (u.To.Rank() == 0 || u.To.Rank() == 7) {
		return false
	}

	return true
}

// checkerConsistent is (C): the forward move `u` undoes must produce
// exactly the checker set currently observed on them's king.
func (b *Board) checkerConsistent(u UnMove, checkers uint64, them Color) bool {
	switch bits.OnesCount64(checkers) {
	case 0:
		return b.predecessorCheckersEmpty(u, them)
	case 1:
		s := Square(bits.TrailingZeros64(checkers))
		if s == u.To {
			return b.predecessorCheckersEmpty(u, them)
		}
		return b.discoveredCheckLegal(u, s, them)
	case 2:
		s1 := Square(bits.TrailingZeros64(checkers))
		s2 := Square(bits.TrailingZeros64(checkers &^ bit(s1)))
		var other Square
		switch u.To {
		case s1:
			other = s2
		case s2:
			other = s1
		default:
			return false
		}
		return b.discoveredCheckLegal(u, other, them)
	default:
		return false
	}
}

// predecessorCheckersEmpty pushes u and reports whether, afterward, no
// piece of us attacks them's king. It covers the no-checker case (the
// predecessor, with them not on move, must not have them in check) and the
// direct-check case: the mover was the sole checker, and un-making its move
// must not leave any other attacker standing.
func (b *Board) predecessorCheckersEmpty(u UnMove, them Color) bool {
	us := them.Other()
	b.Push(u)
	ok := b.Attackers(b.KingSquare(them), us) == 0
	b.Pop(u)
	return ok
}

// discoveredCheckLegal handles the |C|=1 discovered-check and |C|=2
// double-check branches of (C): checker is piece X on square s, distinct
// from the mover. X's check on the current board must be explained as
// having been uncovered by the mover vacating `from`: X must be a slider,
// `from` must lie strictly between X and them's king on one of X's rays,
// and -- the actual test, since it also subsumes "the rest of the ray was
// already clear" -- pushing u (putting the mover back on `from`, which
// re-blocks X) must leave them's king completely unattacked by us. If
// anything of ours still attacked them's king in that predecessor, the
// predecessor itself would be an illegal position (the side not to move
// can never be in check), so u cannot be the real forward move.
func (b *Board) discoveredCheckLegal(u UnMove, s Square, them Color) bool {
	us := them.Other()
	checker := b.PieceAt(s)
	if checker == NoPiece || !isSlider(checker.Kind()) {
		return false
	}
	kingSq := b.KingSquare(them)
	if attacks.Between(int(s), int(kingSq))&bit(u.From) == 0 {
		return false
	}

	b.Push(u)
	after := b.Attackers(kingSq, us)
	b.Pop(u)
	return after == 0
}

// leavesUsSafe is (B): after applying u, us' king must not be attacked by
// them's reconstructed piece set (push already performs the
// reconstruction -- placing any un-captured piece back on `to`).
func (b *Board) leavesUsSafe(u UnMove, us, them Color) bool {
	b.Push(u)
	safe := !b.IsAttacked(b.KingSquare(us), them)
	b.Pop(u)
	return safe
}
