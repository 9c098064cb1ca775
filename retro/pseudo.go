package retro

import (
	"math/bits"

	"github.com/retrochess/retroboard/internal/attacks"
)

// PseudoUnmoves enumerates every mechanically-reachable unmove for the side
// to un-move, ignoring king safety and checker consistency. It is grounded
// on the teacher's movegen.go per-piece bitboard walk, generalized to walk
// backward (from occupied squares to empty predecessor squares) instead of
// forward.
func (b *Board) PseudoUnmoves() []UnMove {
	moves := make([]UnMove, 0, 64)
	us := b.sideToUnmove
	occ := b.Occupancy()

	for bb := b.knights[us]; bb != 0; bb &= bb - 1 {
		sq := Square(bits.TrailingZeros64(bb))
		moves = b.genStepperOrSlider(moves, sq, Knight, attacks.KnightAttacks(int(sq)), occ)
	}
	for bb := b.bishops[us]; bb != 0; bb &= bb - 1 {
		sq := Square(bits.TrailingZeros64(bb))
		moves = b.genStepperOrSlider(moves, sq, Bishop, attacks.AttacksOf(attacks.Bishop, int(sq), occ), occ)
	}
	for bb := b.rooks[us]; bb != 0; bb &= bb - 1 {
		sq := Square(bits.TrailingZeros64(bb))
		moves = b.genStepperOrSlider(moves, sq, Rook, attacks.AttacksOf(attacks.Rook, int(sq), occ), occ)
	}
	for bb := b.queens[us]; bb != 0; bb &= bb - 1 {
		sq := Square(bits.TrailingZeros64(bb))
		moves = b.genStepperOrSlider(moves, sq, Queen, attacks.AttacksOf(attacks.Queen, int(sq), occ), occ)
	}
	for bb := b.kings[us]; bb != 0; bb &= bb - 1 {
		sq := Square(bits.TrailingZeros64(bb))
		moves = b.genStepperOrSlider(moves, sq, King, attacks.KingAttacks(int(sq)), occ)
	}

	moves = b.genUnpromotions(moves, us)
	moves = b.genPawns(moves, us)

	return moves
}

// genStepperOrSlider handles the Normal/Uncapture split shared by knights,
// kings and sliders: every empty square the piece's attack set reaches is a
// candidate predecessor square.
func (b *Board) genStepperOrSlider(moves []UnMove, sq Square, k PieceKind, targets uint64, occ uint64) []UnMove {
	us := b.sideToUnmove
	piece := MakePiece(us, k)
	empty := targets &^ occ
	for t := empty; t != 0; t &= t - 1 {
		from := Square(bits.TrailingZeros64(t))
		moves = append(moves, UnMove{From: from, To: sq, Piece: piece, Tag: Normal})
		moves = b.genUncaptures(moves, from, sq, piece, false)
	}
	return moves
}

// genUncaptures appends one Uncapture (or UnpromotionUncapture, if
// unpromotion is set) unmove per distinct kind present in the opponent's
// pocket, enforcing (E): an un-captured pawn may never land on rank 1 or 8.
func (b *Board) genUncaptures(moves []UnMove, from, to Square, piece Piece, unpromotion bool) []UnMove {
	them := piece.Color().Other()
	pocket := b.pockets[them]
	tag := Uncapture
	if unpromotion {
		tag = UnpromotionUncapture
	}
	for _, k := range pocketKinds {
		if pocket.Count(k) == 0 {
			continue
		}
		if k == Pawn && (to.Rank() == 0 || to.Rank() == 7) {
			continue
		}
		moves = append(moves, UnMove{From: from, To: to, Piece: piece, Tag: tag, Captured: k})
	}
	return moves
}

// genUnpromotions generates Unpromotion/UnpromotionUncapture candidates for
// every non-pawn piece of us standing on us' promotion rank.
func (b *Board) genUnpromotions(moves []UnMove, us Color) []UnMove {
	rank := promotionRank(us)
	backRank := rank - pawnForward(us)/8

	for _, k := range []PieceKind{Knight, Bishop, Rook, Queen} {
		bb := *b.bitboardFor(us, k) & rankMask(rank)
		for t := bb; t != 0; t &= t - 1 {
			sq := Square(bits.TrailingZeros64(t))
			piece := MakePiece(us, k)
			file := sq.File()

			straightFrom := MakeSquare(file, backRank)
			if b.PieceAt(straightFrom) == NoPiece {
				moves = append(moves, UnMove{From: straightFrom, To: sq, Piece: piece, Tag: Unpromotion})
			}
			for _, df := range [2]int{-1, 1} {
				df2 := file + df
				if df2 < 0 || df2 > 7 {
					continue
				}
				diagFrom := MakeSquare(df2, backRank)
				moves = b.genUncaptures(moves, diagFrom, sq, piece, true)
			}
		}
	}
	return moves
}

// genPawns generates straight single retreats (never onto rank 1 or 8),
// diagonal uncaptures, and the double-push reversal (always tagged Normal; the
// legality filter re-tags the ep-consistent one to EnPassant) for every
// pawn of us not standing on its promotion rank.
func (b *Board) genPawns(moves []UnMove, us Color) []UnMove {
	fwd := pawnForward(us)
	piece := MakePiece(us, Pawn)
	promRank := promotionRank(us)

	for bb := b.pawns[us]; bb != 0; bb &= bb - 1 {
		sq := Square(bits.TrailingZeros64(bb))
		if sq.Rank() == promRank {
			continue
		}
		file := sq.File()

		straightFrom := Square(int(sq) - fwd)
		if straightFrom.Rank() != 0 && straightFrom.Rank() != 7 && b.PieceAt(straightFrom) == NoPiece {
			moves = append(moves, UnMove{From: straightFrom, To: sq, Piece: piece, Tag: Normal})
		}

		backRank := straightFrom.Rank()
		for _, df := range [2]int{-1, 1} {
			df2 := file + df
			if df2 < 0 || df2 > 7 {
				continue
			}
			diagFrom := MakeSquare(df2, backRank)
			if diagFrom.Rank() == 0 || diagFrom.Rank() == 7 {
				continue
			}
			moves = b.genUncaptures(moves, diagFrom, sq, piece, false)
		}

		if sq.Rank() == doublePushDestRank(us) {
			intermediate := straightFrom
			origin := Square(int(sq) - 2*fwd)
			if b.PieceAt(intermediate) == NoPiece && b.PieceAt(origin) == NoPiece {
				moves = append(moves, UnMove{From: origin, To: sq, Piece: piece, Tag: Normal})
			}
		}
	}
	return moves
}

// doublePushDestRank returns the rank (0-based) a pawn of color c stands on
// immediately after a double push: rank 3 for White, rank 4 for Black.
func doublePushDestRank(c Color) int {
	if c == White {
		return 3
	}
	return 4
}

func rankMask(rank int) uint64 {
	return 0xff << (8 * rank)
}
