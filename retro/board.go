package retro

import (
	"math/bits"

	"github.com/retrochess/retroboard/internal/attacks"
)

// uncastleRights is bookkeeping-only: it is tracked so a Position -> Board
// -> Position round trip is faithful for downstream consumers, but §3/§4.5
// are explicit that it is never consulted by the generator and no unmove
// ever re-grants or revokes it beyond carrying it through push/pop
// unchanged.
type uncastleRights uint8

const (
	uncastleWhiteK uncastleRights = 1 << iota
	uncastleWhiteQ
	uncastleBlackK
	uncastleBlackQ
)

// Board is the stateful retrograde position: piece placement, the side to
// un-move, both pockets, an optional en passant square, and uncastling
// rights. It is mutated exclusively by Push and Pop.
type Board struct {
	pieceAt [64]Piece

	byColor [2]uint64 // occupancy per color
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	sideToUnmove Color
	pockets      [2]Pocket
	epSquare     Square
	uncastle     uncastleRights
	halfmove     int
	fullmove     int

	// epHistory is the Push/Pop undo trail for epSquare: Push appends
	// the pre-push value, Pop restores and pops it. It lets Push/Pop
	// nest arbitrarily deep (as in a recursive retrograde walk) without
	// requiring the caller to maintain any history of its own.
	epHistory []Square
}

// SideToUnmove returns the retro-turn: the side whose turn it is to
// un-move, i.e. the side that made the most recent forward move.
func (b *Board) SideToUnmove() Color { return b.sideToUnmove }

// Pocket returns a copy of color c's pocket.
func (b *Board) Pocket(c Color) Pocket { return b.pockets[c] }

// EPSquare returns the current en passant target square, or NoSquare.
func (b *Board) EPSquare() Square { return b.epSquare }

// PieceAt returns the piece on sq, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece { return b.pieceAt[sq] }

// Occupancy returns the union of both colors' occupied squares.
func (b *Board) Occupancy() uint64 { return b.byColor[White] | b.byColor[Black] }

// ColorOccupancy returns the occupied squares belonging to c.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.byColor[c] }

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return Square(bits.TrailingZeros64(b.kings[c]))
}

func (b *Board) bitboardFor(c Color, k PieceKind) *uint64 {
	switch k {
	case Pawn:
		return &b.pawns[c]
	case Knight:
		return &b.knights[c]
	case Bishop:
		return &b.bishops[c]
	case Rook:
		return &b.rooks[c]
	case Queen:
		return &b.queens[c]
	case King:
		return &b.kings[c]
	default:
		panic("retro: unknown piece kind")
	}
}

// place puts piece p on sq, which must currently be empty.
func (b *Board) place(sq Square, p Piece) {
	b.pieceAt[sq] = p
	c := p.Color()
	b.byColor[c] |= bit(sq)
	*b.bitboardFor(c, p.Kind()) |= bit(sq)
}

// remove clears sq, which must currently hold a piece, and returns it.
func (b *Board) remove(sq Square) Piece {
	p := b.pieceAt[sq]
	b.pieceAt[sq] = NoPiece
	c := p.Color()
	b.byColor[c] &^= bit(sq)
	*b.bitboardFor(c, p.Kind()) &^= bit(sq)
	return p
}

// Attackers returns the bitboard of every square occupied by a piece of
// color `by` that attacks `sq`, given the current board occupancy.
func (b *Board) Attackers(sq Square, by Color) uint64 {
	return b.attackersWithOcc(sq, by, b.Occupancy())
}

// attackersWithOcc is Attackers but against a caller-supplied occupancy, so
// the legality filter can ask "who would attack this square if the board
// looked like this" without mutating the real board.
func (b *Board) attackersWithOcc(sq Square, by Color, occ uint64) uint64 {
	s := int(sq)
	var out uint64

	out |= attacks.PawnAttacks(oppositeAttacksColor(by), s) & b.pawns[by]
	out |= attacks.KnightAttacks(s) & b.knights[by]
	out |= attacks.KingAttacks(s) & b.kings[by]

	rq := b.rooks[by] | b.queens[by]
	if rq != 0 {
		out |= attacks.AttacksOf(attacks.Rook, s, occ) & rq
	}
	bq := b.bishops[by] | b.queens[by]
	if bq != 0 {
		out |= attacks.AttacksOf(attacks.Bishop, s, occ) & bq
	}
	return out
}

// oppositeAttacksColor converts a retro.Color into the attacks.Color whose
// pawn table gives the squares *attacked by* a pawn standing on sq for a
// pawn of color `by` -- which is the reverse-direction table, i.e. the
// table for the opponent's pawns, since "does a white pawn on e4 attack
// d5/f5" uses the same offsets as "what attacks e4 diagonally from below".
func oppositeAttacksColor(by Color) attacks.Color {
	if by == White {
		return attacks.Black
	}
	return attacks.White
}

// IsAttacked reports whether sq is attacked by any piece of color `by`.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.Attackers(sq, by) != 0
}

// Checkers returns the bitboard of color `by`'s pieces that currently give
// check to the king of color `of`.
func (b *Board) Checkers(of Color) uint64 {
	ksq := b.KingSquare(of)
	return b.Attackers(ksq, of.Other())
}

// promotionRank returns the back rank (0-based) a pawn of color c promotes
// on: rank 7 (the 8th rank) for White, rank 0 (the 1st rank) for Black.
func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pawnStartRank returns the rank (0-based) pawns of color c begin the game
// on: rank 1 for White, rank 6 for Black.
func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

// pawnForward returns the direction (+8/-8) a pawn of color c advances.
func pawnForward(c Color) int {
	if c == White {
		return 8
	}
	return -8
}
