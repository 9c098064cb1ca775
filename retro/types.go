// Package retro implements a chess retrograde move generator: given a
// position plus a record of which pieces are available to be un-captured
// (the "pockets"), it enumerates legal unmoves — predecessor positions from
// which the current position could have been reached by exactly one legal
// chess move.
//
// The package treats board geometry (rays, attack tables) and forward-chess
// move legality as external collaborators (see internal/attacks and
// convert.go's use of dragontoothmg) rather than re-deriving them; its own
// job is strictly the reverse-move enumeration and the discovered-check
// geometry that makes it hard.
package retro

import "github.com/retrochess/retroboard/internal/attacks"

// Color is one of the two sides.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless chess piece type. The numeric values match
// internal/attacks.Kind so conversion between the two is a plain cast.
type PieceKind uint8

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

func (k PieceKind) attacksKind() attacks.Kind { return attacks.Kind(k) }

// letters used by FEN and the Pocket textual encoding, white uppercase.
var kindLetter = map[PieceKind]byte{
	Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
}

func (k PieceKind) byte(c Color) byte {
	ch := kindLetter[k]
	if c == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// Piece packs a PieceKind and a Color into a single byte: bits 0-2 hold the
// kind, bit 3 holds the color. This mirrors the compact combined-piece
// encoding used by bitboard engines so Board can keep a flat 64-entry
// piece-on-square array cheaply.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// MakePiece combines a color and kind into a Piece value.
func MakePiece(c Color, k PieceKind) Piece {
	p := Piece(k)
	if c == Black {
		p |= 8
	}
	return p
}

// Kind returns the colorless piece type.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// Color returns the owning side. Meaningless if p == NoPiece.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Square is a board square, 0 (a1) .. 63 (h8) in little-endian rank-file
// order.
type Square int

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = -1

// File returns the 0-based file (a=0..h=7).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0-based rank (1st rank=0..8th rank=7).
func (s Square) Rank() int { return int(s) / 8 }

// MakeSquare builds a square from 0-based file and rank.
func MakeSquare(file, rank int) Square { return Square(rank*8 + file) }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

func bit(s Square) uint64 { return uint64(1) << uint(s) }
