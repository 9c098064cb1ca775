package retro

import "fmt"

// UnMoveTag discriminates the five shapes an unmove can take (§3).
type UnMoveTag uint8

const (
	// Normal is a plain reverse slide/step: to becomes empty, from
	// receives the piece.
	Normal UnMoveTag = iota
	// Uncapture places a piece of Kind on `to`, drawn from the
	// uncovering side's opponent pocket.
	Uncapture
	// Unpromotion replaces the (non-pawn) piece on `to` with a pawn on
	// `from`, with no captured piece.
	Unpromotion
	// UnpromotionUncapture is Unpromotion plus a captured Kind placed on
	// `to`, drawn from the opponent pocket.
	UnpromotionUncapture
	// EnPassant is the reverse of the pawn double-push that produced the
	// board's current ep square: the pawn moves from `to` (its
	// double-push destination rank) back to `from` (its start rank).
	// It carries no captured piece; the tag exists so the generator and
	// legality filter can single it out as the only admissible unmove
	// whenever an ep square is present.
	EnPassant
)

func (t UnMoveTag) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Uncapture:
		return "Uncapture"
	case Unpromotion:
		return "Unpromotion"
	case UnpromotionUncapture:
		return "UnpromotionUncapture"
	case EnPassant:
		return "EnPassant"
	default:
		return "UnMoveTag(?)"
	}
}

// UnMove is a single reverse chess move: a piece moves from its current
// square `To` back to its predecessor square `From`, with Tag/Captured
// describing any un-capture or un-promotion bookkeeping. Equality is
// structural on all fields.
type UnMove struct {
	From     Square
	To       Square
	Piece    Piece     // the piece as it stands on `to` before the unmove
	Tag      UnMoveTag
	Captured PieceKind // valid for Uncapture/UnpromotionUncapture only
}

// String renders the stringly debug representation from §4.2: a prefix "U"
// or "E" for un-capture-bearing / en-passant unmoves, the piece moved, the
// destination square, the origin square, and a suffix for
// un-promotion/un-capture kind.
func (u UnMove) String() string {
	var prefix string
	switch u.Tag {
	case Uncapture, UnpromotionUncapture:
		prefix = "U"
	case EnPassant:
		prefix = "E"
	}

	movedKind := u.Piece.Kind()
	if u.Tag == Unpromotion || u.Tag == UnpromotionUncapture {
		movedKind = Pawn
	}
	body := fmt.Sprintf("%s%c%s%s", prefix, movedKind.byte(u.Piece.Color()), u.To, u.From)

	switch u.Tag {
	case Uncapture, UnpromotionUncapture:
		body += string(u.Captured.byte(u.Piece.Color().Other()))
	case Unpromotion:
		body += "=" + string(u.Piece.Kind().byte(u.Piece.Color()))
	}
	if u.Tag == UnpromotionUncapture {
		body += "=" + string(u.Piece.Kind().byte(u.Piece.Color()))
	}
	return body
}

// IsUncapture reports whether u reinstates a captured piece on `to`.
func (u UnMove) IsUncapture() bool {
	return u.Tag == Uncapture || u.Tag == UnpromotionUncapture
}

// IsUnpromotion reports whether u un-does a pawn promotion.
func (u UnMove) IsUnpromotion() bool {
	return u.Tag == Unpromotion || u.Tag == UnpromotionUncapture
}
