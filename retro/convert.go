package retro

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// ToPosition converts b into a forward-chess dragontoothmg.Board
// representing the same piece placement, side to move and ep square. The
// conversion is lossy: pockets and uncastling-rights bookkeeping have no
// forward-chess analogue and are dropped, matching §6's "conversion to/from
// a forward-chess position type (lossy on pockets and uncastling rights)".
// The castling field is forced to "-" before handing the FEN to
// dragontoothmg so uncastling rights never leak through as if they were
// real forward-chess castling rights. Going through FEN text keeps this
// conversion grounded on the same parser both sides already trust, rather
// than poking at dragontoothmg's unexported board fields directly.
func (b *Board) ToPosition() dragontoothmg.Board {
	fields := strings.Fields(b.FEN())
	fields[2] = "-"
	return dragontoothmg.ParseFen(strings.Join(fields, " "))
}

// FromPosition builds a Board from a forward-chess dragontoothmg.Board.
// Pockets start empty and uncastling rights start all-granted, since
// neither is recoverable from forward-chess state -- pos.ToFen()'s own
// castling field describes real forward-chess rights, not the retrograde
// bookkeeping this package tracks, so it's overwritten rather than kept.
// sideToUnmove is the side that is *not* about to move in pos, i.e. the
// side whose last move produced pos.
func FromPosition(pos dragontoothmg.Board) (*Board, error) {
	b, err := NewBoard(pos.ToFen())
	if err != nil {
		return nil, err
	}
	b.uncastle = uncastleWhiteK | uncastleWhiteQ | uncastleBlackK | uncastleBlackQ
	return b, nil
}
