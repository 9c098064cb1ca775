package retro

import (
	"math/bits"
	"strconv"
	"strings"
)

// charToPiece converts a FEN character to a Piece, or NoPiece if
// unrecognized.
func charToPiece(ch byte) Piece {
	lower := ch
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		lower = ch - ('a' - 'A')
	}
	switch lower {
	case 'P':
		return MakePiece(c, Pawn)
	case 'N':
		return MakePiece(c, Knight)
	case 'B':
		return MakePiece(c, Bishop)
	case 'R':
		return MakePiece(c, Rook)
	case 'Q':
		return MakePiece(c, Queen)
	case 'K':
		return MakePiece(c, King)
	default:
		return NoPiece
	}
}

func pieceToChar(p Piece) byte {
	return p.Kind().byte(p.Color())
}

// NewBoard constructs a Board from an extended FEN: a standard 6-field FEN
// optionally followed by two whitespace-separated pocket tokens (white,
// then black). If the pocket tokens are absent, both pockets start empty.
//
// The "side to move" field of the FEN names the side that is about to play
// *forward*, so the side that just moved (the one we are about to un-move)
// is the *other* color. NewBoard sets sideToUnmove to the opposite of the
// FEN's side-to-move field.
func NewBoard(extendedFen string) (*Board, error) {
	fields := strings.Fields(extendedFen)
	if len(fields) < 4 {
		return nil, &ParseFenError{Fen: extendedFen, Reason: "not enough fields"}
	}

	b := &Board{epSquare: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &ParseFenError{Fen: extendedFen, Reason: "incorrect number of ranks"}
	}
	for i, rankStr := range ranks {
		rankIndex := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := charToPiece(ch)
			if p == NoPiece {
				return nil, &ParseFenError{Fen: extendedFen, Reason: "unrecognized piece character"}
			}
			if file >= 8 {
				return nil, &ParseFenError{Fen: extendedFen, Reason: "too many squares in rank"}
			}
			sq := MakeSquare(file, rankIndex)
			b.place(sq, p)
			file++
		}
		if file != 8 {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "rank does not have 8 columns"}
		}
	}

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return nil, &ParseFenError{Fen: extendedFen, Reason: "side to move must be 'w' or 'b'"}
	}
	b.sideToUnmove = sideToMove.Other()

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.uncastle |= uncastleWhiteK
			case 'Q':
				b.uncastle |= uncastleWhiteQ
			case 'k':
				b.uncastle |= uncastleBlackK
			case 'q':
				b.uncastle |= uncastleBlackQ
			default:
				return nil, &ParseFenError{Fen: extendedFen, Reason: "invalid castling rights character"}
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "invalid en passant square"}
		}
		fileCh, rankCh := fields[3][0], fields[3][1]
		if fileCh < 'a' || fileCh > 'h' || rankCh < '1' || rankCh > '8' {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "en passant square out of range"}
		}
		b.epSquare = MakeSquare(int(fileCh-'a'), int(rankCh-'1'))
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "halfmove clock is not a number", Err: err}
		}
		b.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "fullmove number is not a number", Err: err}
		}
		b.fullmove = n
	}

	if len(fields) > 6 {
		p, err := ParsePocket(fields[6], White)
		if err != nil {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "invalid white pocket", Err: err}
		}
		b.pockets[White] = p
	}
	if len(fields) > 7 {
		p, err := ParsePocket(fields[7], Black)
		if err != nil {
			return nil, &ParseFenError{Fen: extendedFen, Reason: "invalid black pocket", Err: err}
		}
		b.pockets[Black] = p
	}

	if err := b.validateSetup(); err != nil {
		return nil, err
	}
	return b, nil
}

// validateSetup enforces the construction-time invariants from §3/§6:
// exactly one king per side, no pawn on rank 1 or 8, and the side to
// un-move must not have left its own king in check -- a side can never
// legally complete a forward move that leaves its own king attacked. The
// side about to move forward (them) being in check is normal and is
// handled by the legality filter, not rejected here.
func (b *Board) validateSetup() error {
	if bits.OnesCount64(b.kings[White]) != 1 {
		return &IllegalSetupError{Reason: "white must have exactly one king"}
	}
	if bits.OnesCount64(b.kings[Black]) != 1 {
		return &IllegalSetupError{Reason: "black must have exactly one king"}
	}
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieceAt[sq]
		if p != NoPiece && p.Kind() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return &IllegalSetupError{Reason: "pawn on back rank"}
		}
	}
	us := b.sideToUnmove
	if b.IsAttacked(b.KingSquare(us), us.Other()) {
		return &IllegalSetupError{Reason: "side to un-move is in check"}
	}
	return nil
}

// FEN renders the standard 6-field FEN for the current position. The
// side-to-move field is the opposite of SideToUnmove(), i.e. the side that
// would play forward from here.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieceAt[MakeSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceToChar(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.sideToUnmove.Other() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if b.uncastle == 0 {
		sb.WriteByte('-')
	} else {
		if b.uncastle&uncastleWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.uncastle&uncastleWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.uncastle&uncastleBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.uncastle&uncastleBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}

// String renders the debug output from §6: the current FEN followed by both
// pockets.
func (b *Board) String() string {
	return b.FEN() + " " + b.pockets[White].String(White) + " " + b.pockets[Black].String(Black)
}
