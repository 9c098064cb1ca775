package retro

// squareMap is the 64-entry permutation a geometric transform applies to
// every occupied square. Building one array and replaying it for pieces
// and the ep square keeps the seven transforms mechanical and symmetric,
// mirroring how the donor's Board.place/remove pair lets callers rebuild
// a position square-by-square without touching bitboard internals.
type squareMap [64]Square

func newTransformedBoard(b *Board, m squareMap) *Board {
	nb := &Board{
		sideToUnmove: b.sideToUnmove,
		pockets:      b.pockets,
		epSquare:     NoSquare,
		halfmove:     b.halfmove,
		fullmove:     b.fullmove,
	}
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieceAt[sq]
		if p == NoPiece {
			continue
		}
		nb.place(m[sq], p)
	}
	if b.epSquare != NoSquare {
		nb.epSquare = m[b.epSquare]
	}
	return nb
}

func flipHorizontalMap() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(7-sq.File(), sq.Rank())
	}
	return m
}

func flipVerticalMap() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(sq.File(), 7-sq.Rank())
	}
	return m
}

func flipDiagonalMap() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(sq.Rank(), sq.File())
	}
	return m
}

func flipAntiDiagonalMap() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(7-sq.Rank(), 7-sq.File())
	}
	return m
}

func rotate90Map() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(sq.Rank(), 7-sq.File())
	}
	return m
}

func rotate180Map() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(7-sq.File(), 7-sq.Rank())
	}
	return m
}

func rotate270Map() squareMap {
	var m squareMap
	for sq := Square(0); sq < 64; sq++ {
		m[sq] = MakeSquare(7-sq.Rank(), sq.File())
	}
	return m
}

// FlipHorizontal mirrors the board across the vertical axis (a-file <->
// h-file), keeping ranks fixed. Pockets carry over unchanged; uncastling
// rights do not, since the transform need not preserve their geometry.
func (b *Board) FlipHorizontal() *Board { return newTransformedBoard(b, flipHorizontalMap()) }

// FlipVertical mirrors the board across the horizontal axis (1st rank <->
// 8th rank), keeping files fixed.
func (b *Board) FlipVertical() *Board { return newTransformedBoard(b, flipVerticalMap()) }

// FlipDiagonal mirrors the board across the a1-h8 diagonal.
func (b *Board) FlipDiagonal() *Board { return newTransformedBoard(b, flipDiagonalMap()) }

// FlipAntiDiagonal mirrors the board across the a8-h1 diagonal.
func (b *Board) FlipAntiDiagonal() *Board { return newTransformedBoard(b, flipAntiDiagonalMap()) }

// Rotate90 rotates the board 90 degrees clockwise.
func (b *Board) Rotate90() *Board { return newTransformedBoard(b, rotate90Map()) }

// Rotate180 rotates the board 180 degrees.
func (b *Board) Rotate180() *Board { return newTransformedBoard(b, rotate180Map()) }

// Rotate270 rotates the board 270 degrees clockwise (90 counterclockwise).
func (b *Board) Rotate270() *Board { return newTransformedBoard(b, rotate270Map()) }
