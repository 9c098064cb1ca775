package retro

// Push applies u, mutating b into its predecessor position, and flips the
// retro-turn. u must be one of b.PseudoUnmoves() (or, stronger, one of
// b.LegalUnmoves()); Push does not re-validate it. Grounded on the
// teacher's MakeMove dispatch-on-move-kind pattern, adapted so the
// "unmake" direction is the primary one instead of an auxiliary undo path.
func (b *Board) Push(u UnMove) {
	us := b.sideToUnmove
	them := us.Other()

	b.epHistory = append(b.epHistory, b.epSquare)
	b.epSquare = NoSquare

	switch u.Tag {
	case Normal:
		mover := b.remove(u.To)
		b.place(u.From, mover)

	case Uncapture:
		mover := b.remove(u.To)
		b.pockets[them].decr(u.Captured)
		b.place(u.To, MakePiece(them, u.Captured))
		b.place(u.From, mover)

	case Unpromotion:
		b.remove(u.To)
		b.place(u.From, MakePiece(us, Pawn))

	case UnpromotionUncapture:
		b.remove(u.To)
		b.pockets[them].decr(u.Captured)
		b.place(u.To, MakePiece(them, u.Captured))
		b.place(u.From, MakePiece(us, Pawn))

	case EnPassant:
		mover := b.remove(u.To)
		b.place(u.From, mover)
	}

	if u.Piece.Kind() == Pawn && u.Tag != Unpromotion && u.Tag != UnpromotionUncapture {
		if diff := int(u.To) - int(u.From); diff == 16 || diff == -16 {
			b.epSquare = Square((int(u.To) + int(u.From)) / 2)
		}
	}

	b.sideToUnmove = them
}

// Pop inverts Push(u) exactly, restoring b to the position it was in
// before the matching Push call. The caller is responsible for supplying
// the same u and calling Pop/Push in LIFO order; Board keeps only the
// small amount of bookkeeping (the prior ep square) needed to make that
// inversion exact, so no external history stack is required.
func (b *Board) Pop(u UnMove) {
	them := b.sideToUnmove
	us := them.Other()
	b.sideToUnmove = us

	switch u.Tag {
	case Normal:
		mover := b.remove(u.From)
		b.place(u.To, mover)

	case Uncapture:
		mover := b.remove(u.From)
		b.remove(u.To)
		b.pockets[them].incr(u.Captured)
		b.place(u.To, mover)

	case Unpromotion:
		b.remove(u.From)
		b.place(u.To, MakePiece(us, u.Piece.Kind()))

	case UnpromotionUncapture:
		b.remove(u.From)
		b.remove(u.To)
		b.pockets[them].incr(u.Captured)
		b.place(u.To, MakePiece(us, u.Piece.Kind()))

	case EnPassant:
		mover := b.remove(u.From)
		b.place(u.To, mover)
	}

	n := len(b.epHistory) - 1
	b.epSquare = b.epHistory[n]
	b.epHistory = b.epHistory[:n]
}
