package retro

import "testing"

func TestUnMoveString(t *testing.T) {
	tests := []struct {
		name string
		u    UnMove
		want string
	}{
		{
			name: "normal knight",
			u:    UnMove{From: MakeSquare(2, 1), To: MakeSquare(4, 0), Piece: MakePiece(White, Knight), Tag: Normal},
			want: "Ne1c2",
		},
		{
			name: "uncapture",
			u:    UnMove{From: MakeSquare(0, 1), To: MakeSquare(0, 0), Piece: MakePiece(White, Rook), Tag: Uncapture, Captured: Pawn},
			want: "URa1a2p",
		},
		{
			name: "en passant",
			u:    UnMove{From: MakeSquare(4, 1), To: MakeSquare(4, 3), Piece: MakePiece(White, Pawn), Tag: EnPassant},
			want: "EPe4e2",
		},
		{
			name: "unpromotion",
			u:    UnMove{From: MakeSquare(0, 6), To: MakeSquare(0, 7), Piece: MakePiece(White, Queen), Tag: Unpromotion},
			want: "Pa8a7=Q",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.u.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnMoveEquality(t *testing.T) {
	a := UnMove{From: 4, To: 12, Piece: MakePiece(White, Pawn), Tag: Normal}
	b := UnMove{From: 4, To: 12, Piece: MakePiece(White, Pawn), Tag: Normal}
	c := UnMove{From: 4, To: 13, Piece: MakePiece(White, Pawn), Tag: Normal}
	if a != b {
		t.Fatalf("expected structurally equal UnMoves to compare equal")
	}
	if a == c {
		t.Fatalf("expected differing To squares to compare unequal")
	}
}

func TestIsUncaptureIsUnpromotion(t *testing.T) {
	tests := []struct {
		tag           UnMoveTag
		wantUncapture bool
		wantUnpromote bool
	}{
		{Normal, false, false},
		{Uncapture, true, false},
		{Unpromotion, false, true},
		{UnpromotionUncapture, true, true},
		{EnPassant, false, false},
	}
	for _, tc := range tests {
		u := UnMove{Tag: tc.tag}
		if got := u.IsUncapture(); got != tc.wantUncapture {
			t.Errorf("%v.IsUncapture() = %v, want %v", tc.tag, got, tc.wantUncapture)
		}
		if got := u.IsUnpromotion(); got != tc.wantUnpromote {
			t.Errorf("%v.IsUnpromotion() = %v, want %v", tc.tag, got, tc.wantUnpromote)
		}
	}
}
