package retro

import "testing"

func TestFlipHorizontalInvolution(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.String()
	got := b.FlipHorizontal().FlipHorizontal().String()
	if got != want {
		t.Fatalf("FlipHorizontal twice = %q, want %q", got, want)
	}
}

func TestFlipVerticalInvolution(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.String()
	got := b.FlipVertical().FlipVertical().String()
	if got != want {
		t.Fatalf("FlipVertical twice = %q, want %q", got, want)
	}
}

func TestFlipDiagonalInvolution(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.String()
	got := b.FlipDiagonal().FlipDiagonal().String()
	if got != want {
		t.Fatalf("FlipDiagonal twice = %q, want %q", got, want)
	}
}

func TestFlipAntiDiagonalInvolution(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.String()
	got := b.FlipAntiDiagonal().FlipAntiDiagonal().String()
	if got != want {
		t.Fatalf("FlipAntiDiagonal twice = %q, want %q", got, want)
	}
}

func TestRotate180IsTwoRotate90s(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.Rotate180().String()
	got := b.Rotate90().Rotate90().String()
	if got != want {
		t.Fatalf("Rotate90 twice = %q, want Rotate180 = %q", got, want)
	}
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.String()
	got := b.Rotate90().Rotate90().Rotate90().Rotate90().String()
	if got != want {
		t.Fatalf("Rotate90 four times = %q, want %q", got, want)
	}
}

func TestRotate270IsInverseOfRotate90(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	want := b.String()
	got := b.Rotate90().Rotate270().String()
	if got != want {
		t.Fatalf("Rotate90 then Rotate270 = %q, want %q", got, want)
	}
}

func TestTransformPreservesPockets(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/8/8/4K2k w - - 0 1 2PN q")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for _, transformed := range []*Board{
		b.FlipHorizontal(), b.FlipVertical(), b.FlipDiagonal(), b.FlipAntiDiagonal(),
		b.Rotate90(), b.Rotate180(), b.Rotate270(),
	} {
		if transformed.Pocket(White).Count(Pawn) != 2 || transformed.Pocket(White).Count(Knight) != 1 {
			t.Errorf("transform dropped or altered the white pocket: %+v", transformed.Pocket(White))
		}
		if transformed.Pocket(Black).Count(Queen) != 1 {
			t.Errorf("transform dropped or altered the black pocket: %+v", transformed.Pocket(Black))
		}
	}
}

func TestFlipHorizontalRemapsEnPassantSquare(t *testing.T) {
	b, err := NewBoard("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	flipped := b.FlipHorizontal()
	if flipped.epSquare != MakeSquare(3, 2) { // e3 (file 4) mirrors to d3 (file 3)
		t.Fatalf("flipped ep square = %v, want d3", flipped.epSquare)
	}
}
