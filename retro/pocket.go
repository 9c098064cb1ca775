package retro

import (
	"fmt"
	"strconv"
	"strings"
)

// pocketKinds is the iteration order used both by Pocket.String and
// Pocket.Each: queens, rooks, bishops, knights, pawns. The order is
// deterministic (it shows up in unmove enumeration order) but the spec
// does not require any particular order, only a stable one.
var pocketKinds = [5]PieceKind{Queen, Rook, Bishop, Knight, Pawn}

// maxPocketCount bounds a single pocket slot; overflow is a parse error,
// matching the "count overflow" error case from the spec.
const maxPocketCount = 16

// Pocket is a per-color multiset of piece kinds available to be placed back
// on the board as un-captured pieces. Kings are never pocketed.
type Pocket struct {
	counts [5]uint8 // indexed by pocketIndex(kind)
}

func pocketIndex(k PieceKind) int {
	switch k {
	case Pawn:
		return 0
	case Knight:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Queen:
		return 4
	default:
		panic(fmt.Sprintf("retro: %v cannot be pocketed", k))
	}
}

// Count returns the number of pieces of kind k currently in the pocket.
func (p Pocket) Count(k PieceKind) int { return int(p.counts[pocketIndex(k)]) }

// incr adds one piece of kind k to the pocket.
func (p *Pocket) incr(k PieceKind) { p.counts[pocketIndex(k)]++ }

// decr removes one piece of kind k from the pocket. Underflow is a
// programming error: a correct legality filter never calls decr on an
// empty slot.
func (p *Pocket) decr(k PieceKind) {
	i := pocketIndex(k)
	if p.counts[i] == 0 {
		panic(fmt.Sprintf("retro: pocket underflow for %v", k))
	}
	p.counts[i]--
}

// Each calls fn once per unit of count present in the pocket, in the
// deterministic (queen, rook, bishop, knight, pawn) order.
func (p Pocket) Each(fn func(PieceKind)) {
	for _, k := range pocketKinds {
		for n := p.Count(k); n > 0; n-- {
			fn(k)
		}
	}
}

// String encodes the pocket as a run of "<count><letter>" pairs in
// (queen, rook, bishop, knight, pawn) order, with color given by c. A zero
// count is omitted entirely (no "0" prefix, no letter). A count of 1 omits
// the leading digit. For example, with c == White, {Pawn: 2, Knight: 1}
// encodes as "N2P".
func (p Pocket) String(c Color) string {
	var sb strings.Builder
	for _, k := range pocketKinds {
		n := p.Count(k)
		if n == 0 {
			continue
		}
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(k.byte(c))
	}
	return sb.String()
}

// ParsePocket decodes a pocket token of the form produced by Pocket.String
// (letters PNBRQ, white upper/black lower, optionally run-length prefixed by
// a decimal count, e.g. "2PNB" means {P:2, N:1, B:1}). Plain repeated
// letters such as "PP" are also accepted. The token's case must be
// consistent with c; ParsePocket does not infer color from letter case, it
// validates against the expected one.
func ParsePocket(token string, c Color) (Pocket, error) {
	var p Pocket
	i := 0
	for i < len(token) {
		start := i
		for i < len(token) && token[i] >= '0' && token[i] <= '9' {
			i++
		}
		count := 1
		if i > start {
			n, err := parseDecimal(token[start:i])
			if err != nil {
				return Pocket{}, &ParsePocketError{Token: token, Reason: err.Error()}
			}
			count = n
		}
		if i >= len(token) {
			return Pocket{}, &ParsePocketError{Token: token, Reason: "count without following letter"}
		}
		k, kc, err := kindFromByte(token[i])
		if err != nil {
			return Pocket{}, &ParsePocketError{Token: token, Reason: err.Error()}
		}
		if kc != c {
			return Pocket{}, &ParsePocketError{Token: token, Reason: fmt.Sprintf("letter %q does not match expected color %v", token[i], c)}
		}
		i++
		if count <= 0 || p.Count(k)+count > maxPocketCount {
			return Pocket{}, &ParsePocketError{Token: token, Reason: "count overflow"}
		}
		for ; count > 0; count-- {
			p.incr(k)
		}
	}
	return p, nil
}

func parseDecimal(s string) (int, error) {
	n := 0
	for _, ch := range s {
		n = n*10 + int(ch-'0')
		if n > maxPocketCount {
			return 0, fmt.Errorf("count overflow")
		}
	}
	return n, nil
}

func kindFromByte(ch byte) (PieceKind, Color, error) {
	c := White
	lower := ch
	if ch >= 'a' && ch <= 'z' {
		c = Black
		lower = ch - ('a' - 'A')
	}
	switch lower {
	case 'P':
		return Pawn, c, nil
	case 'N':
		return Knight, c, nil
	case 'B':
		return Bishop, c, nil
	case 'R':
		return Rook, c, nil
	case 'Q':
		return Queen, c, nil
	default:
		return NoKind, c, fmt.Errorf("unrecognized pocket letter %q", ch)
	}
}
