package tak

import "fmt"

// MaxRange is the largest possible slide distance (one square per board
// size up to the largest supported board).
const MaxRange = 8

// Op distinguishes the two kinds of Move.
type Op uint8

const (
	// OpPlace places a new piece from reserves onto an empty square.
	OpPlace Op = iota
	// OpSlide picks up a stack and slides it one or more squares,
	// dropping pieces along the way.
	OpSlide
)

// Move is a tagged union: either a placement or a stack slide. Drops is
// only meaningful up to index Range-1; Smashed is a mutable field set by
// Position.Execute and consulted by Position.Undo.
type Move struct {
	Op      Op
	Loc     Loc
	Piece   Kind       // Op == OpPlace
	Dir     Dir        // Op == OpSlide
	Range   uint8      // Op == OpSlide: number of squares stepped over, 1..=size
	Drops   [MaxRange]uint8
	Smashed bool
}

// NewPlace returns a placement move.
func NewPlace(loc Loc, piece Kind) Move {
	return Move{Op: OpPlace, Loc: loc, Piece: piece}
}

// NewSlide returns a slide move. drops must have length == rng and sum
// to the number of pieces carried.
func NewSlide(loc Loc, dir Dir, rng uint8, drops []uint8) Move {
	m := Move{Op: OpSlide, Loc: loc, Dir: dir, Range: rng}
	copy(m.Drops[:], drops)
	return m
}

// Carry returns the total number of pieces carried by a slide move.
func (m Move) Carry() int {
	n := 0
	for i := uint8(0); i < m.Range; i++ {
		n += int(m.Drops[i])
	}
	return n
}

// String renders the move in PTN-style move text, e.g. "a1", "Sb3",
// "3a1>12", "a5+".
func (m Move) String() string {
	switch m.Op {
	case OpPlace:
		if m.Piece == Flat {
			return m.Loc.String()
		}
		return fmt.Sprintf("%c%s", m.Piece.Letter(), m.Loc)
	case OpSlide:
		carry := m.Carry()
		s := ""
		if carry != 1 {
			s += fmt.Sprintf("%d", carry)
		}
		s += m.Loc.String() + m.Dir.String()
		if m.Range > 1 {
			for i := uint8(0); i < m.Range; i++ {
				s += fmt.Sprintf("%d", m.Drops[i])
			}
		}
		return s
	default:
		return "?"
	}
}
