package tak

import "fmt"

// Loc is a board coordinate. X is the file (column), Y is the rank (row);
// both are zero-based and less than the board size.
type Loc struct {
	X, Y int
}

// String returns the PTN square name, e.g. "a1", "e5".
func (l Loc) String() string {
	return fmt.Sprintf("%c%d", 'a'+l.X, l.Y+1)
}

// ParseLoc parses a PTN square name such as "a1" or "H8" (file a-h,
// rank 1-8, case-insensitive on the file letter).
func ParseLoc(s string) (Loc, error) {
	if len(s) != 2 {
		return Loc{}, fmt.Errorf("tak: invalid square %q", s)
	}
	f := s[0]
	switch {
	case f >= 'a' && f <= 'h':
		f -= 'a'
	case f >= 'A' && f <= 'H':
		f -= 'A'
	default:
		return Loc{}, fmt.Errorf("tak: invalid file %q", s[0:1])
	}
	r := s[1]
	if r < '1' || r > '8' {
		return Loc{}, fmt.Errorf("tak: invalid rank %q", s[1:2])
	}
	return Loc{X: int(f), Y: int(r - '1')}, nil
}

// offset returns l shifted by dist steps in direction d.
func (l Loc) offset(d Dir, dist int) Loc {
	return Loc{X: l.X + d.DX()*dist, Y: l.Y + d.DY()*dist}
}
