// Package playtak parses the playtak.com server's move and result
// notation: "P a1", "P a1 W", "M a1 a3 1 2", and the same seven result
// tokens used by PTN. It is a thin text layer over internal/tak.
package playtak

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/taktical/internal/ptn"
	"github.com/hailam/taktical/internal/tak"
)

// ParseMove parses one playtak move token: "P <square> [W|C]" for a
// placement (a bare "P a1" places a flat), or "M <start> <end> <drops...>"
// for a slide, with exactly one drop count per square traveled; a slide
// with missing drop counts is rejected.
func ParseMove(input string) (tak.Move, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return tak.Move{}, fmt.Errorf("playtak: empty move")
	}

	switch strings.ToUpper(fields[0]) {
	case "P":
		return parsePlace(fields[1:])
	case "M":
		return parseSlide(fields[1:])
	default:
		return tak.Move{}, fmt.Errorf("playtak: unrecognized move token %q", fields[0])
	}
}

func parsePlace(fields []string) (tak.Move, error) {
	if len(fields) < 1 {
		return tak.Move{}, fmt.Errorf("playtak: place move missing square")
	}
	loc, err := tak.ParseLoc(fields[0])
	if err != nil {
		return tak.Move{}, err
	}
	piece := tak.Flat
	if len(fields) >= 2 {
		switch strings.ToUpper(fields[1]) {
		case "W":
			piece = tak.Wall
		case "C":
			piece = tak.Cap
		default:
			return tak.Move{}, fmt.Errorf("playtak: invalid piece type %q", fields[1])
		}
	}
	return tak.NewPlace(loc, piece), nil
}

func parseSlide(fields []string) (tak.Move, error) {
	if len(fields) < 2 {
		return tak.Move{}, fmt.Errorf("playtak: move missing start/end squares")
	}
	start, err := tak.ParseLoc(fields[0])
	if err != nil {
		return tak.Move{}, err
	}
	end, err := tak.ParseLoc(fields[1])
	if err != nil {
		return tak.Move{}, err
	}

	dx, dy := end.X-start.X, end.Y-start.Y
	var dir tak.Dir
	var rng int
	switch {
	case dy > 0 && dx == 0:
		dir, rng = tak.Up, dy
	case dy < 0 && dx == 0:
		dir, rng = tak.Down, -dy
	case dx > 0 && dy == 0:
		dir, rng = tak.Right, dx
	case dx < 0 && dy == 0:
		dir, rng = tak.Left, -dx
	default:
		return tak.Move{}, fmt.Errorf("playtak: %s to %s is not a straight line", start, end)
	}

	// The playtak wire format always spells out one drop count per
	// square traveled; there is no implicit/omitted form to fall back to.
	dropFields := fields[2:]
	if len(dropFields) != rng {
		return tak.Move{}, fmt.Errorf("playtak: expected %d drop counts, got %d", rng, len(dropFields))
	}
	drops := make([]uint8, rng)
	for i, f := range dropFields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > tak.MaxRange {
			return tak.Move{}, fmt.Errorf("playtak: invalid drop count %q", f)
		}
		drops[i] = uint8(n)
	}
	return tak.NewSlide(start, dir, uint8(rng), drops), nil
}

// Render renders m in playtak server notation.
func Render(m tak.Move) string {
	switch m.Op {
	case tak.OpPlace:
		switch m.Piece {
		case tak.Wall:
			return "P " + m.Loc.String() + " W"
		case tak.Cap:
			return "P " + m.Loc.String() + " C"
		default:
			return "P " + m.Loc.String()
		}
	case tak.OpSlide:
		end := m.Loc.X + m.Dir.DX()*int(m.Range)
		endY := m.Loc.Y + m.Dir.DY()*int(m.Range)
		var sb strings.Builder
		fmt.Fprintf(&sb, "M %s %s", m.Loc, tak.Loc{X: end, Y: endY})
		for i := uint8(0); i < m.Range; i++ {
			fmt.Fprintf(&sb, " %d", m.Drops[i])
		}
		return sb.String()
	default:
		return ""
	}
}

// ParseResult parses a playtak result token, identical to PTN's.
func ParseResult(s string) (ptn.Result, error) {
	return ptn.ParseResult(s)
}

// ParseMoves parses a comma-separated recorded move list, as stored in
// the playtak game database's notation column.
func ParseMoves(input string) ([]tak.Move, error) {
	var moves []tak.Move
	for _, tok := range strings.Split(input, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("playtak: %w (move list: %q)", err, input)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
