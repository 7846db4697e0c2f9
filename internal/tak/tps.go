package tak

import (
	"fmt"
	"strconv"
	"strings"
)

// TPS renders the position in Tak Positional System notation: board
// rows from top (y = size-1) to bottom separated by "/", each row a
// comma-separated list of cells (a single empty square written as "x",
// a run of N >= 2 empty squares as "xN", an occupied square written bottom-to-top as a string of player
// digits followed by an optional S or C top marker), then the side to
// move (1 or 2) and the move number.
func (p *Position) TPS() string {
	rows := make([]string, p.size)
	for y := p.size - 1; y >= 0; y-- {
		var cells []string
		emptyRun := 0
		flushEmpty := func() {
			if emptyRun > 0 {
				if emptyRun == 1 {
					cells = append(cells, "x")
				} else {
					cells = append(cells, "x"+strconv.Itoa(emptyRun))
				}
				emptyRun = 0
			}
		}
		for x := 0; x < p.size; x++ {
			idx := p.idx(Loc{X: x, Y: y})
			if p.owners[idx].IsEmpty() {
				emptyRun++
				continue
			}
			flushEmpty()
			cells = append(cells, p.renderStack(idx))
		}
		flushEmpty()
		rows[p.size-1-y] = strings.Join(cells, ",")
	}

	side := 1
	if p.sideToMove == Black {
		side = 2
	}
	return fmt.Sprintf("%s %d %d", strings.Join(rows, "/"), side, p.round)
}

func (p *Position) renderStack(idx int) string {
	s := p.owners[idx]
	var sb strings.Builder
	for i := 0; i < s.Len(); i++ {
		if s.Get(i) == White {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('2')
		}
	}
	switch p.topKind(idx) {
	case Wall:
		sb.WriteByte('S')
	case Cap:
		sb.WriteByte('C')
	}
	return sb.String()
}
