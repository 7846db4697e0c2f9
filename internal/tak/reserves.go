package tak

// Reserves is a player's remaining pool of unplaced flats and capstones.
type Reserves struct {
	Flats int
	Caps  int
}

// startingReserves gives the (flats, caps) starting counts by board size.
var startingReserves = map[int]Reserves{
	3: {Flats: 10, Caps: 0},
	4: {Flats: 15, Caps: 0},
	5: {Flats: 21, Caps: 1},
	6: {Flats: 30, Caps: 1},
	7: {Flats: 40, Caps: 2},
	8: {Flats: 50, Caps: 2},
}

// newReserves returns the starting reserves for a board of the given size.
// Callers must have already validated size via ValidSize.
func newReserves(size int) Reserves {
	return startingReserves[size]
}

// Empty reports whether both flats and capstones are exhausted.
func (r Reserves) Empty() bool {
	return r.Flats == 0 && r.Caps == 0
}

// Count returns the number of pieces of the given kind remaining. Walls
// are drawn from the same pool as flats.
func (r Reserves) Count(k Kind) int {
	if k == Cap {
		return r.Caps
	}
	return r.Flats
}

// remove takes one piece of the given kind from the reserves.
func (r *Reserves) remove(k Kind) {
	if k == Cap {
		r.Caps--
	} else {
		r.Flats--
	}
}

// add returns one piece of the given kind to the reserves.
func (r *Reserves) add(k Kind) {
	if k == Cap {
		r.Caps++
	} else {
		r.Flats++
	}
}
