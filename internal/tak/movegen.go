package tak

// Generate calls f once for every legal move in the position, in a
// stable, deterministic order: squares in row-major order (y outer, x
// inner), placements before slides on a given square, and slides in
// Up/Down/Left/Right order. It performs no allocation beyond what f
// itself does.
func (p *Position) Generate(f func(Move)) {
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			loc := Loc{X: x, Y: y}
			idx := p.idx(loc)
			if p.owners[idx].IsEmpty() {
				p.generatePlacements(loc, f)
				continue
			}
			// Round 1 is placement-only: no slides are legal yet.
			if p.round > 1 && p.owners[idx].Top() == p.sideToMove {
				p.generateSlides(loc, f)
			}
		}
	}
}

func (p *Position) generatePlacements(loc Loc, f func(Move)) {
	if p.round == 1 {
		if p.reserves[p.sideToMove].Count(Flat) > 0 {
			f(NewPlace(loc, Flat))
		}
		return
	}
	for _, k := range [...]Kind{Flat, Wall, Cap} {
		if p.reserves[p.sideToMove].Count(k) > 0 {
			f(NewPlace(loc, k))
		}
	}
}

var allDirs = [4]Dir{Up, Down, Left, Right}

func (p *Position) generateSlides(loc Loc, f func(Move)) {
	startIdx := p.idx(loc)
	height := p.owners[startIdx].Len()
	mobile := height
	if mobile > p.size {
		mobile = p.size
	}
	isCap := p.topKind(startIdx) == Cap

	for _, dir := range allDirs {
		maxDist, smash := p.walkDir(loc, dir, isCap)
		if maxDist == 0 {
			continue
		}
		for dist := 1; dist <= maxDist; dist++ {
			thisSmash := smash && dist == maxDist
			for _, ds := range dropSetsFor(mobile, dist, thisSmash) {
				f(NewSlide(loc, dir, ds.Range, ds.Drops[:ds.Range]))
			}
		}
	}
}

// walkDir returns the farthest distance reachable in direction dir from
// loc, and whether the final reachable square is a wall the mover's
// capstone may smash. A capstone-bearing slide may reach one wall
// square as its last step; any other slide, or any cap blocking the
// path, stops one square short.
func (p *Position) walkDir(loc Loc, dir Dir, isCap bool) (maxDist int, smash bool) {
	for dist := 1; dist <= p.size; dist++ {
		next, ok := p.offsetLoc(loc, dir, dist)
		if !ok {
			break
		}
		idx := p.idx(next)
		if p.owners[idx].IsEmpty() {
			maxDist = dist
			continue
		}
		switch p.topKind(idx) {
		case Cap:
			return maxDist, false
		case Wall:
			if isCap {
				return dist, true
			}
			return maxDist, false
		default:
			maxDist = dist
		}
	}
	return maxDist, false
}
