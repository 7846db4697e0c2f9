package tak

import "fmt"

// MinSize and MaxSize bound the supported board sizes.
const (
	MinSize = 3
	MaxSize = 8
)

// ValidSize reports whether n is a supported board size.
func ValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize
}

// Position is the full mutable state of a Tak game: reserves, bitboards,
// per-square stacks, and a running hash. It owns everything it
// references and mutates in place; there is no snapshotting.
type Position struct {
	size       int
	round      int
	sideToMove Player
	reserves   [2]Reserves

	caps  Bitboard
	walls Bitboard
	white Bitboard
	black Bitboard

	owners []Stack

	leftMask, rightMask, topMask, bottomMask, fullMask Bitboard

	partialHash uint64
}

// New constructs an empty starting Position for a board of the given
// size. Size must be in [MinSize, MaxSize].
func New(size int) (*Position, error) {
	if !ValidSize(size) {
		return nil, &InvalidSizeError{Size: size}
	}

	var left Bitboard
	for y := 0; y < size; y++ {
		left = left.Set(size * y)
	}

	p := &Position{
		size:       size,
		round:      1,
		sideToMove: White,
		reserves:   [2]Reserves{newReserves(size), newReserves(size)},
		owners:     make([]Stack, size*size),
		leftMask:   left,
		rightMask:  left << uint(size-1),
		bottomMask: Bitboard(1<<uint(size)) - 1,
	}
	p.topMask = p.bottomMask << uint(size*(size-1))
	if size*size >= 64 {
		p.fullMask = ^Bitboard(0)
	} else {
		p.fullMask = Bitboard(1<<uint(size*size)) - 1
	}
	return p, nil
}

// Size returns the board size.
func (p *Position) Size() int { return p.size }

// Round returns the current 1-based round counter.
func (p *Position) Round() int { return p.round }

// SideToMove returns the player to move.
func (p *Position) SideToMove() Player { return p.sideToMove }

// Reserves returns a copy of the given player's remaining reserves.
func (p *Position) Reserves(pl Player) Reserves { return p.reserves[pl] }

// Stack returns the tower at loc, or an empty Stack if loc is out of
// bounds or unoccupied.
func (p *Position) Stack(loc Loc) Stack {
	if !p.inBounds(loc) {
		return Stack{}
	}
	return p.owners[p.idx(loc)]
}

// Clone returns a deep copy of the position, independent of the
// original: the two may be used concurrently by separate goroutines.
func (p *Position) Clone() *Position {
	c := *p
	c.owners = make([]Stack, len(p.owners))
	copy(c.owners, p.owners)
	return &c
}

func (p *Position) inBounds(l Loc) bool {
	return l.X >= 0 && l.X < p.size && l.Y >= 0 && l.Y < p.size
}

func (p *Position) idx(l Loc) int {
	return l.X + p.size*l.Y
}

// offsetLoc returns the square reached by stepping dist times from l in
// direction d, and whether that square (and therefore every square
// strictly between, since direction is axis-aligned) remains on the
// board. Per spec's resolution of the bounds-check ambiguity, a
// direction whose final square would fall off the board is rejected
// outright rather than silently clamped.
func (p *Position) offsetLoc(l Loc, d Dir, dist int) (Loc, bool) {
	o := l.offset(d, dist)
	return o, p.inBounds(o)
}

func (p *Position) topKind(idx int) Kind {
	if p.caps.IsSet(idx) {
		return Cap
	}
	if p.walls.IsSet(idx) {
		return Wall
	}
	return Flat
}

func (p *Position) setTopKind(idx int, k Kind) {
	switch k {
	case Cap:
		p.caps = p.caps.Set(idx)
		p.walls = p.walls.Clear(idx)
	case Wall:
		p.walls = p.walls.Set(idx)
		p.caps = p.caps.Clear(idx)
	default:
		p.caps = p.caps.Clear(idx)
		p.walls = p.walls.Clear(idx)
	}
}

// fixTop recomputes the top-kind and color bitboards for idx from its
// current stack contents. The top kind always collapses to Flat here:
// callers that need a Wall or Cap on top (placement, or the terminal
// square of a slide) set it explicitly afterwards, since only the
// stack's original top piece -- never a piece revealed by a slide -- can
// be a wall or capstone.
func (p *Position) fixTop(idx int) {
	p.setTopKind(idx, Flat)
	if p.owners[idx].IsEmpty() {
		p.white = p.white.Clear(idx)
		p.black = p.black.Clear(idx)
		return
	}
	switch p.owners[idx].Top() {
	case White:
		p.white = p.white.Set(idx)
		p.black = p.black.Clear(idx)
	case Black:
		p.white = p.white.Clear(idx)
		p.black = p.black.Set(idx)
	}
}

// transfer moves the top amount pieces from the stack at from to the
// top of the stack at to, fixing up both squares' top/color bitboards.
func (p *Position) transfer(from, to int, amount uint8) {
	moved := p.owners[from].PopTop(amount)
	p.owners[to].PushStack(moved)
	p.fixTop(from)
	p.fixTop(to)
}

func (p *Position) xorHash(idx int) {
	p.partialHash ^= squareHash(idx, p.owners[idx])
}

// Hash returns a 64-bit digest of the position, stable across equal
// boards/reserves/side/round regardless of move order, and suitable as
// a transposition-table key.
func (p *Position) Hash() uint64 {
	h := newFNV(p.partialHash)
	h.writeUint64(uint64(p.caps))
	h.writeUint64(uint64(p.walls))
	h.writeUint8(uint8(p.sideToMove))
	return h.sum()
}

// Validity is the result of Validate: a closed discriminant plus, for
// NotEnoughReserve, the piece kind that was unavailable.
type Validity struct {
	Code  MoveValidity
	Piece Kind
}

func valid() Validity                 { return Validity{Code: Valid} }
func invalid(c MoveValidity) Validity { return Validity{Code: c} }

// Ok reports whether the move is legal.
func (v Validity) Ok() bool { return v.Code == Valid }

func (v Validity) String() string {
	if v.Code == NotEnoughReserve {
		return fmt.Sprintf("NotEnough(%s)", v.Piece)
	}
	return v.Code.String()
}

// Validate classifies m against the current position without mutating
// it. It never panics, even on nonsensical input.
func (p *Position) Validate(m Move) Validity {
	switch m.Op {
	case OpPlace:
		return p.validatePlace(m)
	case OpSlide:
		return p.validateSlide(m)
	default:
		return invalid(InvalidSquare)
	}
}

func (p *Position) validatePlace(m Move) Validity {
	if !p.inBounds(m.Loc) {
		return invalid(InvalidSquare)
	}
	idx := p.idx(m.Loc)
	if !p.owners[idx].IsEmpty() {
		return invalid(SquareOccupied)
	}
	if p.reserves[p.sideToMove].Count(m.Piece) == 0 {
		return Validity{Code: NotEnoughReserve, Piece: m.Piece}
	}
	if p.round == 1 && m.Piece != Flat {
		return invalid(MustPlaceFlatFirstRound)
	}
	return valid()
}

func (p *Position) validateSlide(m Move) Validity {
	if !p.inBounds(m.Loc) {
		return invalid(InvalidSquare)
	}
	if p.round == 1 {
		return invalid(MustPlaceFlatFirstRound)
	}
	startIdx := p.idx(m.Loc)
	if p.owners[startIdx].IsEmpty() {
		return invalid(DontControlStack)
	}
	if _, ok := p.offsetLoc(m.Loc, m.Dir, int(m.Range)); !ok {
		return invalid(EndOutOfBounds)
	}
	if p.owners[startIdx].Top() != p.sideToMove {
		return invalid(DontControlStack)
	}

	isCap := p.topKind(startIdx) == Cap
	piecesMoved := 0
	for i := 1; i <= int(m.Range); i++ {
		loc, _ := p.offsetLoc(m.Loc, m.Dir, i)
		stepIdx := p.idx(loc)
		piecesMoved += int(m.Drops[i-1])

		if !p.owners[stepIdx].IsEmpty() {
			switch p.topKind(stepIdx) {
			case Cap:
				return invalid(CantMoveIntoCap)
			case Wall:
				if !isCap {
					return invalid(NeedCapToSmash)
				}
				if m.Drops[i-1] != 1 {
					return invalid(CapMustSmashAlone)
				}
				if i != int(m.Range) {
					return invalid(SmashMustBeLast)
				}
			}
		}

		if piecesMoved > p.owners[startIdx].Len() {
			return invalid(NotEnoughPieces)
		}
		if piecesMoved > p.size {
			return invalid(CarryLimit)
		}
	}
	return valid()
}

// Execute applies m, assumed already Valid. It updates reserves, stacks,
// bitboards, the hash, and advances side-to-move/round. For a slide,
// m.Smashed is set to whether the slide flattened a wall.
func (p *Position) Execute(m *Move) {
	switch m.Op {
	case OpPlace:
		p.executePlace(m)
	case OpSlide:
		p.executeSlide(m)
	}

	p.sideToMove = p.sideToMove.Other()
	if p.sideToMove == White {
		p.round++
	}
}

func (p *Position) executePlace(m *Move) {
	idx := p.idx(m.Loc)
	p.xorHash(idx)

	owner := p.sideToMove
	if p.round == 1 {
		owner = p.sideToMove.Other()
	}
	p.reserves[owner].remove(m.Piece)
	p.owners[idx].Push(owner)
	p.fixTop(idx)
	p.setTopKind(idx, m.Piece)

	p.xorHash(idx)
}

func (p *Position) executeSlide(m *Move) {
	startIdx := p.idx(m.Loc)
	endLoc, _ := p.offsetLoc(m.Loc, m.Dir, int(m.Range))
	endIdx := p.idx(endLoc)

	p.xorHash(startIdx)
	m.Smashed = p.walls.IsSet(endIdx)
	top := p.topKind(startIdx)

	for i := int(m.Range); i >= 1; i-- {
		loc, _ := p.offsetLoc(m.Loc, m.Dir, i)
		stepIdx := p.idx(loc)
		p.xorHash(stepIdx)
		p.transfer(startIdx, stepIdx, m.Drops[i-1])
		p.xorHash(stepIdx)
	}

	p.setTopKind(endIdx, top)
	p.xorHash(startIdx)
}

// Undo is the structural inverse of Execute for the same Move value
// (including whatever Smashed Execute set). It restores reserves,
// stacks, bitboards, hash, side-to-move and round exactly.
func (p *Position) Undo(m *Move) {
	if p.sideToMove == White {
		p.round--
	}
	p.sideToMove = p.sideToMove.Other()

	switch m.Op {
	case OpPlace:
		p.undoPlace(m)
	case OpSlide:
		p.undoSlide(m)
	}
}

func (p *Position) undoPlace(m *Move) {
	idx := p.idx(m.Loc)
	p.xorHash(idx)

	owner := p.sideToMove
	if p.round == 1 {
		owner = p.sideToMove.Other()
	}
	p.reserves[owner].add(m.Piece)
	p.owners[idx].PopTop(1)
	p.caps = p.caps.Clear(idx)
	p.walls = p.walls.Clear(idx)
	p.white = p.white.Clear(idx)
	p.black = p.black.Clear(idx)

	p.xorHash(idx)
}

func (p *Position) undoSlide(m *Move) {
	startIdx := p.idx(m.Loc)
	endLoc, _ := p.offsetLoc(m.Loc, m.Dir, int(m.Range))
	endIdx := p.idx(endLoc)

	top := p.topKind(endIdx)
	p.xorHash(startIdx)

	for i := 1; i <= int(m.Range); i++ {
		loc, _ := p.offsetLoc(m.Loc, m.Dir, i)
		stepIdx := p.idx(loc)
		p.xorHash(stepIdx)
		p.transfer(stepIdx, startIdx, m.Drops[i-1])
		p.xorHash(stepIdx)
	}

	p.setTopKind(startIdx, top)
	if m.Smashed {
		p.setTopKind(endIdx, Wall)
	}
	p.xorHash(startIdx)
}

// grow performs one bitboard flood-fill step: every square adjacent
// (within mask) to val, including val itself.
func (p *Position) grow(val, mask Bitboard) Bitboard {
	res := val
	res |= (val >> 1) &^ p.rightMask
	res |= (val << 1) &^ p.leftMask
	res |= val >> uint(p.size)
	res |= val << uint(p.size)
	return res & mask
}

func (p *Position) checkRoad(owned, e1, e2 Bitboard) bool {
	mask := owned &^ p.walls
	cur := e1 & mask
	for {
		next := p.grow(cur, mask)
		if next&e2 != 0 {
			return true
		}
		if next == cur {
			return false
		}
		cur = next
	}
}

func (p *Position) hasRoad(pl Player) bool {
	var owned Bitboard
	if pl == White {
		owned = p.white
	} else {
		owned = p.black
	}
	return p.checkRoad(owned, p.bottomMask, p.topMask) ||
		p.checkRoad(owned, p.leftMask, p.rightMask)
}

// Status checks for a terminal game state. It depends only on the
// observable position and is safe to call any number of times.
func (p *Position) Status() (Outcome, bool) {
	mover := p.sideToMove
	opponent := mover.Other()

	// Dragon rule: the player who just moved (the opponent of the side
	// to move) is checked first, so that if both players have roads,
	// the player who just moved wins.
	if p.hasRoad(opponent) {
		return Outcome{Kind: OutcomeRoad, Winner: opponent}, true
	}
	if p.hasRoad(mover) {
		return Outcome{Kind: OutcomeRoad, Winner: mover}, true
	}

	boardFull := (p.white | p.black) == p.fullMask
	if boardFull || p.reserves[White].Empty() || p.reserves[Black].Empty() {
		wFlats := (p.white &^ p.walls &^ p.caps).PopCount()
		bFlats := (p.black &^ p.walls &^ p.caps).PopCount()
		switch {
		case wFlats > bFlats:
			return Outcome{Kind: OutcomeFlat, Winner: White}, true
		case bFlats > wFlats:
			return Outcome{Kind: OutcomeFlat, Winner: Black}, true
		default:
			return Outcome{Kind: OutcomeDraw}, true
		}
	}

	return Outcome{}, false
}
