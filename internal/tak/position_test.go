package tak

import "testing"

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, 1, 2, 9, 100} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) = nil error, want InvalidSizeError", size)
		}
	}
}

func TestNewStartingState(t *testing.T) {
	p, err := New(5)
	if err != nil {
		t.Fatalf("New(5): %v", err)
	}
	if p.Round() != 1 {
		t.Errorf("Round() = %d, want 1", p.Round())
	}
	if p.SideToMove() != White {
		t.Errorf("SideToMove() = %s, want White", p.SideToMove())
	}
	if r := p.Reserves(White); r.Flats != 21 || r.Caps != 1 {
		t.Errorf("White reserves = %+v, want {21 1}", r)
	}
}

// The first round is placement-only and both plies place a flat (the
// swap rule), so perft at depths 1 and 2 is exactly size^2 and
// size^2*(size^2-1) regardless of board size.
func TestPerftFirstRound(t *testing.T) {
	for _, size := range []int{3, 4, 5, 6} {
		p, err := New(size)
		if err != nil {
			t.Fatal(err)
		}
		n := size * size
		if got := perft(p, 1); got != int64(n) {
			t.Errorf("size=%d perft(1) = %d, want %d", size, got, n)
		}
		if got := perft(p, 2); got != int64(n)*int64(n-1) {
			t.Errorf("size=%d perft(2) = %d, want %d", size, got, int64(n)*int64(n-1))
		}
	}
}

func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var n int64
	p.Generate(func(m Move) {
		p.Execute(&m)
		n += perft(p, depth-1)
		p.Undo(&m)
	})
	return n
}

func TestFirstRoundSwapsOwnership(t *testing.T) {
	p, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	loc := Loc{X: 2, Y: 2}
	m := NewPlace(loc, Flat)
	if v := p.Validate(m); !v.Ok() {
		t.Fatalf("Validate(%v) = %v, want Valid", m, v)
	}
	p.Execute(&m)

	if got := p.Stack(loc).Top(); got != Black {
		t.Errorf("round-1 placement by White landed %s, want Black (swap rule)", got)
	}
	if r := p.Reserves(Black); r.Flats != 20 {
		t.Errorf("Black reserves.Flats = %d, want 20", r.Flats)
	}
	if r := p.Reserves(White); r.Flats != 21 {
		t.Errorf("White reserves.Flats = %d, want unchanged 21", r.Flats)
	}
	if p.SideToMove() != Black {
		t.Errorf("SideToMove() = %s, want Black", p.SideToMove())
	}
	if p.Round() != 1 {
		t.Errorf("Round() = %d, want still 1", p.Round())
	}
}

func TestExecuteUndoRestoresEverything(t *testing.T) {
	p, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	startHash := p.Hash()
	startTPS := p.TPS()
	startWhite := p.Reserves(White)
	startBlack := p.Reserves(Black)

	var moves []Move
	for i := 0; i < 6; i++ {
		var chosen *Move
		p.Generate(func(m Move) {
			if chosen == nil {
				chosen = &m
			}
		})
		if chosen == nil {
			t.Fatalf("no legal moves at ply %d", i)
		}
		p.Execute(chosen)
		moves = append(moves, *chosen)
	}

	if p.Hash() == startHash {
		t.Fatal("hash unchanged after 6 plies, generator likely produced no-op moves")
	}

	for i := len(moves) - 1; i >= 0; i-- {
		p.Undo(&moves[i])
	}

	if got := p.Hash(); got != startHash {
		t.Errorf("Hash() after round trip = %d, want %d", got, startHash)
	}
	if got := p.TPS(); got != startTPS {
		t.Errorf("TPS() after round trip = %q, want %q", got, startTPS)
	}
	if got := p.Reserves(White); got != startWhite {
		t.Errorf("White reserves after round trip = %+v, want %+v", got, startWhite)
	}
	if got := p.Reserves(Black); got != startBlack {
		t.Errorf("Black reserves after round trip = %+v, want %+v", got, startBlack)
	}
	if p.Round() != 1 || p.SideToMove() != White {
		t.Errorf("Round/SideToMove after round trip = %d/%s, want 1/White", p.Round(), p.SideToMove())
	}
}

func TestGenerateOnlyYieldsValidMoves(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	// Play through round 1 so slides become legal too.
	for i := 0; i < 2; i++ {
		var chosen *Move
		p.Generate(func(m Move) {
			if chosen == nil {
				chosen = &m
			}
		})
		p.Execute(chosen)
	}

	count := 0
	p.Generate(func(m Move) {
		count++
		if v := p.Validate(m); !v.Ok() {
			t.Errorf("Generate produced invalid move %v: %v", m, v)
		}
	})
	if count == 0 {
		t.Fatal("Generate produced no moves after round 1")
	}
}

func TestStatusDetectsHorizontalRoad(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	plies := []Loc{
		{X: 0, Y: 3}, // round1 White places -> Black stone
		{X: 1, Y: 3}, // round1 Black places -> White stone
		{X: 0, Y: 0}, // round2 White
		{X: 0, Y: 1}, // round2 Black
		{X: 1, Y: 0}, // round3 White
		{X: 1, Y: 1}, // round3 Black
		{X: 2, Y: 0}, // round4 White
		{X: 2, Y: 1}, // round4 Black
		{X: 3, Y: 0}, // round5 White completes the road
	}
	for i, loc := range plies {
		m := NewPlace(loc, Flat)
		if v := p.Validate(m); !v.Ok() {
			t.Fatalf("ply %d: Validate(%v) = %v, want Valid", i, m, v)
		}
		p.Execute(&m)
	}

	outcome, over := p.Status()
	if !over {
		t.Fatal("Status() reported game not over, want Road(White)")
	}
	if outcome.Kind != OutcomeRoad || outcome.Winner != White {
		t.Errorf("Status() = %v, want Road(White)", outcome)
	}
}

func TestTPSEmptyBoard(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	want := "x4/x4/x4/x4 1 1"
	if got := p.TPS(); got != want {
		t.Errorf("TPS() = %q, want %q", got, want)
	}
}
