package tak

import "testing"

func TestStackPushGet(t *testing.T) {
	var s Stack
	order := []Player{White, Black, White, Black, White}
	for _, p := range order {
		s.Push(p)
	}
	if s.Len() != len(order) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(order))
	}
	for i, want := range order {
		if got := s.Get(i); got != want {
			t.Errorf("Get(%d) = %s, want %s", i, got, want)
		}
	}
	if s.Top() != order[len(order)-1] {
		t.Errorf("Top() = %s, want %s", s.Top(), order[len(order)-1])
	}
}

func TestStackPopTopPreservesOrder(t *testing.T) {
	var s Stack
	for _, p := range []Player{White, White, Black, White, Black} {
		s.Push(p)
	}
	top2 := s.PopTop(2)
	if top2.Len() != 2 {
		t.Fatalf("popped.Len() = %d, want 2", top2.Len())
	}
	if top2.Get(0) != White || top2.Get(1) != Black {
		t.Errorf("popped stack = [%s %s], want [White Black]", top2.Get(0), top2.Get(1))
	}
	if s.Len() != 3 {
		t.Fatalf("remaining.Len() = %d, want 3", s.Len())
	}
	if s.Top() != Black {
		t.Errorf("remaining.Top() = %s, want Black", s.Top())
	}
}

func TestStackPushStackRoundTrip(t *testing.T) {
	var a, b Stack
	for _, p := range []Player{White, Black, White} {
		a.Push(p)
	}
	for _, p := range []Player{Black, Black} {
		b.Push(p)
	}
	combined := a
	combined.PushStack(b)
	if combined.Len() != 5 {
		t.Fatalf("combined.Len() = %d, want 5", combined.Len())
	}
	// PushStack then PopTop of the same size must exactly recover b.
	restored := combined.PopTop(2)
	if restored.Len() != b.Len() || restored.Get(0) != b.Get(0) || restored.Get(1) != b.Get(1) {
		t.Errorf("PopTop after PushStack did not recover the pushed stack")
	}
}

func TestStackTallTower(t *testing.T) {
	var s Stack
	const n = 100
	for i := 0; i < n; i++ {
		p := White
		if i%2 == 1 {
			p = Black
		}
		s.Push(p)
	}
	if s.Len() != n {
		t.Fatalf("Len() = %d, want %d", s.Len(), n)
	}
	for i := 0; i < n; i++ {
		want := White
		if i%2 == 1 {
			want = Black
		}
		if got := s.Get(i); got != want {
			t.Fatalf("Get(%d) = %s, want %s", i, got, want)
		}
	}
}

func TestStackIsEmpty(t *testing.T) {
	var s Stack
	if !s.IsEmpty() {
		t.Fatal("zero-value Stack should be empty")
	}
	s.Push(White)
	if s.IsEmpty() {
		t.Fatal("Stack with one piece should not be empty")
	}
}
