package tak

import "testing"

func sumDrops(d DropSet) int {
	n := 0
	for i := uint8(0); i < d.Range; i++ {
		n += int(d.Drops[i])
	}
	return n
}

func TestDropSetsForSumsMatchCarry(t *testing.T) {
	for mobile := 1; mobile <= MaxRange; mobile++ {
		for dist := 1; dist <= mobile; dist++ {
			for _, smash := range []bool{false, true} {
				for _, ds := range dropSetsFor(mobile, dist, smash) {
					if int(ds.Range) != dist {
						t.Fatalf("mobile=%d dist=%d: DropSet.Range = %d, want %d", mobile, dist, ds.Range, dist)
					}
					if s := sumDrops(ds); s < dist || s > mobile {
						t.Fatalf("mobile=%d dist=%d: drops sum to %d, want %d..%d", mobile, dist, s, dist, mobile)
					}
					for i := 0; i < dist; i++ {
						if ds.Drops[i] < 1 {
							t.Fatalf("mobile=%d dist=%d: drop %d is %d, want >= 1", mobile, dist, i, ds.Drops[i])
						}
					}
				}
			}
		}
	}
}

func TestDropSetsForSmashRequiresFinalDropOne(t *testing.T) {
	for mobile := 2; mobile <= MaxRange; mobile++ {
		for dist := 1; dist <= mobile; dist++ {
			for _, ds := range dropSetsFor(mobile, dist, true) {
				if ds.Drops[dist-1] != 1 {
					t.Fatalf("mobile=%d dist=%d smash: final drop = %d, want 1", mobile, dist, ds.Drops[dist-1])
				}
			}
		}
	}
}

func TestDropSetsForNonSmashSupersetOfSmash(t *testing.T) {
	// Every smash-legal distribution is also a legal non-smash distribution
	// (the wall simply isn't there to flatten).
	for mobile := 2; mobile <= MaxRange; mobile++ {
		for dist := 1; dist <= mobile; dist++ {
			smashCount := len(dropSetsFor(mobile, dist, true))
			allCount := len(dropSetsFor(mobile, dist, false))
			if smashCount > allCount {
				t.Fatalf("mobile=%d dist=%d: smash table has %d entries, non-smash only %d", mobile, dist, smashCount, allCount)
			}
		}
	}
}

func TestDropSetsForOutOfRange(t *testing.T) {
	if got := dropSetsFor(0, 1, false); got != nil {
		t.Errorf("dropSetsFor(0,1,false) = %v, want nil", got)
	}
	if got := dropSetsFor(3, 4, false); got != nil {
		t.Errorf("dropSetsFor(3,4,false) = %v, want nil", got)
	}
	if got := dropSetsFor(MaxRange+1, 1, false); got != nil {
		t.Errorf("dropSetsFor(MaxRange+1,1,false) = %v, want nil", got)
	}
}

func TestCompositionsCount(t *testing.T) {
	// The number of compositions of c into d positive parts is C(c-1, d-1).
	cases := []struct{ c, d, want int }{
		{1, 1, 1},
		{3, 1, 1},
		{3, 2, 2},
		{3, 3, 1},
		{4, 2, 3},
		{5, 3, 6},
	}
	for _, tc := range cases {
		got := len(compositions(tc.c, tc.d))
		if got != tc.want {
			t.Errorf("compositions(%d,%d): len = %d, want %d", tc.c, tc.d, got, tc.want)
		}
	}
}
