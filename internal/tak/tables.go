package tak

// DropSet is one legal distribution of carried pieces over a slide: Range
// squares are stepped over, dropping Drops[i] pieces on step i+1.
type DropSet struct {
	Range uint8
	Drops [MaxRange]uint8
}

// dropTables[mobile][dist][smashIdx] holds every legal DropSet for a
// slide whose mover can carry at most `mobile` pieces over a path of
// `dist` reachable squares, where smashIdx is 0 for a non-smashing path
// and 1 when the final square is a wall reachable only by a capstone.
//
// Built once at init time: the table is small (indices 0..8) and pure,
// so there is no benefit to lazy construction or a build-time code
// generator here, only added complexity.
var dropTables [MaxRange + 1][MaxRange + 1][2][]DropSet

func init() {
	for mobile := 1; mobile <= MaxRange; mobile++ {
		for dist := 1; dist <= mobile; dist++ {
			for _, smash := range []bool{false, true} {
				dropTables[mobile][dist][boolIdx(smash)] = buildDropSets(mobile, dist, smash)
			}
		}
	}
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}

// dropSetsFor returns the precomputed drop-count table entries for a
// slide that can carry at most mobile pieces over dist reachable
// squares, with smash indicating whether the final square is a wall the
// mover's capstone may flatten.
func dropSetsFor(mobile, dist int, smash bool) []DropSet {
	if mobile < 1 || mobile > MaxRange || dist < 1 || dist > mobile {
		return nil
	}
	return dropTables[mobile][dist][boolIdx(smash)]
}

// buildDropSets enumerates, for every carry amount c from dist to
// mobile, every ordered composition of c into exactly dist positive
// parts. The caller (movegen.go) already loops over every reachable
// dist itself, so a DropSet's Range is always exactly dist here; baking
// shorter ranges in as well would hand movegen the same slide once per
// dist it re-queries, duplicating moves. When smash is true, the
// distribution must drop exactly one piece on the final (wall) square,
// since a capstone can only smash a wall by landing on it alone.
func buildDropSets(mobile, dist int, smash bool) []DropSet {
	var out []DropSet
	for c := dist; c <= mobile; c++ {
		for _, parts := range compositions(c, dist) {
			if smash && parts[dist-1] != 1 {
				continue
			}
			var ds DropSet
			ds.Range = uint8(dist)
			for i, v := range parts {
				ds.Drops[i] = uint8(v)
			}
			out = append(out, ds)
		}
	}
	return out
}

// compositions returns every ordered tuple of d positive integers
// summing to c, in lexicographic order of the first differing part.
func compositions(c, d int) [][]int {
	if d == 1 {
		return [][]int{{c}}
	}
	var out [][]int
	for first := 1; first <= c-(d-1); first++ {
		for _, rest := range compositions(c-first, d-1) {
			out = append(out, append([]int{first}, rest...))
		}
	}
	return out
}
