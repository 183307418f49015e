package catalog

import (
	"github.com/rbscholtus/layoutscore/internal/classify"
	"github.com/rbscholtus/layoutscore/internal/geometry"
)

func posAt(flat int) classify.Pos {
	r, c := geometry.UnflatMono(flat)
	return classify.Pos{Row: r, Col: c}
}

// monoStat exhaustively tests every one of the 36 grid positions against
// pred and returns the compacted (here: simply appended, since the Go
// slice already holds only matches) index list. This realizes the same
// end state as the reference two-pointer partition compaction — a prefix
// of valid indices with no gaps — without needing a fixed-size scratch
// array and a separate compaction pass; Go's growable slices make the
// partition step unnecessary.
func monoStat(name string, pred func(classify.Pos) bool) StatEntry {
	var idx []int32
	for p := 0; p < geometry.Positions; p++ {
		if pred(posAt(p)) {
			idx = append(idx, int32(p))
		}
	}
	return StatEntry{Kind: Mono, Name: name, Indices: idx}
}

func biStat(name string, pred func(a, b classify.Pos) bool) StatEntry {
	var idx []int32
	for p0 := 0; p0 < geometry.Positions; p0++ {
		a := posAt(p0)
		for p1 := 0; p1 < geometry.Positions; p1++ {
			b := posAt(p1)
			if pred(a, b) {
				idx = append(idx, int32(geometry.FlatBi(p0, p1)))
			}
		}
	}
	return StatEntry{Kind: Bi, Name: name, Indices: idx}
}

func skipStat(name string, pred func(a, b classify.Pos) bool) StatEntry {
	e := biStat(name, pred)
	e.Kind = Skip
	return e
}

func triStat(name string, pred func(a, b, c classify.Pos) bool) StatEntry {
	var idx []int32
	for p0 := 0; p0 < geometry.Positions; p0++ {
		a := posAt(p0)
		for p1 := 0; p1 < geometry.Positions; p1++ {
			b := posAt(p1)
			for p2 := 0; p2 < geometry.Positions; p2++ {
				c := posAt(p2)
				if pred(a, b, c) {
					idx = append(idx, int32(geometry.FlatTri(p0, p1, p2)))
				}
			}
		}
	}
	return StatEntry{Kind: Tri, Name: name, Indices: idx}
}

func quadStat(name string, pred func(a, b, c, d classify.Pos) bool) StatEntry {
	var idx []int32
	for p0 := 0; p0 < geometry.Positions; p0++ {
		a := posAt(p0)
		for p1 := 0; p1 < geometry.Positions; p1++ {
			b := posAt(p1)
			for p2 := 0; p2 < geometry.Positions; p2++ {
				c := posAt(p2)
				for p3 := 0; p3 < geometry.Positions; p3++ {
					d := posAt(p3)
					if pred(a, b, c, d) {
						idx = append(idx, int32(geometry.FlatQuad(p0, p1, p2, p3)))
					}
				}
			}
		}
	}
	return StatEntry{Kind: Quad, Name: name, Indices: idx}
}

var fingerNames = [8]string{
	"Left Pinky", "Left Ring", "Left Middle", "Left Index",
	"Right Index", "Right Middle", "Right Ring", "Right Pinky",
}

// lateralFingers are the four fingers eligible for the lateral-same-finger
// bigram/skipgram breakdown: the two pinkies and the two index fingers.
var lateralFingers = []int{0, 3, 4, 7}
