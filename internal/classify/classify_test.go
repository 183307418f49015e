package classify

import "testing"

func allPositions() []Pos {
	var out []Pos
	for r := 0; r < 3; r++ {
		for c := 0; c < 12; c++ {
			out = append(out, Pos{Row: r, Col: c})
		}
	}
	return out
}

// disjointXor checks that for every (a,b,c) where base holds, exactly one
// of in/out holds, and neither holds when base doesn't.
func disjointXor(t *testing.T, name string, base, in, out func(a, b, c Pos) bool) {
	t.Helper()
	positions := allPositions()
	checked := 0
	for _, a := range positions {
		for _, b := range positions {
			for _, c := range positions {
				baseVal := base(a, b, c)
				inVal := in(a, b, c)
				outVal := out(a, b, c)
				if inVal && outVal {
					t.Fatalf("%s: In and Out both true for %v,%v,%v", name, a, b, c)
				}
				if !baseVal && (inVal || outVal) {
					t.Fatalf("%s: In/Out true but base false for %v,%v,%v", name, a, b, c)
				}
				if baseVal && !inVal && !outVal {
					t.Fatalf("%s: base true but neither In nor Out for %v,%v,%v", name, a, b, c)
				}
				checked++
			}
		}
	}
	if checked == 0 {
		t.Fatalf("%s: no cases checked", name)
	}
}

func TestAlternationInOutDisjoint(t *testing.T) {
	disjointXor(t, "Alternation", Alternation, AlternationIn, AlternationOut)
}

func TestOneHandInOutDisjoint(t *testing.T) {
	disjointXor(t, "OneHand", OneHand, OneHandIn, OneHandOut)
}

func TestRollInOutDisjoint(t *testing.T) {
	disjointXor(t, "Roll", Roll, RollIn, RollOut)
}

func TestSameFingerBiExcludesIdenticalKeyAndOtherFingers(t *testing.T) {
	a, b := Pos{Row: 1, Col: 3}, Pos{Row: 1, Col: 3}
	if SameFingerBi(a, b) {
		t.Errorf("SameFingerBi(%v,%v) = true, want false (identical key)", a, b)
	}
	c := Pos{Row: 1, Col: 4}
	if SameFingerBi(a, c) {
		t.Errorf("SameFingerBi(%v,%v) = true, want false (different finger)", a, c)
	}
}

func TestIndexStretchBiRequiresMiddleFingerStretchColumnPairing(t *testing.T) {
	// col3 is middle-L (finger 2), col5 is the index-L stretch column: matches.
	if a, b := (Pos{Row: 0, Col: 3}), (Pos{Row: 0, Col: 5}); !IndexStretchBi(a, b) {
		t.Errorf("IndexStretchBi(%v,%v) = false, want true (middle-L + index-L stretch col)", a, b)
	}
	// col4,col5 is a same-finger index-L bigram (finger 3 both): not a middle-finger pairing.
	if a, b := (Pos{Row: 0, Col: 4}), (Pos{Row: 0, Col: 5}); IndexStretchBi(a, b) {
		t.Errorf("IndexStretchBi(%v,%v) = true, want false (same-finger index bigram, no middle finger involved)", a, b)
	}
	// col2,col5 is ring-L (finger 1) + index-L stretch col: ring is not a middle finger.
	if a, b := (Pos{Row: 0, Col: 2}), (Pos{Row: 0, Col: 5}); IndexStretchBi(a, b) {
		t.Errorf("IndexStretchBi(%v,%v) = true, want false (ring finger, not middle)", a, b)
	}
}

func TestPinkyStretchBiRequiresRingFingerStretchColumnPairing(t *testing.T) {
	// col2 is ring-L (finger 1), col0 is the pinky-L stretch column: matches.
	if a, b := (Pos{Row: 0, Col: 2}), (Pos{Row: 0, Col: 0}); !PinkyStretchBi(a, b) {
		t.Errorf("PinkyStretchBi(%v,%v) = false, want true (ring-L + pinky-L stretch col)", a, b)
	}
	// col3,col0 is middle-L (finger 2) + pinky-L stretch col: middle is not a ring finger.
	if a, b := (Pos{Row: 0, Col: 3}), (Pos{Row: 0, Col: 0}); PinkyStretchBi(a, b) {
		t.Errorf("PinkyStretchBi(%v,%v) = true, want false (middle finger, not ring)", a, b)
	}
}

// Redirect (a finger-order zigzag) and OneHand (a monotone finger-order
// run) are both same-hand trigram shapes but mutually exclusive: a trigram
// can't be both a zigzag and monotone.
func TestRedirectOneHandMutuallyExclusive(t *testing.T) {
	positions := allPositions()
	for _, a := range positions {
		for _, b := range positions {
			for _, c := range positions {
				if Redirect(a, b, c) && OneHand(a, b, c) {
					t.Fatalf("Redirect and OneHand both true for %v,%v,%v", a, b, c)
				}
			}
		}
	}
}
