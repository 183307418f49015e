// Package classify implements the closed taxonomy of boolean predicates
// over 2-, 3-, and 4-key sequences that the statistic catalog is built
// from. Every predicate is a pure function of row/column geometry alone,
// ported from the finger/hand model in package geometry.
package classify

import "github.com/rbscholtus/layoutscore/internal/geometry"

// Pos is a single key's grid coordinate.
type Pos struct {
	Row, Col int
}

func hand(p Pos) geometry.Hand   { return geometry.HandOf(p.Col) }
func finger(p Pos) int           { return geometry.FingerOf(p.Col) }
func sameHand(a, b Pos) bool     { return hand(a) == hand(b) }
func samePos(a, b Pos) bool      { return geometry.SamePosition(a.Row, a.Col, b.Row, b.Col) }
func sameFinger(a, b Pos) bool   { return finger(a) == finger(b) && !samePos(a, b) }
func rowDiff(a, b Pos) int       { return geometry.RowDiff(a.Row, b.Row) }
func adjFinger(a, b Pos) bool    { return geometry.AdjacentFinger(a.Col, b.Col) }
func sameRowMod(a, b Pos) bool   { return geometry.SameRowMod(a.Row, a.Col, b.Row, b.Col) }

// --- Bigram predicates ---

// SameFingerBi reports a same-finger bigram: same finger, distinct position.
func SameFingerBi(a, b Pos) bool {
	return sameFinger(a, b)
}

// BadSameFingerBi reports a same-finger bigram with a two-row vertical span.
func BadSameFingerBi(a, b Pos) bool {
	return sameFinger(a, b) && rowDiff(a, b) == 2
}

// LateralSameFingerBi reports a same-finger bigram with a horizontal
// (column) component.
func LateralSameFingerBi(a, b Pos) bool {
	return sameFinger(a, b) && a.Col != b.Col
}

// FingerOfPairBi returns the shared finger of a same-finger bigram, or -1.
func FingerOfPairBi(a, b Pos) int {
	if !sameFinger(a, b) {
		return -1
	}
	return finger(a)
}

// indexPinkyCombo excludes index/pinky finger pairs from russor membership,
// per the original classifier (fingers 0,3 and 4,7 are index-pinky splits).
func indexPinkyCombo(fa, fb int) bool {
	return (fa == 0 && fb == 3) || (fa == 3 && fb == 0) || (fa == 4 && fb == 7) || (fa == 7 && fb == 4)
}

func isRussorFingers(a, b Pos) bool {
	if !sameHand(a, b) {
		return false
	}
	if sameFinger(a, b) || samePos(a, b) {
		return false
	}
	if d := finger(a) - finger(b); d == 1 || d == -1 {
		return false
	}
	return !indexPinkyCombo(finger(a), finger(b))
}

// FullRussorBi reports a same-hand, non-adjacent-finger bigram with a
// two-row vertical span.
func FullRussorBi(a, b Pos) bool {
	return isRussorFingers(a, b) && rowDiff(a, b) == 2
}

// HalfRussorBi reports a same-hand, non-adjacent-finger bigram with a
// one-row vertical span.
func HalfRussorBi(a, b Pos) bool {
	return isRussorFingers(a, b) && rowDiff(a, b) == 1
}

// IndexStretchBi reports a bigram pairing a middle finger (finger 2 or 5)
// with the other key sitting on the adjacent index-stretch column (5 or 6).
func IndexStretchBi(a, b Pos) bool {
	fa, fb := finger(a), finger(b)
	return (fa == 2 && b.Col == 5) || (fb == 2 && a.Col == 5) ||
		(fa == 5 && b.Col == 6) || (fb == 5 && a.Col == 6)
}

// PinkyStretchBi reports a bigram pairing a ring finger (finger 1 or 6)
// with the other key sitting on the adjacent pinky-stretch column (0 or 11).
func PinkyStretchBi(a, b Pos) bool {
	fa, fb := finger(a), finger(b)
	return (fa == 1 && b.Col == 0) || (fb == 1 && a.Col == 0) ||
		(fa == 6 && b.Col == 11) || (fb == 6 && a.Col == 11)
}

// SameFingerTri reports a same-finger trigram: either adjacent pair (0,1)
// or (1,2) shares a finger.
func SameFingerTri(a, b, c Pos) bool {
	return sameFinger(a, b) || sameFinger(b, c)
}

// --- Trigram predicates ---

func fingerOrder3(a, b, c Pos) (fa, fb, fc int) {
	return finger(a), finger(b), finger(c)
}

// Redirect reports a same-hand trigram with a direction change in the
// finger-index ordering across all three keys.
func Redirect(a, b, c Pos) bool {
	if !(sameHand(a, b) && sameHand(b, c)) {
		return false
	}
	if sameFinger(a, b) || sameFinger(b, c) || samePos(a, b) || samePos(b, c) {
		return false
	}
	fa, fb, fc := fingerOrder3(a, b, c)
	return (fa < fb && fb > fc) || (fa > fb && fb < fc)
}

// BadRedirect reports a redirect not involving either index finger.
func BadRedirect(a, b, c Pos) bool {
	if !Redirect(a, b, c) {
		return false
	}
	fa, fb, fc := fingerOrder3(a, b, c)
	return fa != 3 && fa != 4 && fb != 3 && fb != 4 && fc != 3 && fc != 4
}

// Alternation reports hand0 != hand1 != hand2 (LRL/RLR) with no same-finger
// or same-position pair across the endpoints.
func Alternation(a, b, c Pos) bool {
	if hand(a) == hand(b) || hand(b) == hand(c) {
		return false
	}
	return !sameFinger(a, c) && !samePos(a, c)
}

// rollIn/rollOut use the shared direction rule: inward means toward the
// hand's middle column, i.e. ascending finger index for the left hand and
// descending finger index for the right hand.
func directionIn(h geometry.Hand, fFrom, fTo int) bool {
	if h == geometry.Left {
		return fFrom < fTo
	}
	return fFrom > fTo
}

func directionOut(h geometry.Hand, fFrom, fTo int) bool {
	if h == geometry.Left {
		return fFrom > fTo
	}
	return fFrom < fTo
}

// AlternationIn/Out apply the roll-in/out direction test to the two
// same-hand positions of the alternating triple, reordered as (pos0, pos2).
func AlternationIn(a, b, c Pos) bool {
	if !Alternation(a, b, c) {
		return false
	}
	return directionIn(hand(a), finger(a), finger(c))
}

func AlternationOut(a, b, c Pos) bool {
	if !Alternation(a, b, c) {
		return false
	}
	return directionOut(hand(a), finger(a), finger(c))
}

// SameRowAlternation / AdjacentFingerAlternation are cross products of
// Alternation with a same-row or adjacent-finger condition on the endpoints.
func SameRowAlternation(a, b, c Pos) bool {
	return Alternation(a, b, c) && sameRowMod(a, c)
}

func AdjacentFingerAlternation(a, b, c Pos) bool {
	return Alternation(a, b, c) && adjFinger(a, c)
}

func SameRowAlternationIn(a, b, c Pos) bool {
	return AlternationIn(a, b, c) && sameRowMod(a, c)
}

func SameRowAlternationOut(a, b, c Pos) bool {
	return AlternationOut(a, b, c) && sameRowMod(a, c)
}

func AdjacentFingerAlternationIn(a, b, c Pos) bool {
	return AlternationIn(a, b, c) && adjFinger(a, c)
}

func AdjacentFingerAlternationOut(a, b, c Pos) bool {
	return AlternationOut(a, b, c) && adjFinger(a, c)
}

func SameRowAdjacentFingerAlternation(a, b, c Pos) bool {
	return Alternation(a, b, c) && sameRowMod(a, c) && adjFinger(a, c)
}

func SameRowAdjacentFingerAlternationIn(a, b, c Pos) bool {
	return AlternationIn(a, b, c) && sameRowMod(a, c) && adjFinger(a, c)
}

func SameRowAdjacentFingerAlternationOut(a, b, c Pos) bool {
	return AlternationOut(a, b, c) && sameRowMod(a, c) && adjFinger(a, c)
}

// OneHand reports a monotone finger-index progression on a single hand.
func OneHand(a, b, c Pos) bool {
	if !(sameHand(a, b) && sameHand(b, c)) {
		return false
	}
	fa, fb, fc := fingerOrder3(a, b, c)
	return (fa < fb && fb < fc) || (fa > fb && fb > fc)
}

// OneHandIn/Out: left hand ascending = in, right hand descending = in.
func OneHandIn(a, b, c Pos) bool {
	if !OneHand(a, b, c) {
		return false
	}
	return directionIn(hand(a), finger(a), finger(c))
}

func OneHandOut(a, b, c Pos) bool {
	if !OneHand(a, b, c) {
		return false
	}
	return directionOut(hand(a), finger(a), finger(c))
}

func SameRowOneHand(a, b, c Pos) bool {
	return OneHand(a, b, c) && sameRowMod(a, c)
}

func AdjacentFingerOneHand(a, b, c Pos) bool {
	return OneHand(a, b, c) && adjFinger(a, c)
}

func SameRowOneHandIn(a, b, c Pos) bool {
	return OneHandIn(a, b, c) && sameRowMod(a, c)
}

func SameRowOneHandOut(a, b, c Pos) bool {
	return OneHandOut(a, b, c) && sameRowMod(a, c)
}

func AdjacentFingerOneHandIn(a, b, c Pos) bool {
	return OneHandIn(a, b, c) && adjFinger(a, c)
}

func AdjacentFingerOneHandOut(a, b, c Pos) bool {
	return OneHandOut(a, b, c) && adjFinger(a, c)
}

func SameRowAdjacentFingerOneHand(a, b, c Pos) bool {
	return OneHand(a, b, c) && sameRowMod(a, c) && adjFinger(a, c)
}

func SameRowAdjacentFingerOneHandIn(a, b, c Pos) bool {
	return OneHandIn(a, b, c) && sameRowMod(a, c) && adjFinger(a, c)
}

func SameRowAdjacentFingerOneHandOut(a, b, c Pos) bool {
	return OneHandOut(a, b, c) && sameRowMod(a, c) && adjFinger(a, c)
}

// Roll reports exactly one hand switch among the two adjacent pairs
// (0,1)/(1,2), with the same-hand pair not being same-finger/same-position.
func Roll(a, b, c Pos) bool {
	sw01 := hand(a) != hand(b)
	sw12 := hand(b) != hand(c)
	if sw01 == sw12 {
		return false
	}
	if sw01 {
		// same-hand pair is (b,c)
		return !sameFinger(b, c) && !samePos(b, c)
	}
	return !sameFinger(a, b) && !samePos(a, b)
}

// rollSameHandPair returns the same-hand pair of a roll triple.
func rollSameHandPair(a, b, c Pos) (Pos, Pos, bool) {
	if hand(a) != hand(b) {
		return b, c, true
	}
	return a, b, false
}

// RollIn/Out: direction test applied to whichever pair is the same-hand pair.
func RollIn(a, b, c Pos) bool {
	if !Roll(a, b, c) {
		return false
	}
	x, y, _ := rollSameHandPair(a, b, c)
	return directionIn(hand(x), finger(x), finger(y))
}

func RollOut(a, b, c Pos) bool {
	if !Roll(a, b, c) {
		return false
	}
	x, y, _ := rollSameHandPair(a, b, c)
	return directionOut(hand(x), finger(x), finger(y))
}

func SameRowRoll(a, b, c Pos) bool {
	if !Roll(a, b, c) {
		return false
	}
	x, y, _ := rollSameHandPair(a, b, c)
	return sameRowMod(x, y)
}

func AdjacentFingerRoll(a, b, c Pos) bool {
	if !Roll(a, b, c) {
		return false
	}
	x, y, _ := rollSameHandPair(a, b, c)
	return adjFinger(x, y)
}

func SameRowAdjacentFingerRoll(a, b, c Pos) bool {
	if !Roll(a, b, c) {
		return false
	}
	x, y, _ := rollSameHandPair(a, b, c)
	return sameRowMod(x, y) && adjFinger(x, y)
}

func SameRowAdjacentFingerRollIn(a, b, c Pos) bool {
	return RollIn(a, b, c) && SameRowAdjacentFingerRoll(a, b, c)
}

func SameRowAdjacentFingerRollOut(a, b, c Pos) bool {
	return RollOut(a, b, c) && SameRowAdjacentFingerRoll(a, b, c)
}

// --- Quadgram predicates ---
// Chained predicates are AND-combinations of the corresponding trigram
// predicate evaluated over (0,1,2) and (1,2,3).

func SameFingerQuad(a, b, c, d Pos) bool {
	return sameFinger(a, b) || sameFinger(b, c) || sameFinger(c, d)
}

func ChainedRedirect(a, b, c, d Pos) bool {
	return Redirect(a, b, c) && Redirect(b, c, d)
}

func BadChainedRedirect(a, b, c, d Pos) bool {
	return BadRedirect(a, b, c) && BadRedirect(b, c, d)
}

func ChainedAlternation(a, b, c, d Pos) bool {
	return Alternation(a, b, c) && Alternation(b, c, d)
}

func ChainedAlternationIn(a, b, c, d Pos) bool {
	return AlternationIn(a, b, c) && AlternationIn(b, c, d)
}

func ChainedAlternationOut(a, b, c, d Pos) bool {
	return AlternationOut(a, b, c) && AlternationOut(b, c, d)
}

func ChainedAlternationMix(a, b, c, d Pos) bool {
	return (AlternationIn(a, b, c) && AlternationOut(b, c, d)) ||
		(AlternationOut(a, b, c) && AlternationIn(b, c, d))
}

func SameRowChainedAlternation(a, b, c, d Pos) bool {
	return SameRowAlternation(a, b, c) && SameRowAlternation(b, c, d)
}

func SameRowChainedAlternationIn(a, b, c, d Pos) bool {
	return SameRowAlternationIn(a, b, c) && SameRowAlternationIn(b, c, d)
}

func SameRowChainedAlternationOut(a, b, c, d Pos) bool {
	return SameRowAlternationOut(a, b, c) && SameRowAlternationOut(b, c, d)
}

func SameRowChainedAlternationMix(a, b, c, d Pos) bool {
	return (SameRowAlternationIn(a, b, c) && SameRowAlternationOut(b, c, d)) ||
		(SameRowAlternationOut(a, b, c) && SameRowAlternationIn(b, c, d))
}

func AdjacentFingerChainedAlternation(a, b, c, d Pos) bool {
	return AdjacentFingerAlternation(a, b, c) && AdjacentFingerAlternation(b, c, d)
}

func AdjacentFingerChainedAlternationIn(a, b, c, d Pos) bool {
	return AdjacentFingerAlternationIn(a, b, c) && AdjacentFingerAlternationIn(b, c, d)
}

func AdjacentFingerChainedAlternationOut(a, b, c, d Pos) bool {
	return AdjacentFingerAlternationOut(a, b, c) && AdjacentFingerAlternationOut(b, c, d)
}

func AdjacentFingerChainedAlternationMix(a, b, c, d Pos) bool {
	return (AdjacentFingerAlternationIn(a, b, c) && AdjacentFingerAlternationOut(b, c, d)) ||
		(AdjacentFingerAlternationOut(a, b, c) && AdjacentFingerAlternationIn(b, c, d))
}

func SameRowAdjacentFingerChainedAlternation(a, b, c, d Pos) bool {
	return SameRowAlternation(a, b, c) && AdjacentFingerAlternation(a, b, c) &&
		SameRowAlternation(b, c, d) && AdjacentFingerAlternation(b, c, d)
}

func SameRowAdjacentFingerChainedAlternationIn(a, b, c, d Pos) bool {
	return SameRowAlternationIn(a, b, c) && AdjacentFingerAlternationIn(a, b, c) &&
		SameRowAlternationIn(b, c, d) && AdjacentFingerAlternationIn(b, c, d)
}

func SameRowAdjacentFingerChainedAlternationOut(a, b, c, d Pos) bool {
	return SameRowAlternationOut(a, b, c) && AdjacentFingerAlternationOut(a, b, c) &&
		SameRowAlternationOut(b, c, d) && AdjacentFingerAlternationOut(b, c, d)
}

func SameRowAdjacentFingerChainedAlternationMix(a, b, c, d Pos) bool {
	first := SameRowAlternation(a, b, c) && AdjacentFingerAlternation(a, b, c)
	second := SameRowAlternation(b, c, d) && AdjacentFingerAlternation(b, c, d)
	if !first || !second {
		return false
	}
	return (SameRowAlternationIn(a, b, c) && SameRowAlternationOut(b, c, d)) ||
		(SameRowAlternationOut(a, b, c) && SameRowAlternationIn(b, c, d))
}

func OneHandQuad(a, b, c, d Pos) bool {
	if !(sameHand(a, b) && sameHand(b, c) && sameHand(c, d)) {
		return false
	}
	fa, fb, fc, fd := finger(a), finger(b), finger(c), finger(d)
	return (fa < fb && fb < fc && fc < fd) || (fa > fb && fb > fc && fc > fd)
}

func OneHandQuadIn(a, b, c, d Pos) bool {
	if !OneHandQuad(a, b, c, d) {
		return false
	}
	return directionIn(hand(a), finger(a), finger(d))
}

func OneHandQuadOut(a, b, c, d Pos) bool {
	if !OneHandQuad(a, b, c, d) {
		return false
	}
	return directionOut(hand(a), finger(a), finger(d))
}

func SameRowOneHandQuad(a, b, c, d Pos) bool {
	return OneHandQuad(a, b, c, d) && sameRowMod(a, d)
}

func SameRowOneHandQuadIn(a, b, c, d Pos) bool {
	return OneHandQuadIn(a, b, c, d) && sameRowMod(a, d)
}

func SameRowOneHandQuadOut(a, b, c, d Pos) bool {
	return OneHandQuadOut(a, b, c, d) && sameRowMod(a, d)
}

func AdjacentFingerOneHandQuad(a, b, c, d Pos) bool {
	return OneHandQuad(a, b, c, d) && adjFinger(a, d)
}

func AdjacentFingerOneHandQuadIn(a, b, c, d Pos) bool {
	return OneHandQuadIn(a, b, c, d) && adjFinger(a, d)
}

func AdjacentFingerOneHandQuadOut(a, b, c, d Pos) bool {
	return OneHandQuadOut(a, b, c, d) && adjFinger(a, d)
}

func SameRowAdjacentFingerOneHandQuad(a, b, c, d Pos) bool {
	return OneHandQuad(a, b, c, d) && sameRowMod(a, d) && adjFinger(a, d)
}

func SameRowAdjacentFingerOneHandQuadIn(a, b, c, d Pos) bool {
	return OneHandQuadIn(a, b, c, d) && sameRowMod(a, d) && adjFinger(a, d)
}

func SameRowAdjacentFingerOneHandQuadOut(a, b, c, d Pos) bool {
	return OneHandQuadOut(a, b, c, d) && sameRowMod(a, d) && adjFinger(a, d)
}

// RollQuad: onehand on (0,1,2) with a hand switch before 3, or a hand
// switch before 1 with onehand on (1,2,3).
func RollQuad(a, b, c, d Pos) bool {
	return (OneHand(a, b, c) && hand(c) != hand(d)) || (hand(a) != hand(b) && OneHand(b, c, d))
}

func RollQuadIn(a, b, c, d Pos) bool {
	return (OneHandIn(a, b, c) && hand(c) != hand(d)) || (hand(a) != hand(b) && OneHandIn(b, c, d))
}

func RollQuadOut(a, b, c, d Pos) bool {
	return (OneHandOut(a, b, c) && hand(c) != hand(d)) || (hand(a) != hand(b) && OneHandOut(b, c, d))
}

func SameRowRollQuad(a, b, c, d Pos) bool {
	if OneHand(a, b, c) && hand(c) != hand(d) {
		return SameRowOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHand(b, c, d) {
		return SameRowOneHand(b, c, d)
	}
	return false
}

func AdjacentFingerRollQuad(a, b, c, d Pos) bool {
	if OneHand(a, b, c) && hand(c) != hand(d) {
		return AdjacentFingerOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHand(b, c, d) {
		return AdjacentFingerOneHand(b, c, d)
	}
	return false
}

func SameRowAdjacentFingerRollQuad(a, b, c, d Pos) bool {
	if OneHand(a, b, c) && hand(c) != hand(d) {
		return SameRowAdjacentFingerOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHand(b, c, d) {
		return SameRowAdjacentFingerOneHand(b, c, d)
	}
	return false
}

func SameRowRollQuadIn(a, b, c, d Pos) bool {
	if OneHandIn(a, b, c) && hand(c) != hand(d) {
		return SameRowOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHandIn(b, c, d) {
		return SameRowOneHand(b, c, d)
	}
	return false
}

func SameRowRollQuadOut(a, b, c, d Pos) bool {
	if OneHandOut(a, b, c) && hand(c) != hand(d) {
		return SameRowOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHandOut(b, c, d) {
		return SameRowOneHand(b, c, d)
	}
	return false
}

func AdjacentFingerRollQuadIn(a, b, c, d Pos) bool {
	if OneHandIn(a, b, c) && hand(c) != hand(d) {
		return AdjacentFingerOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHandIn(b, c, d) {
		return AdjacentFingerOneHand(b, c, d)
	}
	return false
}

func AdjacentFingerRollQuadOut(a, b, c, d Pos) bool {
	if OneHandOut(a, b, c) && hand(c) != hand(d) {
		return AdjacentFingerOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHandOut(b, c, d) {
		return AdjacentFingerOneHand(b, c, d)
	}
	return false
}

func SameRowAdjacentFingerRollQuadIn(a, b, c, d Pos) bool {
	if OneHandIn(a, b, c) && hand(c) != hand(d) {
		return SameRowAdjacentFingerOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHandIn(b, c, d) {
		return SameRowAdjacentFingerOneHand(b, c, d)
	}
	return false
}

func SameRowAdjacentFingerRollQuadOut(a, b, c, d Pos) bool {
	if OneHandOut(a, b, c) && hand(c) != hand(d) {
		return SameRowAdjacentFingerOneHand(a, b, c)
	}
	if hand(a) != hand(b) && OneHandOut(b, c, d) {
		return SameRowAdjacentFingerOneHand(b, c, d)
	}
	return false
}

// TrueRoll reports the hand pattern switch-same-switch (LRRL/RLLR), with
// the middle pair not same-finger/same-position.
func TrueRoll(a, b, c, d Pos) bool {
	if hand(a) == hand(b) || hand(b) != hand(c) || hand(c) == hand(d) {
		return false
	}
	return !sameFinger(b, c) && !samePos(b, c)
}

func TrueRollIn(a, b, c, d Pos) bool {
	if !TrueRoll(a, b, c, d) {
		return false
	}
	return RollIn(a, b, c)
}

func TrueRollOut(a, b, c, d Pos) bool {
	if !TrueRoll(a, b, c, d) {
		return false
	}
	return RollOut(a, b, c)
}

func SameRowTrueRoll(a, b, c, d Pos) bool {
	return TrueRoll(a, b, c, d) && sameRowMod(b, c)
}

func SameRowTrueRollIn(a, b, c, d Pos) bool {
	return TrueRollIn(a, b, c, d) && sameRowMod(b, c)
}

func SameRowTrueRollOut(a, b, c, d Pos) bool {
	return TrueRollOut(a, b, c, d) && sameRowMod(b, c)
}

func AdjacentFingerTrueRoll(a, b, c, d Pos) bool {
	return TrueRoll(a, b, c, d) && adjFinger(b, c)
}

func AdjacentFingerTrueRollIn(a, b, c, d Pos) bool {
	return TrueRollIn(a, b, c, d) && adjFinger(b, c)
}

func AdjacentFingerTrueRollOut(a, b, c, d Pos) bool {
	return TrueRollOut(a, b, c, d) && adjFinger(b, c)
}

func SameRowAdjacentFingerTrueRoll(a, b, c, d Pos) bool {
	return TrueRoll(a, b, c, d) && sameRowMod(b, c) && adjFinger(b, c)
}

func SameRowAdjacentFingerTrueRollIn(a, b, c, d Pos) bool {
	return TrueRollIn(a, b, c, d) && sameRowMod(b, c) && adjFinger(b, c)
}

func SameRowAdjacentFingerTrueRollOut(a, b, c, d Pos) bool {
	return TrueRollOut(a, b, c, d) && sameRowMod(b, c) && adjFinger(b, c)
}

// ChainedRoll reports two disjoint rolls (over (0,1,2) and (1,2,3)) whose
// shared pivot pair (1,2) is not itself a same-hand pair.
func ChainedRoll(a, b, c, d Pos) bool {
	return Roll(a, b, c) && Roll(b, c, d) && hand(b) != hand(c)
}

func ChainedRollIn(a, b, c, d Pos) bool {
	return ChainedRoll(a, b, c, d) && RollIn(a, b, c) && RollIn(b, c, d)
}

func ChainedRollOut(a, b, c, d Pos) bool {
	return ChainedRoll(a, b, c, d) && RollOut(a, b, c) && RollOut(b, c, d)
}

func ChainedRollMix(a, b, c, d Pos) bool {
	if !ChainedRoll(a, b, c, d) {
		return false
	}
	return (RollIn(a, b, c) && RollOut(b, c, d)) || (RollOut(a, b, c) && RollIn(b, c, d))
}

func SameRowChainedRoll(a, b, c, d Pos) bool {
	return ChainedRoll(a, b, c, d) && sameRowMod(a, b) && sameRowMod(c, d)
}

func SameRowChainedRollIn(a, b, c, d Pos) bool {
	return ChainedRollIn(a, b, c, d) && sameRowMod(a, b) && sameRowMod(c, d)
}

func SameRowChainedRollOut(a, b, c, d Pos) bool {
	return ChainedRollOut(a, b, c, d) && sameRowMod(a, b) && sameRowMod(c, d)
}

func SameRowChainedRollMix(a, b, c, d Pos) bool {
	return ChainedRollMix(a, b, c, d) && sameRowMod(a, b) && sameRowMod(c, d)
}

func AdjacentFingerChainedRoll(a, b, c, d Pos) bool {
	return ChainedRoll(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func AdjacentFingerChainedRollIn(a, b, c, d Pos) bool {
	return ChainedRollIn(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func AdjacentFingerChainedRollOut(a, b, c, d Pos) bool {
	return ChainedRollOut(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func AdjacentFingerChainedRollMix(a, b, c, d Pos) bool {
	return ChainedRollMix(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func SameRowAdjacentFingerChainedRoll(a, b, c, d Pos) bool {
	return SameRowChainedRoll(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func SameRowAdjacentFingerChainedRollIn(a, b, c, d Pos) bool {
	return SameRowChainedRollIn(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func SameRowAdjacentFingerChainedRollOut(a, b, c, d Pos) bool {
	return SameRowChainedRollOut(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}

func SameRowAdjacentFingerChainedRollMix(a, b, c, d Pos) bool {
	return SameRowChainedRollMix(a, b, c, d) && adjFinger(a, b) && adjFinger(c, d)
}
