package catalog

import (
	"github.com/rbscholtus/layoutscore/internal/classify"
)

// triFamily describes one base classifier plus its In/Out direction
// variants, used for the Alternation/OneHand/Roll cross-products.
type triFamily struct {
	name          string
	base, in, out func(a, b, c classify.Pos) bool
}

func buildTriFamilies(families []triFamily) []StatEntry {
	var out []StatEntry
	for _, f := range families {
		out = append(out, triStat(f.name, f.base))
		out = append(out, triStat(f.name+" In", f.in))
		out = append(out, triStat(f.name+" Out", f.out))
	}
	return out
}

func buildTriEntries() []StatEntry {
	var out []StatEntry

	out = append(out, triStat("Same Finger Trigram", classify.SameFingerTri))
	out = append(out, triStat("Redirect", classify.Redirect))
	out = append(out, triStat("Bad Redirect", classify.BadRedirect))

	out = append(out, buildTriFamilies([]triFamily{
		{"Alternation", classify.Alternation, classify.AlternationIn, classify.AlternationOut},
		{"Same Row Alternation", classify.SameRowAlternation, classify.SameRowAlternationIn, classify.SameRowAlternationOut},
		{"Adjacent Finger Alternation", classify.AdjacentFingerAlternation, classify.AdjacentFingerAlternationIn, classify.AdjacentFingerAlternationOut},
		{"Same Row Adjacent Finger Alternation", classify.SameRowAdjacentFingerAlternation, classify.SameRowAdjacentFingerAlternationIn, classify.SameRowAdjacentFingerAlternationOut},
	})...)

	out = append(out, buildTriFamilies([]triFamily{
		{"One Hand", classify.OneHand, classify.OneHandIn, classify.OneHandOut},
		{"Same Row One Hand", classify.SameRowOneHand, classify.SameRowOneHandIn, classify.SameRowOneHandOut},
		{"Adjacent Finger One Hand", classify.AdjacentFingerOneHand, classify.AdjacentFingerOneHandIn, classify.AdjacentFingerOneHandOut},
		{"Same Row Adjacent Finger One Hand", classify.SameRowAdjacentFingerOneHand, classify.SameRowAdjacentFingerOneHandIn, classify.SameRowAdjacentFingerOneHandOut},
	})...)

	out = append(out, buildTriFamilies([]triFamily{
		{"Roll", classify.Roll, classify.RollIn, classify.RollOut},
		{"Same Row Roll", classify.SameRowRoll, sameRowRollIn, sameRowRollOut},
		{"Adjacent Finger Roll", classify.AdjacentFingerRoll, adjacentFingerRollIn, adjacentFingerRollOut},
		{"Same Row Adjacent Finger Roll", classify.SameRowAdjacentFingerRoll, classify.SameRowAdjacentFingerRollIn, classify.SameRowAdjacentFingerRollOut},
	})...)

	return out
}

// sameRowRollIn/Out and adjacentFingerRollIn/Out weren't exported by
// classify as standalone names (the family's Same Row / Adjacent Finger
// qualifier composes with RollIn/RollOut rather than needing its own
// predicate), so they're assembled here from the exported pieces.
func sameRowRollIn(a, b, c classify.Pos) bool {
	return classify.RollIn(a, b, c) && classify.SameRowRoll(a, b, c)
}

func sameRowRollOut(a, b, c classify.Pos) bool {
	return classify.RollOut(a, b, c) && classify.SameRowRoll(a, b, c)
}

func adjacentFingerRollIn(a, b, c classify.Pos) bool {
	return classify.RollIn(a, b, c) && classify.AdjacentFingerRoll(a, b, c)
}

func adjacentFingerRollOut(a, b, c classify.Pos) bool {
	return classify.RollOut(a, b, c) && classify.AdjacentFingerRoll(a, b, c)
}
