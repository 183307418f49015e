package catalog

import "github.com/rbscholtus/layoutscore/internal/classify"

type quadPred func(a, b, c, d classify.Pos) bool

type quad3Family struct {
	name          string
	base, in, out quadPred
}

type quad4Family struct {
	name               string
	base, in, out, mix quadPred
}

func buildQuad3Families(families []quad3Family) []StatEntry {
	var out []StatEntry
	for _, f := range families {
		out = append(out, quadStat(f.name, f.base))
		out = append(out, quadStat(f.name+" In", f.in))
		out = append(out, quadStat(f.name+" Out", f.out))
	}
	return out
}

func buildQuad4Families(families []quad4Family) []StatEntry {
	var out []StatEntry
	for _, f := range families {
		out = append(out, quadStat(f.name, f.base))
		out = append(out, quadStat(f.name+" In", f.in))
		out = append(out, quadStat(f.name+" Out", f.out))
		out = append(out, quadStat(f.name+" Mix", f.mix))
	}
	return out
}

func buildQuadEntries() []StatEntry {
	var out []StatEntry

	out = append(out, quadStat("Same Finger Quadgram", classify.SameFingerQuad))
	out = append(out, quadStat("Chained Redirect", classify.ChainedRedirect))
	out = append(out, quadStat("Bad Chained Redirect", classify.BadChainedRedirect))

	out = append(out, buildQuad4Families([]quad4Family{
		{"Chained Alternation", classify.ChainedAlternation, classify.ChainedAlternationIn, classify.ChainedAlternationOut, classify.ChainedAlternationMix},
		{"Same Row Chained Alternation", classify.SameRowChainedAlternation, classify.SameRowChainedAlternationIn, classify.SameRowChainedAlternationOut, classify.SameRowChainedAlternationMix},
		{"Adjacent Finger Chained Alternation", classify.AdjacentFingerChainedAlternation, classify.AdjacentFingerChainedAlternationIn, classify.AdjacentFingerChainedAlternationOut, classify.AdjacentFingerChainedAlternationMix},
		{"Same Row Adjacent Finger Chained Alternation", classify.SameRowAdjacentFingerChainedAlternation, classify.SameRowAdjacentFingerChainedAlternationIn, classify.SameRowAdjacentFingerChainedAlternationOut, classify.SameRowAdjacentFingerChainedAlternationMix},
	})...)

	out = append(out, buildQuad3Families([]quad3Family{
		{"Quad One Hand", classify.OneHandQuad, classify.OneHandQuadIn, classify.OneHandQuadOut},
		{"Quad Same Row One Hand", classify.SameRowOneHandQuad, classify.SameRowOneHandQuadIn, classify.SameRowOneHandQuadOut},
		{"Quad Adjacent Finger One Hand", classify.AdjacentFingerOneHandQuad, classify.AdjacentFingerOneHandQuadIn, classify.AdjacentFingerOneHandQuadOut},
		{"Quad Same Row Adjacent Finger One Hand", classify.SameRowAdjacentFingerOneHandQuad, classify.SameRowAdjacentFingerOneHandQuadIn, classify.SameRowAdjacentFingerOneHandQuadOut},
	})...)

	out = append(out, buildQuad3Families([]quad3Family{
		{"Quad Roll", classify.RollQuad, classify.RollQuadIn, classify.RollQuadOut},
		{"Quad Same Row Roll", classify.SameRowRollQuad, classify.SameRowRollQuadIn, classify.SameRowRollQuadOut},
		{"Quad Adjacent Finger Roll", classify.AdjacentFingerRollQuad, classify.AdjacentFingerRollQuadIn, classify.AdjacentFingerRollQuadOut},
		{"Quad Same Row Adjacent Finger Roll", classify.SameRowAdjacentFingerRollQuad, classify.SameRowAdjacentFingerRollQuadIn, classify.SameRowAdjacentFingerRollQuadOut},
	})...)

	out = append(out, buildQuad3Families([]quad3Family{
		{"True Roll", classify.TrueRoll, classify.TrueRollIn, classify.TrueRollOut},
		{"Same Row True Roll", classify.SameRowTrueRoll, classify.SameRowTrueRollIn, classify.SameRowTrueRollOut},
		{"Adjacent Finger True Roll", classify.AdjacentFingerTrueRoll, classify.AdjacentFingerTrueRollIn, classify.AdjacentFingerTrueRollOut},
		{"Same Row Adjacent Finger True Roll", classify.SameRowAdjacentFingerTrueRoll, classify.SameRowAdjacentFingerTrueRollIn, classify.SameRowAdjacentFingerTrueRollOut},
	})...)

	out = append(out, buildQuad4Families([]quad4Family{
		{"Chained Roll", classify.ChainedRoll, classify.ChainedRollIn, classify.ChainedRollOut, classify.ChainedRollMix},
		{"Same Row Chained Roll", classify.SameRowChainedRoll, classify.SameRowChainedRollIn, classify.SameRowChainedRollOut, classify.SameRowChainedRollMix},
		{"Adjacent Finger Chained Roll", classify.AdjacentFingerChainedRoll, classify.AdjacentFingerChainedRollIn, classify.AdjacentFingerChainedRollOut, classify.AdjacentFingerChainedRollMix},
		{"Same Row Adjacent Finger Chained Roll", classify.SameRowAdjacentFingerChainedRoll, classify.SameRowAdjacentFingerChainedRollIn, classify.SameRowAdjacentFingerChainedRollOut, classify.SameRowAdjacentFingerChainedRollMix},
	})...)

	return out
}
