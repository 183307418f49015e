package catalog

import (
	"fmt"

	"github.com/rbscholtus/layoutscore/internal/classify"
	"github.com/rbscholtus/layoutscore/internal/geometry"
)

func buildBiEntries() []StatEntry {
	var out []StatEntry

	out = append(out, biStat("Same Finger Bigram", classify.SameFingerBi))

	for f := 0; f < 8; f++ {
		finger := f
		out = append(out, biStat(fmt.Sprintf("%s Bigram", fingerNames[f]), func(a, b classify.Pos) bool {
			return classify.SameFingerBi(a, b) && geometry.FingerOf(a.Col) == finger
		}))
	}

	out = append(out, biStat("Bad Same Finger Bigram", classify.BadSameFingerBi))
	for f := 0; f < 8; f++ {
		finger := f
		out = append(out, biStat(fmt.Sprintf("Bad %s Bigram", fingerNames[f]), func(a, b classify.Pos) bool {
			return classify.BadSameFingerBi(a, b) && geometry.FingerOf(a.Col) == finger
		}))
	}

	out = append(out, biStat("Lateral Same Finger Bigram", classify.LateralSameFingerBi))
	for _, f := range lateralFingers {
		finger := f
		out = append(out, biStat(fmt.Sprintf("Lateral %s Bigram", fingerNames[f]), func(a, b classify.Pos) bool {
			return classify.LateralSameFingerBi(a, b) && geometry.FingerOf(a.Col) == finger
		}))
	}

	out = append(out, biStat("Full Russor Bigram", classify.FullRussorBi))
	out = append(out, biStat("Half Russor Bigram", classify.HalfRussorBi))
	out = append(out, biStat("Index Stretch Bigram", classify.IndexStretchBi))
	out = append(out, biStat("Pinky Stretch Bigram", classify.PinkyStretchBi))

	return out
}
