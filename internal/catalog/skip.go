package catalog

import (
	"fmt"

	"github.com/rbscholtus/layoutscore/internal/classify"
	"github.com/rbscholtus/layoutscore/internal/geometry"
)

func buildSkipEntries() []StatEntry {
	var out []StatEntry

	out = append(out, skipStat("Same Finger Skipgram", classify.SameFingerBi))
	for f := 0; f < 8; f++ {
		finger := f
		out = append(out, skipStat(fmt.Sprintf("%s Skipgram", fingerNames[f]), func(a, b classify.Pos) bool {
			return classify.SameFingerBi(a, b) && geometry.FingerOf(a.Col) == finger
		}))
	}

	out = append(out, skipStat("Bad Same Finger Skipgram", classify.BadSameFingerBi))
	for f := 0; f < 8; f++ {
		finger := f
		out = append(out, skipStat(fmt.Sprintf("Bad %s Skipgram", fingerNames[f]), func(a, b classify.Pos) bool {
			return classify.BadSameFingerBi(a, b) && geometry.FingerOf(a.Col) == finger
		}))
	}

	out = append(out, skipStat("Lateral Same Finger Skipgram", classify.LateralSameFingerBi))
	for _, f := range lateralFingers {
		finger := f
		out = append(out, skipStat(fmt.Sprintf("Lateral %s Skipgram", fingerNames[f]), func(a, b classify.Pos) bool {
			return classify.LateralSameFingerBi(a, b) && geometry.FingerOf(a.Col) == finger
		}))
	}

	return out
}
