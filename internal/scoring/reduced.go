package scoring

import (
	"github.com/rbscholtus/layoutscore/internal/catalog"
	"github.com/rbscholtus/layoutscore/internal/corpus"
)

// ReducedWeights selects the five stats the HTTP per-request path scores
// instead of the full catalog: one bigram stat, one skip-1 stat, one more
// bigram stat, and two trigram stats. Each weight multiplies its stat
// literally, including an explicit zero to exclude that term.
type ReducedWeights struct {
	SameFingerBigram   float64 // "Same Finger Bigram" (bi)
	SameFingerSkip1    float64 // "Same Finger Skipgram" (skip distance 1)
	IndexStretchBigram float64 // "Index Stretch Bigram" (bi)
	Alternation        float64 // "Alternation" (tri)
	Roll               float64 // "Roll" (tri)
}

// ReducedResult holds the five stat values and the weighted reduced score.
type ReducedResult struct {
	SameFingerBigram   float64
	SameFingerSkip1    float64
	IndexStretchBigram float64
	Alternation        float64
	Roll               float64
	Score              float64
}

// ScoreReduced evaluates only the five stats a per-request HTTP caller can
// reweight, without building per-tier result slices for the whole catalog.
// A catalog missing one of the five named stats yields 0 for it rather than
// failing the request.
func ScoreReduced(cat *catalog.Catalog, tables *corpus.Tables, layout *Layout, w ReducedWeights) (ReducedResult, error) {
	bi := func(name string) float64 {
		i := cat.IndexOf(catalog.Bi, name)
		if i < 0 {
			return 0
		}
		return sumBi(cat.Bi[i].Indices, layout, tables, tables.FreqBi)
	}
	skip1 := func(name string) float64 {
		i := cat.IndexOf(catalog.Skip, name)
		if i < 0 {
			return 0
		}
		return sumBi(cat.Skip[i].Indices, layout, tables, tables.FreqSkip[1])
	}
	tri := func(name string) float64 {
		i := cat.IndexOf(catalog.Tri, name)
		if i < 0 {
			return 0
		}
		return sumTri(cat.Tri[i].Indices, layout, tables)
	}

	res := ReducedResult{
		SameFingerBigram:   bi("Same Finger Bigram"),
		SameFingerSkip1:    skip1("Same Finger Skipgram"),
		IndexStretchBigram: bi("Index Stretch Bigram"),
		Alternation:        tri("Alternation"),
		Roll:               tri("Roll"),
	}

	res.Score = w.SameFingerBigram*res.SameFingerBigram +
		w.SameFingerSkip1*res.SameFingerSkip1 +
		w.IndexStretchBigram*res.IndexStretchBigram +
		w.Alternation*res.Alternation +
		w.Roll*res.Roll

	return res, nil
}
