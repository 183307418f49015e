package scoring

import (
	"github.com/rbscholtus/layoutscore/internal/catalog"
	"github.com/rbscholtus/layoutscore/internal/corpus"
	"github.com/rbscholtus/layoutscore/internal/geometry"
)

// Result holds the per-stat values computed for one layout, plus the final
// weighted score. Skip holds a 10-wide array per entry (index 0 unused,
// 1..9 populated), mirroring the catalog's per-distance skip weights.
type Result struct {
	Mono []float64
	Bi   []float64
	Tri  []float64
	Quad []float64
	Skip [][corpus.MaxSkip + 1]float64
	Meta []float64
	Score float64
}

// Score evaluates every non-skipped catalog entry against layout and
// tables, then composes the weighted total. It is pure: identical inputs
// always yield identical outputs, and it never mutates catalog or tables.
func Score(cat *catalog.Catalog, tables *corpus.Tables, layout *Layout) Result {
	res := Result{
		Mono: make([]float64, len(cat.Mono)),
		Bi:   make([]float64, len(cat.Bi)),
		Tri:  make([]float64, len(cat.Tri)),
		Quad: make([]float64, len(cat.Quad)),
		Skip: make([][corpus.MaxSkip + 1]float64, len(cat.Skip)),
		Meta: make([]float64, len(cat.Meta)),
	}

	for i, e := range cat.Mono {
		if e.Skip {
			continue
		}
		res.Mono[i] = sumMono(e.Indices, layout, tables)
	}
	for i, e := range cat.Bi {
		if e.Skip {
			continue
		}
		res.Bi[i] = sumBi(e.Indices, layout, tables, tables.FreqBi)
	}
	for i, e := range cat.Tri {
		if e.Skip {
			continue
		}
		res.Tri[i] = sumTri(e.Indices, layout, tables)
	}
	for i, e := range cat.Quad {
		if e.Skip {
			continue
		}
		res.Quad[i] = sumQuad(e.Indices, layout, tables)
	}
	for i, e := range cat.Skip {
		if e.Skip {
			continue
		}
		for d := 1; d <= corpus.MaxSkip; d++ {
			res.Skip[i][d] = sumBi(e.Indices, layout, tables, tables.FreqSkip[d])
		}
	}

	evalMeta(cat, &res)

	res.Score = composeScore(cat, &res)
	return res
}

func sumMono(indices []int32, layout *Layout, tables *corpus.Tables) float64 {
	var sum float64
	for _, flat := range indices {
		id := layout.At(int(flat))
		if id < 0 || int(id) >= tables.L {
			continue
		}
		sum += float64(tables.FreqMono[id])
	}
	return sum
}

func sumBi(indices []int32, layout *Layout, tables *corpus.Tables, freq []float32) float64 {
	var sum float64
	for _, flat := range indices {
		p0, p1 := geometry.UnflatBi(int64(flat))
		id0, id1 := layout.At(p0), layout.At(p1)
		if id0 < 0 || id1 < 0 {
			continue
		}
		sum += float64(freq[geometry.IndexBi(tables.L, int(id0), int(id1))])
	}
	return sum
}

func sumTri(indices []int32, layout *Layout, tables *corpus.Tables) float64 {
	var sum float64
	for _, flat := range indices {
		p0, p1, p2 := geometry.UnflatTri(int64(flat))
		id0, id1, id2 := layout.At(p0), layout.At(p1), layout.At(p2)
		if id0 < 0 || id1 < 0 || id2 < 0 {
			continue
		}
		sum += float64(tables.FreqTri[geometry.IndexTri(tables.L, int(id0), int(id1), int(id2))])
	}
	return sum
}

func sumQuad(indices []int32, layout *Layout, tables *corpus.Tables) float64 {
	var sum float64
	for _, flat := range indices {
		p0, p1, p2, p3 := geometry.UnflatQuad(int64(flat))
		id0, id1, id2, id3 := layout.At(p0), layout.At(p1), layout.At(p2), layout.At(p3)
		if id0 < 0 || id1 < 0 || id2 < 0 || id3 < 0 {
			continue
		}
		sum += float64(tables.FreqQuad[geometry.IndexQuad(tables.L, int(id0), int(id1), int(id2), int(id3))])
	}
	return sum
}

// evalMeta evaluates meta entries in declaration order, which is a valid
// topological order because meta terms only ever reference mono/bi/tri/
// quad/skip tiers, all computed earlier in Score.
func evalMeta(cat *catalog.Catalog, res *Result) {
	for i, e := range cat.Meta {
		var acc float64
		for _, term := range e.MetaTerms {
			acc += term.Weight * perStatValue(res, term)
		}
		if e.Absolute && acc < 0 {
			acc = -acc
		}
		res.Meta[i] = acc
	}
}

func perStatValue(res *Result, term catalog.MetaTerm) float64 {
	switch term.Tier {
	case catalog.Mono:
		return res.Mono[term.Index]
	case catalog.Bi:
		return res.Bi[term.Index]
	case catalog.Tri:
		return res.Tri[term.Index]
	case catalog.Quad:
		return res.Quad[term.Index]
	case catalog.Skip:
		return res.Skip[term.Index][term.Distance]
	default:
		return 0
	}
}

// composeScore sums weight*result over every non-skipped entry across all
// tiers, including the per-distance skip weights and the meta tier.
func composeScore(cat *catalog.Catalog, res *Result) float64 {
	var total float64
	for i, e := range cat.Mono {
		if !e.Skip {
			total += e.Weight * res.Mono[i]
		}
	}
	for i, e := range cat.Bi {
		if !e.Skip {
			total += e.Weight * res.Bi[i]
		}
	}
	for i, e := range cat.Tri {
		if !e.Skip {
			total += e.Weight * res.Tri[i]
		}
	}
	for i, e := range cat.Quad {
		if !e.Skip {
			total += e.Weight * res.Quad[i]
		}
	}
	for i, e := range cat.Skip {
		if e.Skip {
			continue
		}
		for d := 1; d <= corpus.MaxSkip; d++ {
			total += e.SkipWeight[d] * res.Skip[i][d]
		}
	}
	for i, e := range cat.Meta {
		total += e.Weight * res.Meta[i]
	}
	return total
}
