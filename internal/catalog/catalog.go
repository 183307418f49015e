// Package catalog builds the statically declared taxonomy of classifier
// statistics the scoring engine evaluates against a layout: per-tier
// entries, each holding a compacted list of flat n-gram indices that match
// its classifier, plus the meta-statistics composed from them.
//
// The catalog is built once at startup from pure geometry (package
// geometry/classify); it does not depend on the alphabet size or the
// corpus, and is immutable once Build returns.
package catalog

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Kind tags which tier a StatEntry belongs to.
type Kind int

const (
	Mono Kind = iota
	Bi
	Tri
	Quad
	Skip
	Meta
)

func (k Kind) String() string {
	switch k {
	case Mono:
		return "mono"
	case Bi:
		return "bi"
	case Tri:
		return "tri"
	case Quad:
		return "quad"
	case Skip:
		return "skip"
	case Meta:
		return "meta"
	default:
		return "unknown"
	}
}

// MaxSkipDistance mirrors corpus.MaxSkip; duplicated here (rather than
// imported) to keep this package independent of the corpus package, which
// in turn depends on geometry and langdef.
const MaxSkipDistance = 9

// MetaTerm is one (tier, stat-index, weight) term of a meta definition.
// Distance is only meaningful when Tier is Skip, selecting which of the
// nine skip-distance result values to multiply.
type MetaTerm struct {
	Tier     Kind
	Index    int
	Distance int
	Weight   float64
}

// StatEntry is one catalog entry. Fields not relevant to Kind are zero.
type StatEntry struct {
	Kind Kind
	Name string
	Skip bool

	// Weight applies to Mono/Bi/Tri/Quad/Meta entries.
	Weight float64
	// SkipWeight applies to Skip entries; index 0 is unused, 1..9 hold the
	// per-distance weight.
	SkipWeight [MaxSkipDistance + 1]float64

	// Indices is the compacted list of flat n-gram indices (grid-position
	// space, independent of alphabet) that satisfy this entry's
	// classifier. For Meta entries it is nil.
	Indices []int32

	// MetaTerms and Absolute apply to Meta entries only.
	MetaTerms []MetaTerm
	Absolute  bool
}

// Catalog holds every entry, grouped by tier, in construction order. Order
// within a tier is the declaration order of buildXxxEntries; it has no
// semantic meaning beyond giving each entry a stable index.
type Catalog struct {
	Mono []StatEntry
	Bi   []StatEntry
	Tri  []StatEntry
	Quad []StatEntry
	Skip []StatEntry
	Meta []StatEntry
}

// Tier returns the entries for a given Kind, including c.Meta for Meta.
func (c *Catalog) Tier(k Kind) []StatEntry {
	switch k {
	case Mono:
		return c.Mono
	case Bi:
		return c.Bi
	case Tri:
		return c.Tri
	case Quad:
		return c.Quad
	case Skip:
		return c.Skip
	case Meta:
		return c.Meta
	default:
		return nil
	}
}

// IndexOf returns the position of the entry named name within tier k, or
// -1 if absent.
func (c *Catalog) IndexOf(k Kind, name string) int {
	for i, e := range c.Tier(k) {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Build constructs the full catalog: the five base tiers are independent of
// one another, so they're built concurrently via errgroup, each writing
// only its own slice of c; meta entries are then resolved against the
// completed base tiers, which must happen strictly after the group joins.
func Build() (*Catalog, error) {
	c := &Catalog{}

	var g errgroup.Group
	g.Go(func() error { c.Mono = buildMonoEntries(); return nil })
	g.Go(func() error { c.Bi = buildBiEntries(); return nil })
	g.Go(func() error { c.Tri = buildTriEntries(); return nil })
	g.Go(func() error { c.Quad = buildQuadEntries(); return nil })
	g.Go(func() error { c.Skip = buildSkipEntries(); return nil })
	_ = g.Wait() // no builder returns an error; kept for the errgroup idiom

	if err := checkLengths(c); err != nil {
		return nil, err
	}
	meta, err := buildMetaEntries(c)
	if err != nil {
		return nil, err
	}
	c.Meta = meta
	return c, nil
}

func checkLengths(c *Catalog) error {
	want := map[Kind]int{Mono: 53, Bi: 27, Tri: 39, Quad: 71, Skip: 23}
	got := map[Kind][]StatEntry{Mono: c.Mono, Bi: c.Bi, Tri: c.Tri, Quad: c.Quad, Skip: c.Skip}
	for k, n := range want {
		if len(got[k]) != n {
			return &LengthMismatchError{Tier: k, Want: n, Got: len(got[k])}
		}
	}
	return nil
}

// LengthMismatchError is a fatal setup-time integrity error: the
// declared entry count for a tier does not match what was constructed.
type LengthMismatchError struct {
	Tier Kind
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("catalog: %s tier has %d entries, want %d", e.Tier, e.Got, e.Want)
}
