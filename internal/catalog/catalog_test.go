package catalog

import "testing"

func TestBuildEntryCounts(t *testing.T) {
	c, err := Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := map[string]int{"mono": 53, "bi": 27, "tri": 39, "quad": 71, "skip": 23, "meta": 10}
	got := map[string]int{
		"mono": len(c.Mono), "bi": len(c.Bi), "tri": len(c.Tri),
		"quad": len(c.Quad), "skip": len(c.Skip), "meta": len(c.Meta),
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("%s tier has %d entries, want %d", k, got[k], n)
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	c, err := Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	check := func(tier string, entries []StatEntry, max int64) {
		for _, e := range entries {
			seen := make(map[int32]bool, len(e.Indices))
			for _, idx := range e.Indices {
				if int64(idx) < 0 || int64(idx) >= max {
					t.Errorf("%s %q: index %d out of range [0,%d)", tier, e.Name, idx, max)
				}
				if seen[idx] {
					t.Errorf("%s %q: duplicate index %d", tier, e.Name, idx)
				}
				seen[idx] = true
			}
		}
	}
	check("mono", c.Mono, 36)
	check("bi", c.Bi, 36*36)
	check("tri", c.Tri, 36*36*36)
	check("quad", c.Quad, 36*36*36*36)
	check("skip", c.Skip, 36*36)
}

func TestMetaTermsResolve(t *testing.T) {
	c, err := Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for _, e := range c.Meta {
		if len(e.MetaTerms) == 0 {
			t.Errorf("meta %q has no terms", e.Name)
		}
		for _, term := range e.MetaTerms {
			var n int
			switch term.Tier {
			case Mono:
				n = len(c.Mono)
			case Bi:
				n = len(c.Bi)
			case Tri:
				n = len(c.Tri)
			case Quad:
				n = len(c.Quad)
			case Skip:
				n = len(c.Skip)
				if term.Distance < 1 || term.Distance > 9 {
					t.Errorf("meta %q: skip term has invalid distance %d", e.Name, term.Distance)
				}
			default:
				t.Errorf("meta %q: term has invalid tier %v", e.Name, term.Tier)
				continue
			}
			if term.Index < 0 || term.Index >= n {
				t.Errorf("meta %q: term index %d out of range for tier %v (len %d)", e.Name, term.Index, term.Tier, n)
			}
		}
	}
}

func TestHandBalanceResolvesToSymmetricUsage(t *testing.T) {
	c, err := Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	idx := c.IndexOf(Meta, "Hand Balance")
	if idx < 0 {
		t.Fatal("catalog missing Hand Balance meta stat")
	}
	hb := c.Meta[idx]
	if !hb.Absolute {
		t.Error("Hand Balance should be marked Absolute")
	}
	if len(hb.MetaTerms) != 2 {
		t.Fatalf("Hand Balance should have exactly 2 terms, got %d", len(hb.MetaTerms))
	}
}
