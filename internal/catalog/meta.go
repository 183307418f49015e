package catalog

import "fmt"

// buildMetaEntries resolves the ten meta definitions against the already
// constructed base tiers. An unresolved sub-stat name is fatal, matching
// the reference implementation's treatment of a missing name during meta
// definition.
func buildMetaEntries(c *Catalog) ([]StatEntry, error) {
	var out []StatEntry

	handBalance, err := handBalanceEntry(c)
	if err != nil {
		return nil, err
	}
	out = append(out, handBalance)

	ruSpeed, err := ruSpeedEntry(c, "RuSpeed", "Same Finger Bigram", "Bad Same Finger Bigram", "Lateral Same Finger Bigram", "Same Finger Skipgram", "Bad Same Finger Skipgram", "Lateral Same Finger Skipgram")
	if err != nil {
		return nil, err
	}
	out = append(out, ruSpeed)

	for _, finger := range fingerNames {
		hasLateral := finger == "Left Pinky" || finger == "Right Pinky" || finger == "Left Index" || finger == "Right Index"
		biSFB := fmt.Sprintf("%s Bigram", finger)
		biBad := fmt.Sprintf("Bad %s Bigram", finger)
		skSFB := fmt.Sprintf("%s Skipgram", finger)
		skBad := fmt.Sprintf("Bad %s Skipgram", finger)

		var entry StatEntry
		var err error
		if hasLateral {
			entry, err = ruSpeedEntry(c, finger+" RuSpeed", biSFB, biBad, fmt.Sprintf("Lateral %s Bigram", finger), skSFB, skBad, fmt.Sprintf("Lateral %s Skipgram", finger))
		} else {
			entry, err = ruSpeedEntry(c, finger+" RuSpeed", biSFB, biBad, "", skSFB, skBad, "")
		}
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}

	return out, nil
}

func handBalanceEntry(c *Catalog) (StatEntry, error) {
	left := c.IndexOf(Mono, "Left Hand Usage")
	right := c.IndexOf(Mono, "Right Hand Usage")
	if left < 0 || right < 0 {
		return StatEntry{}, fmt.Errorf("catalog: meta Hand Balance: unresolved sub-stat name")
	}
	c.Mono[left].Skip = false
	c.Mono[right].Skip = false
	return StatEntry{
		Kind:     Meta,
		Name:     "Hand Balance",
		Absolute: true,
		MetaTerms: []MetaTerm{
			{Tier: Mono, Index: left, Weight: 1},
			{Tier: Mono, Index: right, Weight: -1},
		},
	}, nil
}

// ruSpeedEntry builds a RuSpeed-family meta stat: a 0.25^d-weighted sum of
// the SFB/bad-SFB/lateral-SFB bigram stats (d=0) and their skip-1..8
// skipgram equivalents (d=1..8). An empty name argument (used where a
// finger has no lateral variant) is skipped for that term.
func ruSpeedEntry(c *Catalog, name, biSFB, biBad, biLateral, skSFB, skBad, skLateral string) (StatEntry, error) {
	var terms []MetaTerm
	weight := 1.0

	biNames := []string{biSFB, biBad, biLateral}
	for _, n := range biNames {
		if n == "" {
			continue
		}
		idx := c.IndexOf(Bi, n)
		if idx < 0 {
			return StatEntry{}, fmt.Errorf("catalog: meta %s: unresolved bi sub-stat %q", name, n)
		}
		c.Bi[idx].Skip = false
		terms = append(terms, MetaTerm{Tier: Bi, Index: idx, Weight: weight})
	}

	skNames := []string{skSFB, skBad, skLateral}
	var skIdx []int
	for _, n := range skNames {
		if n == "" {
			skIdx = append(skIdx, -1)
			continue
		}
		idx := c.IndexOf(Skip, n)
		if idx < 0 {
			return StatEntry{}, fmt.Errorf("catalog: meta %s: unresolved skip sub-stat %q", name, n)
		}
		c.Skip[idx].Skip = false
		skIdx = append(skIdx, idx)
	}

	for d := 1; d <= 8; d++ {
		weight *= 0.25
		for _, idx := range skIdx {
			if idx < 0 {
				continue
			}
			terms = append(terms, MetaTerm{Tier: Skip, Index: idx, Distance: d, Weight: weight})
		}
	}

	return StatEntry{Kind: Meta, Name: name, MetaTerms: terms}, nil
}
