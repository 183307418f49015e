// Package corpus builds and maintains the raw and normalized n-gram
// frequency tables the scoring engine reads from. It ingests UTF-8 text
// through a language table, maintains a small ring buffer of recent
// character ids, and can round-trip its raw counts through a flat cache
// file so repeated runs over the same corpus skip re-tokenizing text.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rbscholtus/layoutscore/internal/geometry"
	"github.com/rbscholtus/layoutscore/internal/langdef"
)

// MaxSkip is the largest skip distance tracked (skip-1..skip-9).
const MaxSkip = 9

// Tables holds the raw counts and normalized frequencies for one corpus
// over one language alphabet. Index 0 of CountSkip/FreqSkip is unused; distances
// 1..9 are populated.
type Tables struct {
	L int

	CountMono []uint64
	CountBi   []uint64
	CountTri  []uint64
	CountQuad []uint64
	CountSkip [MaxSkip + 1][]uint64

	FreqMono []float32
	FreqBi   []float32
	FreqTri  []float32
	FreqQuad []float32
	FreqSkip [MaxSkip + 1][]float32
}

// New allocates empty tables sized for an alphabet of l characters.
func New(l int) *Tables {
	t := &Tables{
		L:         l,
		CountMono: make([]uint64, l),
		CountBi:   make([]uint64, l*l),
		CountTri:  make([]uint64, l*l*l),
		CountQuad: make([]uint64, l*l*l*l),
	}
	for s := 1; s <= MaxSkip; s++ {
		t.CountSkip[s] = make([]uint64, l*l)
	}
	return t
}

// ringSize mirrors the reference implementation's 11-slot lookback window:
// the current character plus up to 10 prior ones, enough to cover a
// quadgram (4) and the longest skip distance (9, counted from two slots
// back).
const ringSize = 11

// IngestReader tokenizes r through lang and accumulates counts into t. It
// never closes r.
func (t *Tables) IngestReader(r io.Reader, lang *langdef.Table) error {
	var mem [ringSize]int32
	for i := range mem {
		mem[i] = -1
	}

	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("corpus: ingest: %w", err)
		}

		copy(mem[1:], mem[:ringSize-1])
		mem[0] = lang.Convert(ch)

		t.observe(mem[:])
	}
	return nil
}

// observe applies one ring-buffer state to the count tables, following the
// reference ingest order exactly: mono, then bi/tri/quad built from the
// oldest-to-newest slots (natural left-to-right reading order), then the
// nine skip-distance bigrams.
func (t *Tables) observe(mem []int32) {
	valid := func(id int32) bool { return id > 0 }

	if !valid(mem[0]) {
		return
	}
	t.CountMono[mem[0]]++

	if valid(mem[1]) {
		t.CountBi[geometry.IndexBi(t.L, int(mem[1]), int(mem[0]))]++
	}
	if valid(mem[1]) && valid(mem[2]) {
		t.CountTri[geometry.IndexTri(t.L, int(mem[2]), int(mem[1]), int(mem[0]))]++
	}
	if valid(mem[1]) && valid(mem[2]) && valid(mem[3]) {
		t.CountQuad[geometry.IndexQuad(t.L, int(mem[3]), int(mem[2]), int(mem[1]), int(mem[0]))]++
	}

	for d := 1; d <= MaxSkip; d++ {
		slot := d + 1
		if slot >= len(mem) {
			break
		}
		if valid(mem[slot]) {
			t.CountSkip[d][geometry.IndexBi(t.L, int(mem[slot]), int(mem[0]))]++
		}
	}
}

// Normalize computes FreqMono/Bi/Tri/Quad/Skip from the raw counts. Each
// tier's total is computed independently; a zero total leaves every entry
// in that tier at zero.
func (t *Tables) Normalize() {
	t.FreqMono = normalize(t.CountMono)
	t.FreqBi = normalize(t.CountBi)
	t.FreqTri = normalize(t.CountTri)
	t.FreqQuad = normalize(t.CountQuad)
	for d := 1; d <= MaxSkip; d++ {
		t.FreqSkip[d] = normalize(t.CountSkip[d])
	}
}

func normalize(counts []uint64) []float32 {
	var total uint64
	for _, c := range counts {
		total += c
	}
	out := make([]float32, len(counts))
	if total == 0 {
		return out
	}
	for i, c := range counts {
		out[i] = float32(c) * 100 / float32(total)
	}
	return out
}

// LoadOrBuild returns corpus tables for (lang, corpus path), preferring a
// fresh cache file over re-tokenizing the raw text. cachePath is written
// after a fresh ingest so the next run can skip straight to ReadCache.
func LoadOrBuild(lang *langdef.Table, textPath, cachePath string) (*Tables, error) {
	if fresh, err := cacheIsFresh(cachePath, textPath); err == nil && fresh {
		t := New(lang.Size())
		if err := t.ReadCache(cachePath); err == nil {
			t.Normalize()
			return t, nil
		}
	}

	f, err := os.Open(textPath)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", textPath, err)
	}
	defer f.Close()

	t := New(lang.Size())
	if err := t.IngestReader(f, lang); err != nil {
		return nil, err
	}
	if err := t.WriteCache(cachePath); err != nil {
		return nil, fmt.Errorf("corpus: write cache %s: %w", cachePath, err)
	}
	t.Normalize()
	return t, nil
}

func cacheIsFresh(cachePath, textPath string) (bool, error) {
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false, err
	}
	textInfo, err := os.Stat(textPath)
	if err != nil {
		return false, err
	}
	return !cacheInfo.ModTime().Before(textInfo.ModTime()), nil
}
