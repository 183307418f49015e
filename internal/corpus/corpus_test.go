package corpus

import (
	"strings"
	"testing"

	"github.com/rbscholtus/layoutscore/internal/geometry"
	"github.com/rbscholtus/layoutscore/internal/langdef"
)

func testLang(t *testing.T) *langdef.Table {
	t.Helper()
	line := make([]rune, 100)
	for i := range line {
		line[i] = '@'
	}
	line[0], line[1] = ' ', ' '
	pairs := []rune{'a', 'A', 'b', 'B'}
	copy(line[2:2+len(pairs)], pairs)
	lang, err := langdef.Parse(line)
	if err != nil {
		t.Fatalf("langdef.Parse: %v", err)
	}
	return lang
}

func TestIngestCountsBigrams(t *testing.T) {
	lang := testLang(t)
	tbl := New(lang.Size())
	if err := tbl.IngestReader(strings.NewReader("ababab"), lang); err != nil {
		t.Fatalf("IngestReader: %v", err)
	}

	idA, idB := lang.Convert('a'), lang.Convert('b')
	if c := tbl.CountBi[geometry.IndexBi(tbl.L, int(idA), int(idB))]; c != 3 {
		t.Errorf("count of 'ab' bigram = %d, want 3", c)
	}
	if c := tbl.CountBi[geometry.IndexBi(tbl.L, int(idB), int(idA))]; c != 2 {
		t.Errorf("count of 'ba' bigram = %d, want 2", c)
	}
}

func TestNormalizeSumsToHundredOrZero(t *testing.T) {
	lang := testLang(t)
	tbl := New(lang.Size())
	if err := tbl.IngestReader(strings.NewReader("aabb"), lang); err != nil {
		t.Fatalf("IngestReader: %v", err)
	}
	tbl.Normalize()

	var total float32
	for _, f := range tbl.FreqMono {
		total += f
	}
	if total < 99.9 || total > 100.1 {
		t.Errorf("FreqMono sums to %v, want ~100", total)
	}

	empty := New(lang.Size())
	empty.Normalize()
	for i, f := range empty.FreqMono {
		if f != 0 {
			t.Errorf("FreqMono[%d] = %v on empty corpus, want 0", i, f)
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	lang := testLang(t)
	tbl := New(lang.Size())
	if err := tbl.IngestReader(strings.NewReader("abababba"), lang); err != nil {
		t.Fatalf("IngestReader: %v", err)
	}

	path := t.TempDir() + "/cache.txt"
	if err := tbl.WriteCache(path); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}

	loaded := New(lang.Size())
	if err := loaded.ReadCache(path); err != nil {
		t.Fatalf("ReadCache: %v", err)
	}

	for i := range tbl.CountBi {
		if tbl.CountBi[i] != loaded.CountBi[i] {
			t.Fatalf("CountBi[%d] = %d after round trip, want %d", i, loaded.CountBi[i], tbl.CountBi[i])
		}
	}
	for i := range tbl.CountMono {
		if tbl.CountMono[i] != loaded.CountMono[i] {
			t.Fatalf("CountMono[%d] = %d after round trip, want %d", i, loaded.CountMono[i], tbl.CountMono[i])
		}
	}
}
