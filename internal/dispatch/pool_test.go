package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/rbscholtus/layoutscore/internal/catalog"
	"github.com/rbscholtus/layoutscore/internal/corpus"
	"github.com/rbscholtus/layoutscore/internal/langdef"
)

func testLang(t *testing.T) *langdef.Table {
	t.Helper()
	line := make([]rune, 100)
	for i := range line {
		line[i] = '@'
	}
	line[0], line[1] = ' ', ' '
	pairs := []rune{'a', 'A', 'b', 'B', 'c', 'C', 'd', 'D'}
	copy(line[2:2+len(pairs)], pairs)
	lang, err := langdef.Parse(line)
	if err != nil {
		t.Fatalf("langdef.Parse: %v", err)
	}
	return lang
}

func testPool(t *testing.T) *Pool {
	t.Helper()
	lang := testLang(t)
	tables := corpus.New(lang.Size())
	if err := tables.IngestReader(strings.NewReader(strings.Repeat("abcd", 50)), lang); err != nil {
		t.Fatalf("IngestReader: %v", err)
	}
	tables.Normalize()
	cat, err := catalog.Build()
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	return NewPool(cat, tables, lang, 4)
}

func TestScoreBatchPreservesOrder(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	valid := strings.Repeat("abcd", 7) + "ab"
	items := make([]BatchItem, 8)
	for i := range items {
		items[i] = BatchItem{Name: string(rune('A' + i)), Layout: valid}
	}

	results := pool.ScoreBatch(context.Background(), items)
	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Name != items[i].Name {
			t.Errorf("result[%d].Name = %q, want %q (order not preserved)", i, r.Name, items[i].Name)
		}
		if r.Error != "" {
			t.Errorf("result[%d] unexpected error: %s", i, r.Error)
		}
	}
}

func TestScoreBatchIsolatesPerItemFailure(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	valid := strings.Repeat("abcd", 7) + "ab"
	items := []BatchItem{
		{Name: "good-1", Layout: valid},
		{Name: "malformed", Layout: "too-short"},
		{Name: "good-2", Layout: valid},
	}

	results := pool.ScoreBatch(context.Background(), items)
	if results[0].Error != "" {
		t.Errorf("good-1 should succeed, got error: %s", results[0].Error)
	}
	if results[1].Error == "" {
		t.Error("malformed layout should report an error")
	}
	if results[2].Error != "" {
		t.Errorf("good-2 should succeed despite sibling failure, got error: %s", results[2].Error)
	}
}
