package corpus

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rbscholtus/layoutscore/internal/geometry"
)

// WriteCache writes the raw counts to path, one record per line, skipping
// zero entries. Skipgram lines are always written with a bare leading
// digit (the skip distance) and no leading letter tag — this asymmetry
// with the reader (see ReadCache) is preserved intentionally, matching the
// reference cache format exactly.
func (t *Tables) WriteCache(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	l := t.L

	for i := 0; i < l; i++ {
		if c := t.CountMono[i]; c != 0 {
			fmt.Fprintf(w, "m %d %d\n", i, c)
		}
		for j := 0; j < l; j++ {
			if c := t.CountBi[geometry.IndexBi(l, i, j)]; c != 0 {
				fmt.Fprintf(w, "b %d %d %d\n", i, j, c)
			}
			for d := 1; d <= MaxSkip; d++ {
				if c := t.CountSkip[d][geometry.IndexBi(l, i, j)]; c != 0 {
					fmt.Fprintf(w, "%d %d %d %d\n", d, i, j, c)
				}
			}
			for k := 0; k < l; k++ {
				if c := t.CountTri[geometry.IndexTri(l, i, j, k)]; c != 0 {
					fmt.Fprintf(w, "t %d %d %d %d\n", i, j, k, c)
				}
				for m := 0; m < l; m++ {
					if c := t.CountQuad[geometry.IndexQuad(l, i, j, k, m)]; c != 0 {
						fmt.Fprintf(w, "q %d %d %d %d %d\n", i, j, k, m, c)
					}
				}
			}
		}
	}
	return w.Flush()
}

// ReadCache populates t's raw counts from a cache file written by
// WriteCache. Lines are dispatched purely on their first character: 'm',
// 'b', 't' and 'q' select the n-gram tables, a digit 1..9 marks a skipgram
// line (the skip distance, with no letter tag) and is read into CountSkip,
// and any other leading character is silently ignored.
func (t *Tables) ReadCache(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	l := t.L
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var tag string
		var a, b, c, d int
		var count uint64

		switch line[0] {
		case 'm':
			if _, err := fmt.Sscanf(line, "%s %d %d", &tag, &a, &count); err == nil {
				t.CountMono[a] = count
			}
		case 'b':
			if _, err := fmt.Sscanf(line, "%s %d %d %d", &tag, &a, &b, &count); err == nil {
				t.CountBi[geometry.IndexBi(l, a, b)] = count
			}
		case 't':
			if _, err := fmt.Sscanf(line, "%s %d %d %d %d", &tag, &a, &b, &c, &count); err == nil {
				t.CountTri[geometry.IndexTri(l, a, b, c)] = count
			}
		case 'q':
			if _, err := fmt.Sscanf(line, "%s %d %d %d %d %d", &tag, &a, &b, &c, &d, &count); err == nil {
				t.CountQuad[geometry.IndexQuad(l, a, b, c, d)] = count
			}
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			var skip int
			if _, err := fmt.Sscanf(line, "%d %d %d %d", &skip, &a, &b, &count); err == nil && skip >= 1 && skip <= MaxSkip {
				t.CountSkip[skip][geometry.IndexBi(l, a, b)] = count
			}
		default:
			// unrecognized leading token: dropped, matching the reference
			// reader's silent default branch.
		}
	}
	return sc.Err()
}
