// Package scoring evaluates a parsed keyboard layout against a statistic
// catalog and a corpus's normalized frequency tables, producing per-stat
// results and a weighted total score.
package scoring

import (
	"fmt"

	"github.com/rbscholtus/layoutscore/internal/geometry"
)

// Layout is a 3x12 grid of character ids; -1 marks an empty cell.
type Layout struct {
	Name   string
	Matrix [geometry.Rows][geometry.Cols]int32
}

// CharConverter maps a rune to its character id, or -1 if it has none.
type CharConverter interface {
	Convert(r rune) int32
}

// ParseLayoutString builds a Layout from a 30-character string, one
// character per key of the inner 3x10 block (columns 1..10, rows 0..2),
// leaving the two outer columns of each row empty. Returns an error if the
// string isn't exactly 30 runes or contains a character outside lang.
func ParseLayoutString(name, s string, lang CharConverter) (*Layout, error) {
	runes := []rune(s)
	if len(runes) != 30 {
		return nil, fmt.Errorf("scoring: layout string must be 30 characters, got %d", len(runes))
	}

	lt := &Layout{Name: name}
	for r := 0; r < geometry.Rows; r++ {
		for c := 0; c < geometry.Cols; c++ {
			lt.Matrix[r][c] = -1
		}
	}

	row, col := 0, 1
	for i, r := range runes {
		id := lang.Convert(r)
		if id == -1 {
			return nil, fmt.Errorf("scoring: character %q not in language", r)
		}
		lt.Matrix[row][col] = id
		col++
		if i == 9 || i == 19 {
			row++
			col = 1
		}
	}
	return lt, nil
}

// At returns the character id at a flat grid position, or -1 if it's out
// of range or empty.
func (lt *Layout) At(flat int) int32 {
	if flat < 0 || flat >= geometry.Positions {
		return -1
	}
	r, c := geometry.UnflatMono(flat)
	return lt.Matrix[r][c]
}
