package catalog

import (
	"fmt"

	"github.com/rbscholtus/layoutscore/internal/classify"
	"github.com/rbscholtus/layoutscore/internal/geometry"
)

// colUsageNames names the 12 per-column usage sums, column 0 through 11,
// mirroring the reference labeling of the outer/pinky/ring/middle/index
// columns on each hand plus the two innermost "inner" columns flanking the
// split.
var colUsageNames = [geometry.Cols]string{
	"Left Outer Usage", "Left Pinky Usage", "Left Ring Usage", "Left Middle Usage",
	"Left Index Usage", "Left Inner Usage",
	"Right Inner Usage", "Right Index Usage", "Right Middle Usage", "Right Ring Usage",
	"Right Pinky Usage", "Right Outer Usage",
}

func buildMonoEntries() []StatEntry {
	var out []StatEntry

	for row := 0; row < geometry.Rows; row++ {
		for col := 0; col < geometry.Cols; col++ {
			r, c := row, col
			name := fmt.Sprintf("Heatmap %d %02d", r, c)
			out = append(out, monoStat(name, func(p classify.Pos) bool {
				return p.Row == r && p.Col == c
			}))
		}
	}

	for col := 0; col < geometry.Cols; col++ {
		c := col
		out = append(out, monoStat(colUsageNames[col], func(p classify.Pos) bool {
			return p.Col == c
		}))
	}

	out = append(out, monoStat("Left Hand Usage", func(p classify.Pos) bool {
		return geometry.HandOf(p.Col) == geometry.Left
	}))
	out = append(out, monoStat("Right Hand Usage", func(p classify.Pos) bool {
		return geometry.HandOf(p.Col) == geometry.Right
	}))

	rowNames := [geometry.Rows]string{"Top Row Usage", "Home Row Usage", "Bottom Row Usage"}
	for row := 0; row < geometry.Rows; row++ {
		r := row
		out = append(out, monoStat(rowNames[row], func(p classify.Pos) bool {
			return p.Row == r
		}))
	}

	return out
}
