// Package report renders scoring results as terminal tables.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rbscholtus/layoutscore/internal/catalog"
	"github.com/rbscholtus/layoutscore/internal/scoring"
)

// Row pairs a layout's name with its full-catalog scoring result.
type Row struct {
	Name   string
	Result scoring.Result
}

// WriteRanking renders rows ranked best-to-worst by Score, with one column
// per requested stat name, looked up across whichever tier declares it.
func WriteRanking(w io.Writer, cat *catalog.Catalog, rows []Row, statNames []string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Box.PaddingLeft = ""
	tw.Style().Box.PaddingRight = ""
	tw.Style().Title.Align = text.AlignCenter
	tw.SetTitle("Layout Ranking")

	colConfigs := []table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Name", Align: text.AlignLeft},
		{Name: "Score", Align: text.AlignRight},
	}
	for _, name := range statNames {
		colConfigs = append(colConfigs, table.ColumnConfig{Name: name, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	tw.SetColumnConfigs(colConfigs)

	header := table.Row{"#", "Name", "Score"}
	for _, name := range statNames {
		header = append(header, name)
	}
	tw.AppendHeader(header)

	ranked := rankedIndices(rows)
	for rank, idx := range ranked {
		row := rows[idx]
		dataRow := table.Row{rank + 1, row.Name, fmt.Sprintf("%+.4f", row.Result.Score)}
		for _, name := range statNames {
			dataRow = append(dataRow, statValue(cat, row.Result, name))
		}
		tw.AppendRow(dataRow)
	}

	tw.Render()
}

func rankedIndices(rows []Row) []int {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && rows[idx[j]].Result.Score > rows[idx[j-1]].Result.Score; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}

// statValue looks a named stat up across mono/bi/tri/quad/meta tiers (in
// that order) and formats it, or returns "-" if no tier declares it.
func statValue(cat *catalog.Catalog, res scoring.Result, name string) string {
	if i := cat.IndexOf(catalog.Mono, name); i >= 0 {
		return fmt.Sprintf("%.2f", res.Mono[i])
	}
	if i := cat.IndexOf(catalog.Bi, name); i >= 0 {
		return fmt.Sprintf("%.2f", res.Bi[i])
	}
	if i := cat.IndexOf(catalog.Tri, name); i >= 0 {
		return fmt.Sprintf("%.2f", res.Tri[i])
	}
	if i := cat.IndexOf(catalog.Quad, name); i >= 0 {
		return fmt.Sprintf("%.2f", res.Quad[i])
	}
	if i := cat.IndexOf(catalog.Meta, name); i >= 0 {
		return fmt.Sprintf("%.2f", res.Meta[i])
	}
	return "-"
}
