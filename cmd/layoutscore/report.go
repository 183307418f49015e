package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rbscholtus/layoutscore/internal/report"
	"github.com/rbscholtus/layoutscore/internal/scoring"
)

var reportCommand = &cli.Command{
	Name:      "report",
	Usage:     "rank several layouts against the full catalog",
	ArgsUsage: "<name>=<layout-string> [<name>=<layout-string> ...]",
	Flags: append(flagsSlice("config", "language", "corpus", "cache", "verbose", "quiet"),
		&cli.StringFlag{
			Name:  "stats",
			Usage: "comma-separated stat names to show as columns",
			Value: "Same Finger Bigram,Alternation,Roll,Hand Balance",
		},
	),
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("report: expected at least one name=layout-string argument")
		}

		e, err := setup(c, "report")
		if err != nil {
			return err
		}

		var rows []report.Row
		for _, arg := range c.Args().Slice() {
			name, layoutStr, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("report: argument %q must be name=layout-string", arg)
			}
			layout, err := scoring.ParseLayoutString(name, layoutStr, e.lang)
			if err != nil {
				return fmt.Errorf("report: %s: %w", name, err)
			}
			rows = append(rows, report.Row{Name: name, Result: scoring.Score(e.cat, e.tables, layout)})
		}

		statNames := strings.Split(c.String("stats"), ",")
		for i := range statNames {
			statNames[i] = strings.TrimSpace(statNames[i])
		}

		report.WriteRanking(os.Stdout, e.cat, rows, statNames)
		return nil
	},
}
