package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rbscholtus/layoutscore/internal/scoring"
)

var scoreCommand = &cli.Command{
	Name:      "score",
	Usage:     "score a single 30-character layout string in reduced mode",
	ArgsUsage: "<layout-string>",
	Flags:     flagsSlice("config", "language", "corpus", "cache", "weights", "verbose", "quiet"),
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("score: expected exactly one layout string argument")
		}

		e, err := setup(c, "score")
		if err != nil {
			return err
		}

		weights, err := parseWeights(c.String("weights"))
		if err != nil {
			return err
		}

		layout, err := scoring.ParseLayoutString("cli", c.Args().First(), e.lang)
		if err != nil {
			return err
		}

		res, err := scoring.ScoreReduced(e.cat, e.tables, layout, weights)
		if err != nil {
			return err
		}

		fmt.Printf("sfb=%.4f sfs=%.4f lsb=%.4f alt=%.4f rolls=%.4f score=%.4f\n",
			res.SameFingerBigram, res.SameFingerSkip1, res.IndexStretchBigram, res.Alternation, res.Roll, res.Score)
		return nil
	},
}
