package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rbscholtus/layoutscore/internal/catalog"
	"github.com/rbscholtus/layoutscore/internal/config"
	"github.com/rbscholtus/layoutscore/internal/corpus"
	"github.com/rbscholtus/layoutscore/internal/langdef"
	"github.com/rbscholtus/layoutscore/internal/logging"
	"github.com/rbscholtus/layoutscore/internal/scoring"
)

// env bundles everything a subcommand needs once setup has run.
type env struct {
	cfg    *config.Config
	lang   *langdef.Table
	tables *corpus.Tables
	cat    *catalog.Catalog
	log    *logging.Logger
}

func setup(c *cli.Context, mode string) (*env, error) {
	level := logging.Normal
	if c.Bool("quiet") {
		level = logging.Quiet
	} else if c.Bool("verbose") {
		level = logging.Verbose
	}
	logger := logging.New(nil, level)

	cfg, err := config.Load(c.String("config"), c.String("language"), c.String("corpus"), mode)
	if err != nil {
		return nil, err
	}

	lang, err := langdef.Load(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("loading language: %w", err)
	}
	logger.Infof("loaded language %s (%d characters)", cfg.Language, lang.Size())

	cachePath := c.String("cache")
	if cachePath == "" {
		cachePath = cfg.Corpus + ".cache"
	}
	tables, err := corpus.LoadOrBuild(lang, cfg.Corpus, cachePath)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	logger.Infof("loaded corpus %s", cfg.Corpus)

	cat, err := catalog.Build()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	logger.Debugf("catalog built: %d mono, %d bi, %d tri, %d quad, %d skip, %d meta entries",
		len(cat.Mono), len(cat.Bi), len(cat.Tri), len(cat.Quad), len(cat.Skip), len(cat.Meta))

	return &env{cfg: cfg, lang: lang, tables: tables, cat: cat, log: logger}, nil
}

// parseWeights parses a comma-separated metric=weight string into
// scoring.ReducedWeights, matching the teacher's Weights.AddWeightsFromString
// syntax but restricted to the five reduced-mode metric names.
func parseWeights(s string) (scoring.ReducedWeights, error) {
	var w scoring.ReducedWeights
	if s == "" {
		return w, nil
	}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return w, fmt.Errorf("invalid weights format: %s", pair)
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return w, fmt.Errorf("invalid weight value in %q: %w", pair, err)
		}
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "sfb":
			w.SameFingerBigram = val
		case "sfs":
			w.SameFingerSkip1 = val
		case "lsb":
			w.IndexStretchBigram = val
		case "alt":
			w.Alternation = val
		case "rolls":
			w.Roll = val
		default:
			return w, fmt.Errorf("unknown weight metric %q", k)
		}
	}
	return w, nil
}
