package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rbscholtus/layoutscore/internal/corpus"
	"github.com/rbscholtus/layoutscore/internal/langdef"
)

var corpusCommand = &cli.Command{
	Name:  "corpus",
	Usage: "rebuild a corpus's cache file from its raw text",
	Flags: flagsSlice("config", "language", "corpus", "cache", "verbose", "quiet"),
	Action: func(c *cli.Context) error {
		e, err := setup(c, "corpus")
		if err != nil {
			return err
		}

		cachePath := c.String("cache")
		if cachePath == "" {
			cachePath = e.cfg.Corpus + ".cache"
		}
		if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("corpus: removing stale cache: %w", err)
		}

		lang, err := langdef.Load(e.cfg.Language)
		if err != nil {
			return err
		}

		f, err := os.Open(e.cfg.Corpus)
		if err != nil {
			return err
		}
		defer f.Close()

		t := corpus.New(lang.Size())
		if err := t.IngestReader(f, lang); err != nil {
			return err
		}
		if err := t.WriteCache(cachePath); err != nil {
			return err
		}

		e.log.Infof("rebuilt cache %s", cachePath)
		return nil
	},
}
