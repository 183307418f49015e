// Package config loads the three settings layoutscore needs to start: which
// language table to use, which corpus text to score against, and which
// output mode to run in. A config file supplies defaults; CLI flags
// override them, following the teacher's file-then-flags precedence.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Mode selects how layoutscore runs once configured.
type Mode string

const (
	ModeServe  Mode = "serve"
	ModeScore  Mode = "score"
	ModeReport Mode = "report"
	ModeCorpus Mode = "corpus"
)

// Config is the resolved set of settings, after file load and flag
// overrides have both been applied.
type Config struct {
	Language string
	Corpus   string
	Mode     Mode
}

// Load reads key=value pairs from a config file (blank lines and lines
// starting with # are ignored, matching the teacher's weights-file
// convention) and applies flagLanguage/flagCorpus/flagMode on top of it
// wherever a flag is non-empty. path may be empty, in which case only the
// flags are used.
func Load(path, flagLanguage, flagCorpus, flagMode string) (*Config, error) {
	c := &Config{Mode: ModeReport}

	if path != "" {
		if err := c.applyFile(path); err != nil {
			return nil, err
		}
	}

	if flagLanguage != "" {
		c.Language = flagLanguage
	}
	if flagCorpus != "" {
		c.Corpus = flagCorpus
	}
	if flagMode != "" {
		c.Mode = Mode(flagMode)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("config: %q: malformed line %q", path, line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch strings.ToLower(key) {
		case "language":
			c.Language = value
		case "corpus":
			c.Corpus = value
		case "mode":
			c.Mode = Mode(value)
		default:
			return fmt.Errorf("config: %q: unknown key %q", path, key)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.Language == "" {
		return fmt.Errorf("config: language is required")
	}
	if c.Corpus == "" {
		return fmt.Errorf("config: corpus is required")
	}
	switch c.Mode {
	case ModeServe, ModeScore, ModeReport, ModeCorpus:
	default:
		return fmt.Errorf("config: invalid mode %q, want serve, score, report or corpus", c.Mode)
	}
	return nil
}
