package main

import "github.com/urfave/cli/v2"

// appFlagsMap centralizes flag definitions so each command can pick only
// the ones it needs, following the teacher's flagsSlice/appFlagsMap split.
var appFlagsMap = map[string]cli.Flag{
	"config": &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"f"},
		Usage:   "config file with language/corpus/mode defaults",
	},
	"language": &cli.StringFlag{
		Name:    "language",
		Aliases: []string{"l"},
		Usage:   ".lang file describing the alphabet",
	},
	"corpus": &cli.StringFlag{
		Name:    "corpus",
		Aliases: []string{"c"},
		Usage:   "corpus text file to tokenize and score against",
	},
	"cache": &cli.StringFlag{
		Name:  "cache",
		Usage: "corpus cache file path (default: <corpus>.cache)",
	},
	"weights": &cli.StringFlag{
		Name:    "weights",
		Aliases: []string{"w"},
		Usage:   "reduced-mode weights, eg: sfb=-3.0,sfs=-1.0,lsb=-2.0,alt=1.0,rolls=1.0",
	},
	"addr": &cli.StringFlag{
		Name:  "addr",
		Usage: "address to listen on",
		Value: ":8080",
	},
	"verbose": &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "enable verbose logging",
	},
	"quiet": &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "suppress informational logging",
	},
}

func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
