// Package main provides the layoutscore CLI entrypoint.
//
// serve.go runs the HTTP scoring server.
// score.go scores a single layout string in reduced mode.
// report.go ranks several layout strings against the full catalog.
// corpus.go rebuilds a corpus cache file from its raw text.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "layoutscore",
		Usage: "analyse keyboard layout ergonomics against a corpus",
		Commands: []*cli.Command{
			serveCommand,
			scoreCommand,
			reportCommand,
			corpusCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
