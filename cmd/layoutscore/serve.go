package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/rbscholtus/layoutscore/internal/dispatch"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "run the HTTP scoring server",
	Flags: flagsSlice("config", "language", "corpus", "cache", "addr", "verbose", "quiet"),
	Action: func(c *cli.Context) error {
		e, err := setup(c, "serve")
		if err != nil {
			return err
		}

		pool := dispatch.NewPool(e.cat, e.tables, e.lang, 0)
		defer pool.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e.log.Infof("listening on %s", c.String("addr"))
		return pool.Serve(ctx, c.String("addr"))
	},
}
