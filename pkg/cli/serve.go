package cli

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rex-ai/rex/pkg/server"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		cfg  config
		addr string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Usage:       "HTTP listen address",
			Value:       ":8000",
			Sources:     cli.EnvVars("REX_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			_, conv, mem, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			handler := server.New(conv, mem)

			logging.Default().Info("starting server", "addr", addr)
			if err := http.ListenAndServe(addr, handler); err != nil {
				return goerr.Wrap(err, "server stopped", goerr.V("addr", addr))
			}
			return nil
		},
	}
}
