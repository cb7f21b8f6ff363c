package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/rex-ai/rex/pkg/utils/logging"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "rex",
		Usage: "Per-user memory and contextual awareness service",
		Commands: []*cli.Command{
			serveCommand(),
			chatCommand(),
			categoriesCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		logging.Default().Error("command failed", "error", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
