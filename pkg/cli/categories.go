package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rex-ai/rex/pkg/model"
)

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List the memory categories",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, category := range model.Categories() {
				fmt.Fprintln(c.Root().Writer, string(category))
			}
			return nil
		},
	}
}
