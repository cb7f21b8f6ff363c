package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rex-ai/rex/pkg/model"
)

func chatCommand() *cli.Command {
	var (
		cfg       config
		userID    string
		sessionID string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "User ID for the chat session",
			Value:       "local",
			Sources:     cli.EnvVars("REX_USER_ID"),
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session ID for the chat session",
			Value:       "cli",
			Sources:     cli.EnvVars("REX_SESSION_ID"),
			Destination: &sessionID,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive conversation with recall support",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			_, conv, _, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			rl, err := readline.New("rex> ")
			if err != nil {
				return goerr.Wrap(err, "failed to initialize readline")
			}
			defer rl.Close()

			fmt.Fprintln(c.Root().Writer, "Chat session started. Type 'exit' to quit.")
			fmt.Fprintln(c.Root().Writer, `Use "REX, recall <topic>" to request explicit recall.`)

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to read input")
				}
				if line == "exit" {
					break
				}
				if line == "" {
					continue
				}

				sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				sp.Start()

				response, err := conv.ProcessTurn(ctx, &model.ConversationInput{
					UserID:    userID,
					SessionID: sessionID,
					UserInput: line,
				})

				sp.Stop()

				if err != nil {
					return goerr.Wrap(err, "failed to process turn")
				}

				fmt.Fprintln(c.Root().Writer, response.AIResponse)
			}

			return nil
		},
	}
}
