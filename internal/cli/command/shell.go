package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/cli/shell"
)

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Start an interactive session that keeps the current screen",
		Action: func(c *cli.Context) error {
			a, err := buildApp(c)
			if err != nil {
				return err
			}

			sh := shell.New(shell.Options{
				Router:     a.Router,
				Gate:       a.Gate,
				Init:       a.Init,
				Dispatch:   dispatcher(c),
				PrintError: PrintError,
				In:         c.App.Reader,
				Out:        c.App.Writer,
				Err:        c.App.ErrWriter,
			})
			return sh.Run(c.Context)
		},
	}
}

// dispatcher runs shell lines through a nested CLI that shares the parent's application.
func dispatcher(parent *cli.Context) shell.Dispatcher {
	nested := &cli.App{
		Name:           parent.App.Name,
		Usage:          parent.App.Usage,
		Flags:          globalFlags(),
		Commands:       Commands(false),
		Metadata:       parent.App.Metadata,
		Reader:         parent.App.Reader,
		Writer:         parent.App.Writer,
		ErrWriter:      parent.App.ErrWriter,
		HideVersion:    true,
		ExitErrHandler: func(*cli.Context, error) {},
	}
	format := parent.String("output")

	return func(ctx context.Context, args []string) error {
		if !strings.HasPrefix(args[0], "-") && nested.Command(args[0]) == nil {
			return fmt.Errorf("unknown command %q, run 'help' for shell commands or '--help' for the rest", args[0])
		}
		return nested.RunContext(ctx, append([]string{nested.Name, "--output", format}, args...))
	}
}
