package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/msgserver-go/internal/cli/repl"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Send request lines interactively",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not read or write the history file",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	historyFile := ""
	if !c.Bool("no-history") {
		historyFile = repl.DefaultHistoryFile()
	}
	history := repl.NewHistory(historyFile)
	if err := history.Load(); err != nil {
		PrintError("load history: %v", err)
	}

	input := c.App.Reader
	if input == nil {
		input = os.Stdin
	}

	err := repl.New(NewClient(c), input, c.App.Writer, history).Run(c.Context)
	if saveErr := history.Save(); saveErr != nil {
		PrintError("save history: %v", saveErr)
	}
	return err
}
