package command

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/msgserver-go/internal/cli/connection"
	"github.com/yndnr/msgserver-go/internal/cli/output"
	"github.com/yndnr/msgserver-go/internal/infra/buildinfo"
)

// DefaultServer is the server address used when none is given.
const DefaultServer = "localhost:7000"

// App creates the msgserver-cli application.
func App() *cli.App {
	return &cli.App{
		Name:    "msgserver-cli",
		Usage:   "Send one request to a msgserver and print the response",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			PutCommand(),
			GetCommand(),
			RawCommand(),
			ShellCommand(),
		},
		Before: func(c *cli.Context) error {
			if _, err := output.ParseFormat(c.String("output")); err != nil {
				return cli.Exit(err.Error(), ExitBadInput)
			}
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "msgserver address (host:port)",
			EnvVars: []string{"MSGSERVER_ADDR"},
			Value:   DefaultServer,
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Timeout for one request",
			Value:   connection.DefaultTimeout,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
			Value:   string(output.FormatText),
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server  string
	Timeout time.Duration
	Output  output.Format
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	format, _ := output.ParseFormat(c.String("output"))
	return &GlobalFlags{
		Server:  c.String("server"),
		Timeout: c.Duration("timeout"),
		Output:  format,
	}
}

// NewClient returns a line client for the configured server.
func NewClient(c *cli.Context) *connection.LineClient {
	flags := ParseGlobalFlags(c)
	return connection.NewLineClient(flags.Server, flags.Timeout)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
