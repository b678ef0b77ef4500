package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/msgserver-go/internal/cli/connection"
	"github.com/yndnr/msgserver-go/internal/cli/output"
	"github.com/yndnr/msgserver-go/internal/core/domain"
)

// Client exit statuses.
const (
	ExitRejected   = 1 // the server answered NO
	ExitBadInput   = 2 // invalid arguments, nothing was sent
	ExitConnection = 3 // the server could not be reached or did not answer
)

// PutCommand returns the put command.
func PutCommand() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Store a message under a key",
		ArgsUsage: "KEY [MESSAGE...]",
		Description: fmt.Sprintf("KEY must be exactly %d characters. Remaining arguments are joined with single\n"+
			"spaces to form the message, which may hold up to %d characters.", domain.KeySize, domain.MaxMessageSize),
		Action: putAction,
	}
}

func putAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("put requires KEY", ExitBadInput)
	}
	key := c.Args().First()
	msg := strings.Join(c.Args().Tail(), " ")

	resp, err := NewClient(c).Put(c.Context, key, msg)
	if err != nil {
		return requestError(err)
	}
	if err := printResult(c, output.Result{Command: "put", Key: key, Response: resp}); err != nil {
		return err
	}
	if resp != "OK" {
		return cli.Exit("", ExitRejected)
	}
	return nil
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch the message stored under a key",
		ArgsUsage: "KEY",
		Action:    getAction,
	}
}

func getAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("get requires exactly one KEY", ExitBadInput)
	}
	key := c.Args().First()

	resp, err := NewClient(c).Get(c.Context, key)
	if err != nil {
		return requestError(err)
	}
	return printResult(c, output.Result{Command: "get", Key: key, Response: resp})
}

// RawCommand returns the raw command.
func RawCommand() *cli.Command {
	return &cli.Command{
		Name:      "raw",
		Usage:     "Send a request line verbatim",
		ArgsUsage: "LINE",
		Action:    rawAction,
	}
}

func rawAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("raw requires exactly one LINE", ExitBadInput)
	}

	resp, err := NewClient(c).Execute(c.Context, c.Args().First())
	if err != nil {
		return requestError(err)
	}
	return printResult(c, output.Result{Command: "raw", Response: resp})
}

func printResult(c *cli.Context, r output.Result) error {
	return output.NewFormatter(ParseGlobalFlags(c).Output).Format(c.App.Writer, r)
}

// requestError maps a client failure onto an exit status.
func requestError(err error) error {
	if domain.IsDomainError(err, "") || errors.Is(err, connection.ErrMultiline) {
		return cli.Exit(err.Error(), ExitBadInput)
	}
	return cli.Exit(err.Error(), ExitConnection)
}
