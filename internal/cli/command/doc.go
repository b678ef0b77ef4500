// Package command defines the msgserver and msgserver-cli applications
// using urfave/cli/v2.
//
//   - server.go: msgserver, the line protocol server process
//   - root.go: msgserver-cli, global flags and shared helpers
//   - message.go: put, get and raw client commands
//   - shell.go: interactive shell over the line client
//
// Failures that must end the process with a specific status are returned
// as cli.ExitCoder values.
package command
