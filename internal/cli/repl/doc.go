// Package repl provides the interactive shell of msgserver-cli.
//
// Each line typed at the prompt is sent to the server as one request and
// the response is printed. Lines starting with a dot are shell commands:
// .help, .history and .exit (exit and quit also work).
package repl
