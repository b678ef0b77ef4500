// Package connection provides the line protocol client used by msgserver-cli.
//
// Every request opens a fresh connection, writes one line, reads one line
// and closes, matching the single-shot server.
package connection
