// Package main provides the entry point for msgserver.
//
// msgserver is a single-shot line protocol key/value server: each client
// connection carries one PUT or GET request and receives one response.
//
// Usage:
//
//	msgserver [--config FILE] <port>
//
// Settings come from defaults, the optional YAML file and MSGSERVER_*
// environment variables, in increasing priority. The exit status names
// the failure category (see lineserver.Exit* constants).
package main
