// Package main provides the entry point for msgserver-cli.
//
// Usage:
//
//	msgserver-cli [--server HOST:PORT] put KEY [MESSAGE...]
//	msgserver-cli [--server HOST:PORT] get KEY
//	msgserver-cli [--server HOST:PORT] raw LINE
package main
