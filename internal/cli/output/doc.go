// Package output formats msgserver-cli results.
//
// The default text format prints the raw response line, so scripts can
// consume it unchanged. The json, yaml and table formats wrap the response
// in a Result record.
package output
