// Package memory provides the in-memory message store for msgserver.
//
// The store maps fixed-width keys to bounded messages. Every read and
// every write goes through a single mutex, so one mutation is atomic with
// respect to any other access, and there is no per-key locking and no
// reader/writer distinction.
//
// Two put policies are supported:
//
//   - PolicyOverwrite: last writer wins (default)
//   - PolicyReject: first writer wins, later writers see the existing message
//
// Contents live for the lifetime of the process; nothing is persisted.
package memory
