// Package buildinfo exposes build information for msgserver.
//
// Values are injected via ldflags:
//
//   - Version: semantic version (e.g., "1.0.0")
//   - Commit: git commit hash
//   - BuildTime: build timestamp
//
// When a value is not injected, Get falls back to what the Go runtime
// recorded in the binary (module version, vcs.revision, vcs.time and the
// compiler version).
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/msgserver-go/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
