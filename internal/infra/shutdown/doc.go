// Package shutdown coordinates graceful process termination.
//
// A Handler collects cleanup hooks and runs them once either SIGINT or
// SIGTERM arrives or the supplied context is cancelled, whichever comes
// first. Hooks run in reverse registration order under a shared timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
