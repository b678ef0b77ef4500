// Package adminserver provides the optional HTTP admin endpoint.
//
// Routes:
//
//	GET /healthz          liveness probe
//	GET /version          build information
//	GET /metrics          Prometheus scrape endpoint
//	GET /messages/{key}   read-only lookup of one stored message
//
// The endpoint is disabled unless an admin address is configured.
package adminserver
