// Package metric provides Prometheus metrics for msgserver.
//
// Metrics live in a private prometheus.Registry (not the global default)
// so every server instance and every test gets its own set:
//
//   - msgserver_requests_total{command,result}
//   - msgserver_connections_total / msgserver_connections_active
//   - msgserver_connection_errors_total
//   - msgserver_store_keys (read from the store at scrape time)
//
// Handler exposes the registry in the Prometheus text format.
package metric
