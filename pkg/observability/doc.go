/*
Package observability turns dispatcher lifecycle events into Prometheus metrics.

Metrics are registered on a caller supplied registerer so that tests and embedded
deployments can keep them isolated from the global default registry.
*/
package observability
