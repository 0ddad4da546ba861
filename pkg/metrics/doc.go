/*
Package metrics provides Prometheus metrics collection and exposition for quarry.

The metrics package defines and registers all quarry metrics using the
Prometheus client library, providing observability into device resolution and
configuration store activity. It also carries HTTP health, readiness, and
liveness handlers served alongside the exposition endpoint.

# Metrics

Device:
  - quarry_device_resolutions_total: by-id alias resolution passes
  - quarry_devices_without_alias_total: resolutions that found no alias

Configuration store:
  - quarry_config_operations_total{op}: store operations by op
  - quarry_config_operation_errors_total{op}: failed store operations by op
  - quarry_pools_total: storage pools currently configured
  - quarry_mounts_total: mount entries currently configured

# Usage

Exposition:

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())

Collector (samples object counts from the store every 15s):

	collector := metrics.NewCollector(db)
	collector.Start()
	defer collector.Stop()

Component health:

	metrics.RegisterComponent("configdb", true, "")
	metrics.UpdateComponent("configdb", false, "store not loaded")

All metrics are registered in init(); importing the package is enough for the
counters incremented by pkg/device and pkg/configdb to be exported.
*/
package metrics
