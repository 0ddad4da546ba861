package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Device metrics
	DeviceResolutionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quarry_device_resolutions_total",
			Help: "Total number of by-id alias resolution passes",
		},
	)

	DevicesWithoutAlias = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quarry_devices_without_alias_total",
			Help: "Total number of resolutions that found no by-id alias",
		},
	)

	// Configuration object metrics
	PoolsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quarry_pools_total",
			Help: "Total number of storage pools in the configuration store",
		},
	)

	MountsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quarry_mounts_total",
			Help: "Total number of mount entries in the configuration store",
		},
	)

	// Configuration store metrics
	ConfigOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quarry_config_operations_total",
			Help: "Total number of configuration store operations by op",
		},
		[]string{"op"},
	)

	ConfigOperationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quarry_config_operation_errors_total",
			Help: "Total number of failed configuration store operations by op",
		},
		[]string{"op"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(DeviceResolutionsTotal)
	prometheus.MustRegister(DevicesWithoutAlias)
	prometheus.MustRegister(PoolsTotal)
	prometheus.MustRegister(MountsTotal)
	prometheus.MustRegister(ConfigOperationsTotal)
	prometheus.MustRegister(ConfigOperationErrors)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
