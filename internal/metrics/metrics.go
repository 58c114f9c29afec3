// Package metrics exposes prometheus instrumentation for the route finder.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	QueriesTotal      *prometheus.CounterVec // outcome label: ok|empty_store|invalid_request|error
	RoutesFound       prometheus.Histogram
	QueryDuration     prometheus.Histogram
	ScheduleStops     prometheus.Gauge
	ScheduleTrips     prometheus.Gauge
	ScheduleRoutes    prometheus.Gauge
	ScheduleStopTimes prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routefinder_queries_total",
			Help: "Total route queries served, by outcome.",
		}, []string{"outcome"}),
		RoutesFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routefinder_routes_found",
			Help:    "Candidate routes discovered per query, before truncation.",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routefinder_query_duration_seconds",
			Help:    "Duration of route resolution.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		ScheduleStops: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routefinder_schedule_stops",
			Help: "Stops in the loaded schedule.",
		}),
		ScheduleTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routefinder_schedule_trips",
			Help: "Trips in the loaded schedule.",
		}),
		ScheduleRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routefinder_schedule_routes",
			Help: "Routes in the loaded schedule.",
		}),
		ScheduleStopTimes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routefinder_schedule_stop_times",
			Help: "Stop time rows in the loaded schedule.",
		}),
	}

	reg.MustRegister(
		c.QueriesTotal,
		c.RoutesFound, c.QueryDuration,
		c.ScheduleStops, c.ScheduleTrips, c.ScheduleRoutes, c.ScheduleStopTimes,
	)
	return c
}

// SetScheduleSizes records the loaded table sizes once after load.
func (c *Collector) SetScheduleSizes(stops, trips, routes, stopTimes int) {
	c.ScheduleStops.Set(float64(stops))
	c.ScheduleTrips.Set(float64(trips))
	c.ScheduleRoutes.Set(float64(routes))
	c.ScheduleStopTimes.Set(float64(stopTimes))
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
