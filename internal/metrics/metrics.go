// Package metrics defines the Prometheus collectors exported on /metrics.
// Collectors are package-level and registered with the default registry so
// any component can record without threading a handle through constructors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OpenSessions tracks the number of WebSocket sessions currently held
	// by this node.
	OpenSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "connector_open_sessions",
		Help: "Number of WebSocket sessions currently attached to this node.",
	})

	// InboundFrames counts user data frames by frame type (text, binary).
	InboundFrames = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_inbound_frames_total",
		Help: "Inbound WebSocket frames handled, labelled by frame type.",
	}, []string{"type"})

	// DispatchResults counts inbound push deliveries by outcome
	// (delivered, not_found, queue_closed).
	DispatchResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_dispatch_total",
		Help: "Push deliveries received from the dispatcher, labelled by outcome.",
	}, []string{"result"})

	// UpstreamInstances reports, per upstream service, how many healthy
	// instances the last registry refresh produced.
	UpstreamInstances = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "connector_upstream_instances",
		Help: "Healthy upstream instances on the ring, labelled by service.",
	}, []string{"service"})

	// UpstreamErrors counts failed upstream calls by service and kind
	// (unaccessible, rpc).
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_upstream_errors_total",
		Help: "Failed upstream calls, labelled by service and error kind.",
	}, []string{"service", "kind"})
)
