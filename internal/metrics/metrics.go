// Package metrics holds the process-wide prometheus collectors.
//
// Lost or unanswerable cross-shard messages are a liveness defect the core
// cannot repair; the counters here are how operators find out about them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesSent counts outbound cross-shard envelopes by kind.
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triviarena_messages_sent_total",
		Help: "Cross-shard envelopes sent, by message kind.",
	}, []string{"kind"})

	// MessagesHandled counts inbound envelopes by kind and outcome.
	MessagesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triviarena_messages_handled_total",
		Help: "Cross-shard envelopes handled, by message kind and outcome.",
	}, []string{"kind", "outcome"})

	// Settlements counts completed game settlements.
	Settlements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triviarena_settlements_total",
		Help: "Battles settled.",
	})

	// EmptyCatalogStalls counts question-supply requests dropped because the
	// catalog was empty. Each one leaves a room stalled in InProgress.
	EmptyCatalogStalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triviarena_empty_catalog_stalls_total",
		Help: "Question-supply requests dropped due to an empty catalog.",
	})
)
