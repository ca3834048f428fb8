package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesInterpreted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerbot",
		Name:      "messages_interpreted_total",
		Help:      "Messages processed by the interpreter, labeled by resolved intent.",
	}, []string{"intent"})

	ConfirmationsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledgerbot",
		Name:      "confirmations_opened_total",
		Help:      "Messages that routed into the confirmation dialog.",
	})

	FallbackInvocations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledgerbot",
		Name:      "fallback_invocations_total",
		Help:      "Classification fallback calls to the external model.",
	})

	FallbackFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledgerbot",
		Name:      "fallback_failures_total",
		Help:      "Fallback calls that errored, timed out or were rate limited.",
	})

	ContextsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledgerbot",
		Name:      "contexts_evicted_total",
		Help:      "Idle conversation contexts dropped by the sweeper.",
	})

	EntriesAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerbot",
		Name:      "entries_appended_total",
		Help:      "Ledger entries handed to the store, labeled by kind.",
	}, []string{"kind"})
)
