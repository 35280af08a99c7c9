// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	transfers       prometheus.Counter
	transfersFailed prometheus.Counter
	blocks          prometheus.Counter
	nonceIncrements prometheus.Counter
}

func newMetrics(r prometheus.Registerer) *metrics {
	m := &metrics{
		transfers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "transfers",
			Help:      "number of successful transfers",
		}),
		transfersFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "transfers_failed",
			Help:      "number of transfers rejected by the balances pallet",
		}),
		blocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "blocks",
			Help:      "number of block number increments",
		}),
		nonceIncrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "nonce_increments",
			Help:      "number of nonce increments across all accounts",
		}),
	}
	r.MustRegister(
		m.transfers,
		m.transfersFailed,
		m.blocks,
		m.nonceIncrements,
	)
	return m
}
