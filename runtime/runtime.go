// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime composes the system and balances pallets under a single
// type configuration.
package runtime

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ssebide/ssebide-chain/balances"
	"github.com/ssebide/ssebide-chain/system"
)

// Concrete types bound to every pallet of the runtime.
type (
	AccountID   = string
	Balance     = uint64
	BlockNumber = uint32
	Nonce       = uint32
)

// Runtime owns one instance of each pallet. It enforces no policy across
// pallets: callers decide when blocks advance and nonces are bumped.
type Runtime struct {
	System   *system.Pallet[AccountID, BlockNumber, Nonce]
	Balances *balances.Pallet[AccountID, Balance]

	log      logging.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

type Option func(*Runtime)

func WithLogger(log logging.Logger) Option {
	return func(r *Runtime) {
		r.log = log
	}
}

func New(opts ...Option) *Runtime {
	r := &Runtime{
		System:   system.New[AccountID, BlockNumber, Nonce](),
		Balances: balances.New[AccountID, Balance](),
		log:      logging.NoLog{},
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics = newMetrics(r.registry)
	return r
}

// Registry exposes the runtime counters.
func (r *Runtime) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Runtime) SetBalance(who AccountID, amount Balance) {
	r.Balances.SetBalance(who, amount)
	r.log.Debug("set balance",
		zap.String("who", who),
		zap.Uint64("amount", amount),
	)
}

func (r *Runtime) Transfer(from AccountID, to AccountID, amount Balance) error {
	if err := r.Balances.Transfer(from, to, amount); err != nil {
		r.metrics.transfersFailed.Inc()
		r.log.Debug("transfer failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.Uint64("amount", amount),
			zap.Error(err),
		)
		return err
	}
	r.metrics.transfers.Inc()
	r.log.Debug("transfer",
		zap.String("from", from),
		zap.String("to", to),
		zap.Uint64("amount", amount),
	)
	return nil
}

func (r *Runtime) IncrementBlockNumber() error {
	if err := r.System.IncrementBlockNumber(); err != nil {
		return err
	}
	r.metrics.blocks.Inc()
	r.log.Debug("block produced",
		zap.Uint32("height", r.System.BlockNumber()),
	)
	return nil
}

func (r *Runtime) IncNonce(who AccountID) error {
	if err := r.System.IncNonce(who); err != nil {
		return err
	}
	r.metrics.nonceIncrements.Inc()
	r.log.Debug("nonce incremented",
		zap.String("who", who),
		zap.Uint32("nonce", r.System.Nonce(who)),
	)
	return nil
}
