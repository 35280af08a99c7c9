// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ssebide/ssebide-chain/balances"
	"github.com/ssebide/ssebide-chain/runtime"
	"github.com/ssebide/ssebide-chain/utils"
)

type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

type runner struct {
	log     logging.Logger
	rt      *runtime.Runtime
	out     io.Writer
	errOut  io.Writer
	verbose bool
	output  Output
	metrics bool
}

// Run executes every step of [plan] against the runner's runtime and prints
// the final state. Rejected transfers are reported on [errOut] and do not
// stop the plan; any other failure does.
func (r *runner) Run(plan *Plan) error {
	if err := plan.Verify(); err != nil {
		return err
	}
	if r.output != OutputText && r.output != OutputJSON {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, r.output)
	}

	r.log.Info("simulation",
		zap.String("plan", plan.Name),
		zap.String("description", plan.Description),
		zap.Int("steps", len(plan.Steps)),
	)

	for i, step := range plan.Steps {
		r.log.Debug("simulation",
			zap.Int("step", i),
			zap.String("action", string(step.Action)),
			zap.String("who", step.Who),
			zap.String("to", step.To),
			zap.Uint64("amount", step.Amount),
		)

		resp := newResponse(i, step.Action)
		if err := r.runStep(&step); err != nil {
			if !isTransferError(err) {
				return fmt.Errorf("step %d (%s): %w", i, step.Action, err)
			}
			resp.setError(err)
			r.log.Warn("transfer rejected",
				zap.Int("step", i),
				zap.Error(err),
			)
			utils.Fprintf(r.errOut, "{{red}}transfer failed:{{/}} %s\n", err)
		}

		if step.Require != nil {
			if err := step.Require.check(r.rt); err != nil {
				return fmt.Errorf("step %d (%s): %w", i, step.Action, err)
			}
		}

		if r.verbose {
			resp.setResult(r.rt, step.Who)
			if err := resp.Print(r.out); err != nil {
				return err
			}
		}
	}

	if err := r.printState(); err != nil {
		return err
	}
	if r.metrics {
		return r.printMetrics()
	}
	return nil
}

func (r *runner) runStep(step *Step) error {
	switch step.Action {
	case SetBalance:
		r.rt.SetBalance(step.Who, step.Amount)
		return nil
	case Transfer:
		return r.rt.Transfer(step.Who, step.To, step.Amount)
	case IncrementBlock:
		return r.rt.IncrementBlockNumber()
	case IncNonce:
		return r.rt.IncNonce(step.Who)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, step.Action)
	}
}

func (r *runner) printState() error {
	switch r.output {
	case OutputJSON:
		b, err := r.rt.State().MarshalIndent()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(b))
		return err
	default:
		_, err := fmt.Fprintln(r.out, r.rt.String())
		return err
	}
}

// printMetrics writes the runtime counters in the prometheus text format.
func (r *runner) printMetrics() error {
	families, err := r.rt.Registry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(r.out, family); err != nil {
			return err
		}
	}
	return nil
}

func isTransferError(err error) bool {
	return errors.Is(err, balances.ErrInsufficientBalance) ||
		errors.Is(err, balances.ErrBalanceOverflow)
}

func (req *Require) check(rt *runtime.Runtime) error {
	if req.BlockNumber != nil {
		if actual := rt.System.BlockNumber(); actual != *req.BlockNumber {
			return fmt.Errorf("%w: block number is %d, expected %d", ErrRequireFailed, actual, *req.BlockNumber)
		}
	}

	accounts := maps.Keys(req.Balances)
	slices.Sort(accounts)
	for _, who := range accounts {
		if actual, expected := rt.Balances.Balance(who), req.Balances[who]; actual != expected {
			return fmt.Errorf("%w: balance of %s is %d, expected %d", ErrRequireFailed, who, actual, expected)
		}
	}

	accounts = maps.Keys(req.Nonces)
	slices.Sort(accounts)
	for _, who := range accounts {
		if actual, expected := rt.System.Nonce(who), req.Nonces[who]; actual != expected {
			return fmt.Errorf("%w: nonce of %s is %d, expected %d", ErrRequireFailed, who, actual, expected)
		}
	}
	return nil
}
