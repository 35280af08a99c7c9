// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ssebide/ssebide-chain/runtime"
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Steps to perform in order against a fresh runtime.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// The runtime operation to perform. (required)
	Action Action `json:"action" yaml:"action"`
	// The account whose balance is set, whose nonce is incremented or that
	// sends a transfer.
	Who string `json:"who,omitempty" yaml:"who,omitempty"`
	// The receiver of a transfer.
	To     string          `json:"to,omitempty" yaml:"to,omitempty"`
	Amount runtime.Balance `json:"amount,omitempty" yaml:"amount,omitempty"`
	// Assertions checked after the step has run.
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

type Action string

const (
	SetBalance     Action = "set_balance"
	Transfer       Action = "transfer"
	IncrementBlock Action = "increment_block"
	IncNonce       Action = "inc_nonce"
)

type Require struct {
	BlockNumber *runtime.BlockNumber                  `json:"blockNumber,omitempty" yaml:"block_number,omitempty"`
	Balances    map[runtime.AccountID]runtime.Balance `json:"balances,omitempty" yaml:"balances,omitempty"`
	Nonces      map[runtime.AccountID]runtime.Nonce   `json:"nonces,omitempty" yaml:"nonces,omitempty"`
}

// DefaultPlan is run when no plan is provided.
func DefaultPlan() *Plan {
	one := runtime.BlockNumber(1)
	return &Plan{
		Name:        "default",
		Description: "fund alice and pay bob and charlie in the first block",
		Steps: []Step{
			{Action: SetBalance, Who: "alice", Amount: 100},
			{Action: IncrementBlock, Require: &Require{BlockNumber: &one}},
			{Action: IncNonce, Who: "alice"},
			{Action: Transfer, Who: "alice", To: "bob", Amount: 30},
			{Action: IncNonce, Who: "alice"},
			{Action: Transfer, Who: "alice", To: "charlie", Amount: 20},
		},
	}
}

func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, "no steps found")
	}
	for i, step := range p.Steps {
		if err := step.verify(); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
	}
	return nil
}

func (s *Step) verify() error {
	switch s.Action {
	case SetBalance, IncNonce:
		if s.Who == "" {
			return fmt.Errorf("%w: %s requires who", ErrMissingAccount, s.Action)
		}
	case Transfer:
		if s.Who == "" || s.To == "" {
			return fmt.Errorf("%w: %s requires who and to", ErrMissingAccount, s.Action)
		}
	case IncrementBlock:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, s.Action)
	}
	return nil
}

func unmarshalPlan(bytes []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(string(bytes)):
		if err := json.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	case isYAML(string(bytes)):
		if err := yaml.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}

	return &p, nil
}

func isJSON(s string) bool {
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func isYAML(s string) bool {
	var y map[string]interface{}
	return yaml.Unmarshal([]byte(s), &y) == nil
}
