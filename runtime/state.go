// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State is a point-in-time copy of everything the runtime stores.
type State struct {
	BlockNumber BlockNumber           `json:"blockNumber" yaml:"block_number"`
	Balances    map[AccountID]Balance `json:"balances" yaml:"balances"`
	Nonces      map[AccountID]Nonce   `json:"nonces" yaml:"nonces"`
	// TotalIssuance is the sum of all balances, nil if it does not fit in
	// [Balance].
	TotalIssuance *Balance `json:"totalIssuance,omitempty" yaml:"total_issuance,omitempty"`
}

func (r *Runtime) State() State {
	s := State{
		BlockNumber: r.System.BlockNumber(),
		Balances:    make(map[AccountID]Balance, r.Balances.Len()),
		Nonces:      make(map[AccountID]Nonce),
	}
	for _, who := range r.Balances.Accounts() {
		s.Balances[who] = r.Balances.Balance(who)
	}
	for _, who := range r.System.Accounts() {
		s.Nonces[who] = r.System.Nonce(who)
	}
	if total, err := r.Balances.TotalIssuance(); err == nil {
		s.TotalIssuance = &total
	}
	return s
}

// MarshalIndent renders [s] as indented JSON. Map keys are emitted in sorted
// order.
func (s State) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func (r *Runtime) String() string {
	var b strings.Builder
	s := r.State()
	fmt.Fprintf(&b, "Runtime {\n  system: { block_number: %d, nonces: {", s.BlockNumber)
	writeEntries(&b, r.System.Accounts(), func(who AccountID) uint64 { return uint64(s.Nonces[who]) })
	b.WriteString("} },\n  balances: {")
	writeEntries(&b, r.Balances.Accounts(), func(who AccountID) uint64 { return s.Balances[who] })
	b.WriteString("},\n  total_issuance: ")
	if s.TotalIssuance != nil {
		fmt.Fprintf(&b, "%d", *s.TotalIssuance)
	} else {
		b.WriteString("overflow")
	}
	b.WriteString("\n}")
	return b.String()
}

func writeEntries(b *strings.Builder, accounts []AccountID, value func(AccountID) uint64) {
	for i, who := range accounts {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %q: %d", who, value(who))
	}
	if len(accounts) > 0 {
		b.WriteString(" ")
	}
}
