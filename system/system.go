// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package system tracks the low level chain state: the current block number
// and the nonce of every account that has sent a transaction.
package system

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Pallet holds the block number of type [BN] and a nonce of type [N] for every
// account of type [A].
type Pallet[A cmp.Ordered, BN constraints.Unsigned, N constraints.Unsigned] struct {
	blockNumber BN
	nonces      map[A]N
}

func New[A cmp.Ordered, BN constraints.Unsigned, N constraints.Unsigned]() *Pallet[A, BN, N] {
	return &Pallet[A, BN, N]{
		nonces: make(map[A]N),
	}
}

// BlockNumber returns the current block number, zero before the first
// increment.
func (p *Pallet[A, BN, N]) BlockNumber() BN {
	return p.blockNumber
}

// IncrementBlockNumber advances the block number by one. On overflow the block
// number is left unchanged and [ErrCounterOverflow] is returned.
func (p *Pallet[A, BN, N]) IncrementBlockNumber() error {
	next, err := smath.Add(p.blockNumber, 1)
	if err != nil {
		return fmt.Errorf("%w: block number %d", ErrCounterOverflow, p.blockNumber)
	}
	p.blockNumber = next
	return nil
}

// IncNonce increments the nonce of [who], starting from zero for unseen
// accounts.
func (p *Pallet[A, BN, N]) IncNonce(who A) error {
	nonce := p.nonces[who]
	next, err := smath.Add(nonce, 1)
	if err != nil {
		return fmt.Errorf("%w: nonce %d of %v", ErrCounterOverflow, nonce, who)
	}
	p.nonces[who] = next
	return nil
}

// Nonce returns the nonce of [who] or zero if it was never incremented.
func (p *Pallet[A, BN, N]) Nonce(who A) N {
	return p.nonces[who]
}

// Accounts returns every account with a stored nonce, in ascending order.
func (p *Pallet[A, BN, N]) Accounts() []A {
	accounts := maps.Keys(p.nonces)
	slices.Sort(accounts)
	return accounts
}
