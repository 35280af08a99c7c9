// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package balances implements the account ledger of the runtime.
package balances

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Pallet maps accounts of type [A] to balances of type [B]. Accounts that were
// never written read as zero.
type Pallet[A cmp.Ordered, B constraints.Unsigned] struct {
	balances map[A]B
}

func New[A cmp.Ordered, B constraints.Unsigned]() *Pallet[A, B] {
	return &Pallet[A, B]{
		balances: make(map[A]B),
	}
}

// SetBalance overwrites the balance of [who]. A zero [amount] still stores
// the key.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances[who] = amount
}

// Balance returns the balance of [who] or zero if it has never been set.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances[who]
}

// Transfer moves [amount] from [from] to [to]. Both balances are computed
// before either is written, so a failed transfer leaves the ledger untouched.
func (p *Pallet[A, B]) Transfer(from A, to A, amount B) error {
	fromBal := p.Balance(from)
	newFromBal, err := smath.Sub(fromBal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%v, amount=%d)",
			ErrInsufficientBalance,
			fromBal,
			from,
			amount,
		)
	}

	// Crediting the pre-debit balance of the same account would mint
	// [amount] out of thin air.
	if from == to {
		return nil
	}

	toBal := p.Balance(to)
	newToBal, err := smath.Add(toBal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%v, amount=%d)",
			ErrBalanceOverflow,
			toBal,
			to,
			amount,
		)
	}

	p.SetBalance(from, newFromBal)
	p.SetBalance(to, newToBal)
	return nil
}

// TotalIssuance returns the sum of all stored balances. It fails with
// [ErrBalanceOverflow] if the sum does not fit in [B].
func (p *Pallet[A, B]) TotalIssuance() (B, error) {
	var total B
	for who, bal := range p.balances {
		next, err := smath.Add(total, bal)
		if err != nil {
			return 0, fmt.Errorf("%w: total issuance exceeded at %v", ErrBalanceOverflow, who)
		}
		total = next
	}
	return total, nil
}

// Accounts returns every account with a stored entry, in ascending order.
func (p *Pallet[A, B]) Accounts() []A {
	accounts := maps.Keys(p.balances)
	slices.Sort(accounts)
	return accounts
}

// Len is the number of stored entries, including zero balances.
func (p *Pallet[A, B]) Len() int {
	return len(p.balances)
}
