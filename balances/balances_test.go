// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

const (
	alice   = "alice"
	bob     = "bob"
	charlie = "charlie"
)

func TestInitBalances(t *testing.T) {
	require := require.New(t)
	p := New[string, uint64]()

	require.Zero(p.Balance(alice))
	p.SetBalance(alice, 100)
	require.Equal(uint64(100), p.Balance(alice))
	require.Zero(p.Balance(bob))
}

func TestBalanceDoesNotInsert(t *testing.T) {
	require := require.New(t)
	p := New[string, uint64]()

	for i := 0; i < 3; i++ {
		require.Zero(p.Balance(alice))
	}
	require.Zero(p.Len())
	require.Empty(p.Accounts())
}

func TestSetBalanceZeroKeepsKey(t *testing.T) {
	require := require.New(t)
	p := New[string, uint64]()

	p.SetBalance(alice, 5)
	p.SetBalance(alice, 0)
	require.Zero(p.Balance(alice))
	require.Equal([]string{alice}, p.Accounts())
}

func TestTransfer(t *testing.T) {
	tests := []struct {
		name        string
		initial     map[string]uint8
		from        string
		to          string
		amount      uint8
		expectedErr error
		expected    map[string]uint8
	}{
		{
			name:     "transfer ok",
			initial:  map[string]uint8{alice: 100},
			from:     alice,
			to:       bob,
			amount:   90,
			expected: map[string]uint8{alice: 10, bob: 90},
		},
		{
			name:     "transfer entire balance",
			initial:  map[string]uint8{alice: 100, bob: 1},
			from:     alice,
			to:       bob,
			amount:   100,
			expected: map[string]uint8{alice: 0, bob: 101},
		},
		{
			name:     "zero amount",
			initial:  map[string]uint8{alice: 7},
			from:     alice,
			to:       bob,
			amount:   0,
			expected: map[string]uint8{alice: 7, bob: 0},
		},
		{
			name:        "insufficient balance",
			initial:     map[string]uint8{},
			from:        alice,
			to:          bob,
			amount:      100,
			expectedErr: ErrInsufficientBalance,
			expected:    map[string]uint8{alice: 0, bob: 0},
		},
		{
			name:        "amount exceeds balance by one",
			initial:     map[string]uint8{alice: 10, bob: 3},
			from:        alice,
			to:          bob,
			amount:      11,
			expectedErr: ErrInsufficientBalance,
			expected:    map[string]uint8{alice: 10, bob: 3},
		},
		{
			name:        "receiver overflow",
			initial:     map[string]uint8{alice: 1, bob: math.MaxUint8},
			from:        alice,
			to:          bob,
			amount:      1,
			expectedErr: ErrBalanceOverflow,
			expected:    map[string]uint8{alice: 1, bob: math.MaxUint8},
		},
		{
			name:     "self transfer",
			initial:  map[string]uint8{alice: 200},
			from:     alice,
			to:       alice,
			amount:   150,
			expected: map[string]uint8{alice: 200},
		},
		{
			name:        "self transfer insufficient",
			initial:     map[string]uint8{alice: 20},
			from:        alice,
			to:          alice,
			amount:      21,
			expectedErr: ErrInsufficientBalance,
			expected:    map[string]uint8{alice: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			p := New[string, uint8]()
			for who, bal := range tt.initial {
				p.SetBalance(who, bal)
			}
			untouched := p.Balance(charlie)

			err := p.Transfer(tt.from, tt.to, tt.amount)
			require.ErrorIs(err, tt.expectedErr)
			for who, bal := range tt.expected {
				require.Equal(bal, p.Balance(who), who)
			}
			require.Equal(untouched, p.Balance(charlie))
		})
	}
}

func TestFailedTransferLeavesLedgerUnchanged(t *testing.T) {
	require := require.New(t)
	p := New[string, uint64]()
	p.SetBalance(bob, math.MaxUint64)
	p.SetBalance(alice, 1)
	before := maps.Clone(p.balances)

	require.ErrorIs(p.Transfer(alice, bob, 1), ErrBalanceOverflow)
	require.Equal(before, p.balances)

	require.ErrorIs(p.Transfer(alice, charlie, 2), ErrInsufficientBalance)
	require.Equal(before, p.balances)
}

func TestTransferConservesSupply(t *testing.T) {
	require := require.New(t)
	p := New[string, uint64]()
	p.SetBalance(alice, 1_000)
	p.SetBalance(bob, 250)

	supply, err := p.TotalIssuance()
	require.NoError(err)
	require.Equal(uint64(1_250), supply)

	transfers := []struct {
		from, to string
		amount   uint64
	}{
		{alice, bob, 300},
		{bob, charlie, 500},
		{charlie, alice, 1},
		{alice, alice, 699},
		{charlie, charlie, 0},
	}
	for _, tr := range transfers {
		require.NoError(p.Transfer(tr.from, tr.to, tr.amount))
		total, err := p.TotalIssuance()
		require.NoError(err)
		require.Equal(supply, total)
	}
	require.Equal(uint64(701), p.Balance(alice))
	require.Equal(uint64(50), p.Balance(bob))
	require.Equal(uint64(499), p.Balance(charlie))
}

func TestTotalIssuanceOverflow(t *testing.T) {
	require := require.New(t)
	p := New[string, uint8]()
	p.SetBalance(alice, 200)
	p.SetBalance(bob, 100)

	_, err := p.TotalIssuance()
	require.ErrorIs(err, ErrBalanceOverflow)
}

func TestAccountsSorted(t *testing.T) {
	require := require.New(t)
	p := New[string, uint64]()
	p.SetBalance(charlie, 3)
	p.SetBalance(alice, 1)
	p.SetBalance(bob, 2)

	require.Equal([]string{alice, bob, charlie}, p.Accounts())
	require.Equal(3, p.Len())
}
