// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSystem(t *testing.T) {
	require := require.New(t)
	p := New[string, uint32, uint32]()

	require.Zero(p.BlockNumber())
	require.Zero(p.Nonce("alice"))
	require.Empty(p.Accounts())
}

func TestIncrementBlockNumber(t *testing.T) {
	require := require.New(t)
	p := New[string, uint32, uint32]()

	for i := uint32(1); i <= 3; i++ {
		require.NoError(p.IncrementBlockNumber())
		require.Equal(i, p.BlockNumber())
	}
}

func TestIncrementBlockNumberOverflow(t *testing.T) {
	require := require.New(t)
	p := New[string, uint8, uint8]()

	for i := 0; i < math.MaxUint8; i++ {
		require.NoError(p.IncrementBlockNumber())
	}
	require.Equal(uint8(math.MaxUint8), p.BlockNumber())

	require.ErrorIs(p.IncrementBlockNumber(), ErrCounterOverflow)
	require.Equal(uint8(math.MaxUint8), p.BlockNumber())
}

func TestIncNonce(t *testing.T) {
	tests := []struct {
		name  string
		incs  int
		other string
	}{
		{name: "single", incs: 1, other: "bob"},
		{name: "several", incs: 5, other: "charlie"},
		{name: "none", incs: 0, other: "bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			p := New[string, uint32, uint32]()

			for i := 0; i < tt.incs; i++ {
				require.NoError(p.IncNonce("alice"))
			}
			require.Equal(uint32(tt.incs), p.Nonce("alice"))
			require.Zero(p.Nonce(tt.other))
			require.Zero(p.BlockNumber())
		})
	}
}

func TestIncNonceOverflow(t *testing.T) {
	require := require.New(t)
	p := New[string, uint32, uint8]()

	for i := 0; i < math.MaxUint8; i++ {
		require.NoError(p.IncNonce("alice"))
	}
	require.ErrorIs(p.IncNonce("alice"), ErrCounterOverflow)
	require.Equal(uint8(math.MaxUint8), p.Nonce("alice"))

	require.NoError(p.IncNonce("bob"))
	require.Equal(uint8(1), p.Nonce("bob"))
}

func TestNonceIsPure(t *testing.T) {
	require := require.New(t)
	p := New[string, uint32, uint32]()
	require.NoError(p.IncNonce("bob"))

	for i := 0; i < 3; i++ {
		require.Zero(p.Nonce("alice"))
		require.Equal(uint32(1), p.Nonce("bob"))
	}
	require.Equal([]string{"bob"}, p.Accounts())
}
