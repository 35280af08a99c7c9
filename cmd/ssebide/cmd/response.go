// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ssebide/ssebide-chain/runtime"
)

type Response struct {
	// The index of the step that generated this response.
	ID     int    `json:"id"`
	Action Action `json:"action"`
	// The state after the step has completed.
	Result *Result `json:"result,omitempty"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

type Result struct {
	BlockNumber runtime.BlockNumber `json:"blockNumber"`
	Balance     *runtime.Balance    `json:"balance,omitempty"`
	Nonce       *runtime.Nonce      `json:"nonce,omitempty"`
}

func newResponse(id int, action Action) *Response {
	return &Response{
		ID:     id,
		Action: action,
	}
}

func (r *Response) setError(err error) {
	r.Error = err.Error()
}

func (r *Response) setResult(rt *runtime.Runtime, who runtime.AccountID) {
	r.Result = &Result{BlockNumber: rt.System.BlockNumber()}
	if who == "" {
		return
	}
	bal := rt.Balances.Balance(who)
	nonce := rt.System.Nonce(who)
	r.Result.Balance = &bal
	r.Result.Nonce = &nonce
}

func (r *Response) Print(w io.Writer) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
