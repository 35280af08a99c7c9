// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidAction       = errors.New("invalid action")
	ErrMissingAccount      = errors.New("missing account")
	ErrRequireFailed       = errors.New("require failed")
	ErrInvalidOutput       = errors.New("invalid output format")
)
