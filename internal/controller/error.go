// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package controller // import "github.com/canonical/kobuk-gfx-level-zero/internal/controller"

import (
	"errors"

	"github.com/canonical/kobuk-gfx-level-zero/zet"
)

// Exit codes returned by the CLI for controller failures.
const (
	ExitFailure         = 1
	ExitInvalidConfig   = 2
	ExitLibraryNotFound = 3
	ExitTableFailure    = 4
)

// ErrorWithExitCode provides an error with an exit code
// Used to be able to return errors with the exit code the CLI is expected to
// return when exiting.
type ErrorWithExitCode struct {
	error
	code int
}

func (e ErrorWithExitCode) Code() int {
	return e.code
}

func (e ErrorWithExitCode) Unwrap() error {
	return e.error
}

// withExitCode picks the exit code matching a loader initialization error.
func withExitCode(err error) ErrorWithExitCode {
	var tableErr *zet.TableError
	switch {
	case errors.Is(err, zet.ErrLibraryNotFound):
		return ErrorWithExitCode{err, ExitLibraryNotFound}
	case errors.As(err, &tableErr):
		return ErrorWithExitCode{err, ExitTableFailure}
	default:
		return ErrorWithExitCode{err, ExitFailure}
	}
}
