// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build (darwin || linux) && (amd64 || arm64)

package zet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterAllSignatures binds every entry point with purego. purego
// only builds trampolines at registration time, so the fake addresses are
// never jumped to.
func TestRegisterAllSignatures(t *testing.T) {
	drv := newFakeDriver()
	opts := []Option{
		WithLogger(quietLogger()),
		func(o *options) { o.invoke = drv.invoke },
	}
	l, err := NewLoader(drv, APIVersionCurrent, opts...)
	require.NoError(t, err)
	assert.Equal(t, 66, l.BoundEntryPoints())

	for name, fn := range apiFuncs(&l.API) {
		assert.Falsef(t, fn.IsNil(), "%s is not bound", name)
	}
}

func TestRegisterFuncRecoversPanic(t *testing.T) {
	// purego panics when not handed a pointer to a func.
	err := registerFunc(func() Result { return ResultSuccess }, 0x1000)
	assert.Error(t, err)
}
