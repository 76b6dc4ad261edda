// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package zet

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerThread(t *testing.T) {
	lo, hi := lowerThread(DeviceThread{Slice: 1, Subslice: 2, EU: 3, Thread: 4})
	assert.Equal(t, uint64(2)<<32|1, lo)
	assert.Equal(t, uint64(4)<<32|3, hi)

	lo, hi = lowerThread(DeviceThread{Slice: AllThreads, Subslice: 0, EU: AllThreads, Thread: 0})
	assert.Equal(t, uint64(AllThreads), lo)
	assert.Equal(t, uint64(AllThreads), hi)
}

func TestThreadArgumentsAreLowered(t *testing.T) {
	drv := newFakeDriver()
	l, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
	require.NoError(t, err)

	thread := DeviceThread{Slice: 1, Subslice: 2, EU: 3, Thread: 4}
	var desc DebugMemorySpaceDesc
	buf := make([]byte, 16)

	assert.Equal(t, ResultSuccess, l.DebugInterrupt(DebugSessionHandle(7), thread))
	assert.Equal(t, ResultSuccess,
		l.DebugReadMemory(DebugSessionHandle(7), thread, &desc, uintptr(len(buf)), unsafe.Pointer(&buf[0])))
	assert.Equal(t, ResultSuccess,
		l.DebugWriteRegisters(DebugSessionHandle(7), thread, 1, 2, 3, nil))

	require.Len(t, drv.calls, 3)
	lo, hi := lowerThread(thread)

	interrupt := drv.calls[0]
	assert.Equal(t, addrOf("zetDebugInterrupt"), interrupt.addr)
	assert.Equal(t, []any{DebugSessionHandle(7), lo, hi}, interrupt.args)

	read := drv.calls[1]
	assert.Equal(t, addrOf("zetDebugReadMemory"), read.addr)
	require.Len(t, read.args, 6)
	assert.Equal(t, lo, read.args[1])
	assert.Equal(t, hi, read.args[2])
	assert.Equal(t, &desc, read.args[3])
	assert.Equal(t, uintptr(16), read.args[4])

	write := drv.calls[2]
	assert.Equal(t, addrOf("zetDebugWriteRegisters"), write.addr)
	assert.Equal(t, []any{DebugSessionHandle(7), lo, hi, uint32(1), uint32(2), uint32(3),
		unsafe.Pointer(nil)}, write.args)
}
