// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "unsafe"

// The System V and AAPCS64 calling conventions pass a 16 byte aggregate of
// integers in two general purpose registers. ze_device_thread_t is lowered
// into those two words here so no struct-by-value support is needed from the
// FFI layer.

// threadArg is the register image of a DeviceThread.
type threadArg = uint64

func lowerThread(t DeviceThread) (lo, hi threadArg) {
	lo = uint64(t.Slice) | uint64(t.Subslice)<<32
	hi = uint64(t.EU) | uint64(t.Thread)<<32
	return lo, hi
}

// threadFuncs holds the raw bindings of entry points that take a
// ze_device_thread_t by value.
type threadFuncs struct {
	debugInterrupt                      func(DebugSessionHandle, threadArg, threadArg) Result
	debugResume                         func(DebugSessionHandle, threadArg, threadArg) Result
	debugReadMemory                     func(DebugSessionHandle, threadArg, threadArg, *DebugMemorySpaceDesc, uintptr, unsafe.Pointer) Result
	debugWriteMemory                    func(DebugSessionHandle, threadArg, threadArg, *DebugMemorySpaceDesc, uintptr, unsafe.Pointer) Result
	debugReadRegisters                  func(DebugSessionHandle, threadArg, threadArg, uint32, uint32, uint32, unsafe.Pointer) Result
	debugWriteRegisters                 func(DebugSessionHandle, threadArg, threadArg, uint32, uint32, uint32, unsafe.Pointer) Result
	debugGetThreadRegisterSetProperties func(DebugSessionHandle, threadArg, threadArg, *uint32, *DebugRegsetProperties) Result
}

// install exposes the raw bindings under their native signatures.
func (f *threadFuncs) install(api *API) {
	if fn := f.debugInterrupt; fn != nil {
		api.DebugInterrupt = func(s DebugSessionHandle, t DeviceThread) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi)
		}
	}
	if fn := f.debugResume; fn != nil {
		api.DebugResume = func(s DebugSessionHandle, t DeviceThread) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi)
		}
	}
	if fn := f.debugReadMemory; fn != nil {
		api.DebugReadMemory = func(s DebugSessionHandle, t DeviceThread,
			desc *DebugMemorySpaceDesc, size uintptr, buf unsafe.Pointer) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi, desc, size, buf)
		}
	}
	if fn := f.debugWriteMemory; fn != nil {
		api.DebugWriteMemory = func(s DebugSessionHandle, t DeviceThread,
			desc *DebugMemorySpaceDesc, size uintptr, buf unsafe.Pointer) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi, desc, size, buf)
		}
	}
	if fn := f.debugReadRegisters; fn != nil {
		api.DebugReadRegisters = func(s DebugSessionHandle, t DeviceThread,
			typ, start, count uint32, values unsafe.Pointer) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi, typ, start, count, values)
		}
	}
	if fn := f.debugWriteRegisters; fn != nil {
		api.DebugWriteRegisters = func(s DebugSessionHandle, t DeviceThread,
			typ, start, count uint32, values unsafe.Pointer) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi, typ, start, count, values)
		}
	}
	if fn := f.debugGetThreadRegisterSetProperties; fn != nil {
		api.DebugGetThreadRegisterSetProperties = func(s DebugSessionHandle, t DeviceThread,
			count *uint32, props *DebugRegsetProperties) Result {
			lo, hi := lowerThread(t)
			return fn(s, lo, hi, count, props)
		}
	}
}
