// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "unsafe"

// The Microsoft x64 convention passes aggregates larger than eight bytes by
// reference to a caller-owned copy. Every wrapper below takes its own copy of
// the DeviceThread and hands the driver a pointer to it.

type threadArg = *DeviceThread

// threadFuncs holds the raw bindings of entry points that take a
// ze_device_thread_t by value.
type threadFuncs struct {
	debugInterrupt                      func(DebugSessionHandle, threadArg) Result
	debugResume                         func(DebugSessionHandle, threadArg) Result
	debugReadMemory                     func(DebugSessionHandle, threadArg, *DebugMemorySpaceDesc, uintptr, unsafe.Pointer) Result
	debugWriteMemory                    func(DebugSessionHandle, threadArg, *DebugMemorySpaceDesc, uintptr, unsafe.Pointer) Result
	debugReadRegisters                  func(DebugSessionHandle, threadArg, uint32, uint32, uint32, unsafe.Pointer) Result
	debugWriteRegisters                 func(DebugSessionHandle, threadArg, uint32, uint32, uint32, unsafe.Pointer) Result
	debugGetThreadRegisterSetProperties func(DebugSessionHandle, threadArg, *uint32, *DebugRegsetProperties) Result
}

// install exposes the raw bindings under their native signatures.
func (f *threadFuncs) install(api *API) {
	if fn := f.debugInterrupt; fn != nil {
		api.DebugInterrupt = func(s DebugSessionHandle, t DeviceThread) Result {
			return fn(s, &t)
		}
	}
	if fn := f.debugResume; fn != nil {
		api.DebugResume = func(s DebugSessionHandle, t DeviceThread) Result {
			return fn(s, &t)
		}
	}
	if fn := f.debugReadMemory; fn != nil {
		api.DebugReadMemory = func(s DebugSessionHandle, t DeviceThread,
			desc *DebugMemorySpaceDesc, size uintptr, buf unsafe.Pointer) Result {
			return fn(s, &t, desc, size, buf)
		}
	}
	if fn := f.debugWriteMemory; fn != nil {
		api.DebugWriteMemory = func(s DebugSessionHandle, t DeviceThread,
			desc *DebugMemorySpaceDesc, size uintptr, buf unsafe.Pointer) Result {
			return fn(s, &t, desc, size, buf)
		}
	}
	if fn := f.debugReadRegisters; fn != nil {
		api.DebugReadRegisters = func(s DebugSessionHandle, t DeviceThread,
			typ, start, count uint32, values unsafe.Pointer) Result {
			return fn(s, &t, typ, start, count, values)
		}
	}
	if fn := f.debugWriteRegisters; fn != nil {
		api.DebugWriteRegisters = func(s DebugSessionHandle, t DeviceThread,
			typ, start, count uint32, values unsafe.Pointer) Result {
			return fn(s, &t, typ, start, count, values)
		}
	}
	if fn := f.debugGetThreadRegisterSetProperties; fn != nil {
		api.DebugGetThreadRegisterSetProperties = func(s DebugSessionHandle, t DeviceThread,
			count *uint32, props *DebugRegsetProperties) Result {
			return fn(s, &t, count, props)
		}
	}
}
