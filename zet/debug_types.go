// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"
	"unsafe"
)

// ModuleDebugInfoFormat is the format returned by ModuleGetDebugInfo.
type ModuleDebugInfoFormat uint32

const ModuleDebugInfoFormatELFDwarf ModuleDebugInfoFormat = 0

// DeviceDebugPropertyFlags is a bitmask of zet_device_debug_property_flag_t.
type DeviceDebugPropertyFlags uint32

const DeviceDebugPropertyFlagAttach DeviceDebugPropertyFlags = 1 << 0

func (f DeviceDebugPropertyFlags) Has(flag DeviceDebugPropertyFlags) bool {
	return f&flag == flag
}

func (f DeviceDebugPropertyFlags) String() string {
	return fmt.Sprintf("0x%x", uint32(f))
}

// DeviceDebugProperties is filled by DeviceGetDebugProperties.
type DeviceDebugProperties struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags DeviceDebugPropertyFlags
}

// DebugConfig is passed to DebugAttach.
type DebugConfig struct {
	// Pid is the host process identifier.
	Pid uint32
}

// DebugEventFlags is a bitmask of zet_debug_event_flag_t.
type DebugEventFlags uint32

// DebugEventFlagNeedAck marks events that must be acknowledged with
// DebugAcknowledgeEvent.
const DebugEventFlagNeedAck DebugEventFlags = 1 << 0

func (f DebugEventFlags) Has(flag DebugEventFlags) bool {
	return f&flag == flag
}

func (f DebugEventFlags) String() string {
	return fmt.Sprintf("0x%x", uint32(f))
}

// DebugEventType is the kind of a DebugEvent.
type DebugEventType uint32

const (
	DebugEventTypeInvalid           DebugEventType = 0
	DebugEventTypeDetached          DebugEventType = 1
	DebugEventTypeProcessEntry      DebugEventType = 2
	DebugEventTypeProcessExit       DebugEventType = 3
	DebugEventTypeModuleLoad        DebugEventType = 4
	DebugEventTypeModuleUnload      DebugEventType = 5
	DebugEventTypeThreadStopped     DebugEventType = 6
	DebugEventTypeThreadUnavailable DebugEventType = 7
	DebugEventTypePageFault         DebugEventType = 8
)

var debugEventTypeNames = [...]string{
	DebugEventTypeInvalid:           "INVALID",
	DebugEventTypeDetached:          "DETACHED",
	DebugEventTypeProcessEntry:      "PROCESS_ENTRY",
	DebugEventTypeProcessExit:       "PROCESS_EXIT",
	DebugEventTypeModuleLoad:        "MODULE_LOAD",
	DebugEventTypeModuleUnload:      "MODULE_UNLOAD",
	DebugEventTypeThreadStopped:     "THREAD_STOPPED",
	DebugEventTypeThreadUnavailable: "THREAD_UNAVAILABLE",
	DebugEventTypePageFault:         "PAGE_FAULT",
}

func (t DebugEventType) String() string {
	if int(t) < len(debugEventTypeNames) {
		return debugEventTypeNames[t]
	}
	return fmt.Sprintf("DebugEventType(%d)", uint32(t))
}

// DebugDetachReason explains a DebugEventTypeDetached event.
type DebugDetachReason uint32

const (
	DebugDetachReasonInvalid  DebugDetachReason = 0
	DebugDetachReasonHostExit DebugDetachReason = 1
)

// DebugPageFaultReason explains a DebugEventTypePageFault event.
type DebugPageFaultReason uint32

const (
	DebugPageFaultReasonInvalid         DebugPageFaultReason = 0
	DebugPageFaultReasonMappingError    DebugPageFaultReason = 1
	DebugPageFaultReasonPermissionError DebugPageFaultReason = 2
)

// DebugEventInfoDetached is the payload of DebugEventTypeDetached.
type DebugEventInfoDetached struct {
	Reason DebugDetachReason
}

// DebugEventInfoModule is the payload of DebugEventTypeModuleLoad and
// DebugEventTypeModuleUnload.
type DebugEventInfoModule struct {
	Format ModuleDebugInfoFormat
	// ModuleBegin is inclusive, ModuleEnd exclusive.
	ModuleBegin uint64
	ModuleEnd   uint64
	Load        uint64
}

// DebugEventInfoThreadStopped is the payload of DebugEventTypeThreadStopped
// and DebugEventTypeThreadUnavailable.
type DebugEventInfoThreadStopped struct {
	Thread DeviceThread
}

// DebugEventInfoPageFault is the payload of DebugEventTypePageFault.
type DebugEventInfoPageFault struct {
	Address uint64
	Mask    uint64
	Reason  DebugPageFaultReason
}

// DebugEventInfo is the zet_debug_event_info_t union. Its size is that of the
// largest member, DebugEventInfoModule.
type DebugEventInfo struct {
	data [4]uint64
}

func (i *DebugEventInfo) Detached() *DebugEventInfoDetached {
	return (*DebugEventInfoDetached)(unsafe.Pointer(&i.data))
}

func (i *DebugEventInfo) Module() *DebugEventInfoModule {
	return (*DebugEventInfoModule)(unsafe.Pointer(&i.data))
}

func (i *DebugEventInfo) Thread() *DebugEventInfoThreadStopped {
	return (*DebugEventInfoThreadStopped)(unsafe.Pointer(&i.data))
}

func (i *DebugEventInfo) PageFault() *DebugEventInfoPageFault {
	return (*DebugEventInfoPageFault)(unsafe.Pointer(&i.data))
}

// DebugEvent is read with DebugReadEvent.
type DebugEvent struct {
	Type  DebugEventType
	Flags DebugEventFlags
	Info  DebugEventInfo
}

// DebugMemorySpaceType selects the address space of a memory access.
type DebugMemorySpaceType uint32

const (
	DebugMemorySpaceTypeDefault DebugMemorySpaceType = 0
	DebugMemorySpaceTypeSLM     DebugMemorySpaceType = 1
	DebugMemorySpaceTypeELF     DebugMemorySpaceType = 2
)

// DebugMemorySpaceDesc describes the target of DebugReadMemory and
// DebugWriteMemory.
type DebugMemorySpaceDesc struct {
	SType   StructureType
	PNext   unsafe.Pointer
	Type    DebugMemorySpaceType
	Address uint64
}

// DebugRegsetFlags is a bitmask of zet_debug_regset_flag_t.
type DebugRegsetFlags uint32

const (
	DebugRegsetFlagReadable  DebugRegsetFlags = 1 << 0
	DebugRegsetFlagWriteable DebugRegsetFlags = 1 << 1
)

func (f DebugRegsetFlags) Has(flag DebugRegsetFlags) bool {
	return f&flag == flag
}

func (f DebugRegsetFlags) String() string {
	return fmt.Sprintf("0x%x", uint32(f))
}

// DebugRegsetProperties describes one device register set.
type DebugRegsetProperties struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Type         uint32
	Version      uint32
	GeneralFlags DebugRegsetFlags
	DeviceFlags  uint32
	Count        uint32
	BitSize      uint32
	ByteSize     uint32
}
