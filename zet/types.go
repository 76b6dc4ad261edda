// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"
	"math"
	"unsafe"
)

// Bool is the native 8-bit boolean (ze_bool_t).
type Bool uint8

const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// IsTrue reports whether b is non-zero.
func (b Bool) IsTrue() bool {
	return b != 0
}

// DeviceThread addresses a single hardware thread (ze_device_thread_t).
// UINT32_MAX in a field selects all of that level.
type DeviceThread struct {
	Slice    uint32
	Subslice uint32
	EU       uint32
	Thread   uint32
}

// AllThreads is a wildcard in every field.
const AllThreads = math.MaxUint32

// StructureType tags tagged structures (zet_structure_type_t).
type StructureType uint32

const (
	StructureTypeMetricGroupProperties   StructureType = 0x1
	StructureTypeMetricProperties        StructureType = 0x2
	StructureTypeMetricStreamerDesc      StructureType = 0x3
	StructureTypeMetricQueryPoolDesc     StructureType = 0x4
	StructureTypeProfileProperties       StructureType = 0x5
	StructureTypeDeviceDebugProperties   StructureType = 0x6
	StructureTypeDebugMemorySpaceDesc    StructureType = 0x7
	StructureTypeDebugRegsetProperties   StructureType = 0x8
	// Deprecated: use StructureTypeMetricGlobalTimestampsResolutionExp.
	StructureTypeGlobalMetricsTimestampsExpProperties StructureType = 0x9
	StructureTypeMetricGlobalTimestampsResolutionExp  StructureType = 0x9
	StructureTypeTracerExpDesc                        StructureType = 0x00010001
	// Deprecated: use StructureTypeMetricCalculateExpDesc.
	StructureTypeMetricsCalculateExpDesc              StructureType = 0x00010002
	StructureTypeMetricCalculateExpDesc               StructureType = 0x00010002
	StructureTypeMetricProgrammableExpProperties      StructureType = 0x00010003
	StructureTypeMetricProgrammableParamInfoExp       StructureType = 0x00010004
	StructureTypeMetricProgrammableParamValueInfoExp  StructureType = 0x00010005
	StructureTypeMetricGroupTypeExp                   StructureType = 0x00010006
	StructureTypeExportDMABufExpProperties            StructureType = 0x00010007
	StructureTypeMetricTracerExpDesc                  StructureType = 0x00010008
)

var structureTypeNames = map[StructureType]string{
	StructureTypeMetricGroupProperties:               "METRIC_GROUP_PROPERTIES",
	StructureTypeMetricProperties:                    "METRIC_PROPERTIES",
	StructureTypeMetricStreamerDesc:                  "METRIC_STREAMER_DESC",
	StructureTypeMetricQueryPoolDesc:                 "METRIC_QUERY_POOL_DESC",
	StructureTypeProfileProperties:                   "PROFILE_PROPERTIES",
	StructureTypeDeviceDebugProperties:               "DEVICE_DEBUG_PROPERTIES",
	StructureTypeDebugMemorySpaceDesc:                "DEBUG_MEMORY_SPACE_DESC",
	StructureTypeDebugRegsetProperties:               "DEBUG_REGSET_PROPERTIES",
	StructureTypeMetricGlobalTimestampsResolutionExp: "METRIC_GLOBAL_TIMESTAMPS_RESOLUTION_EXP",
	StructureTypeTracerExpDesc:                       "TRACER_EXP_DESC",
	StructureTypeMetricCalculateExpDesc:              "METRIC_CALCULATE_EXP_DESC",
	StructureTypeMetricProgrammableExpProperties:     "METRIC_PROGRAMMABLE_EXP_PROPERTIES",
	StructureTypeMetricProgrammableParamInfoExp:      "METRIC_PROGRAMMABLE_PARAM_INFO_EXP",
	StructureTypeMetricProgrammableParamValueInfoExp: "METRIC_PROGRAMMABLE_PARAM_VALUE_INFO_EXP",
	StructureTypeMetricGroupTypeExp:                  "METRIC_GROUP_TYPE_EXP",
	StructureTypeExportDMABufExpProperties:           "EXPORT_DMA_EXP_PROPERTIES",
	StructureTypeMetricTracerExpDesc:                 "METRIC_TRACER_EXP_DESC",
}

func (t StructureType) String() string {
	if name, ok := structureTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("StructureType(0x%x)", uint32(t))
}

// BaseProperties is the common header of all properties structures.
type BaseProperties struct {
	SType StructureType
	// PNext is nil or points to an extension structure that itself starts
	// with SType and PNext.
	PNext unsafe.Pointer
}

// BaseDesc is the common header of all descriptor structures.
type BaseDesc struct {
	SType StructureType
	PNext unsafe.Pointer
}

// ValueType selects the active member of a Value (zet_value_type_t).
type ValueType uint32

const (
	ValueTypeUint32  ValueType = 0
	ValueTypeUint64  ValueType = 1
	ValueTypeFloat32 ValueType = 2
	ValueTypeFloat64 ValueType = 3
	ValueTypeBool8   ValueType = 4
	ValueTypeString  ValueType = 5
	ValueTypeUint8   ValueType = 6
	ValueTypeUint16  ValueType = 7
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeUint32:
		return "UINT32"
	case ValueTypeUint64:
		return "UINT64"
	case ValueTypeFloat32:
		return "FLOAT32"
	case ValueTypeFloat64:
		return "FLOAT64"
	case ValueTypeBool8:
		return "BOOL8"
	case ValueTypeString:
		return "STRING"
	case ValueTypeUint8:
		return "UINT8"
	case ValueTypeUint16:
		return "UINT16"
	}
	return fmt.Sprintf("ValueType(%d)", uint32(t))
}

// Value is the zet_value_t union: 8 bytes, 8-byte aligned. Members overlay
// the start of the storage, so the accessors are endian-neutral.
type Value struct {
	data uint64
}

func (v *Value) ptr() unsafe.Pointer { return unsafe.Pointer(&v.data) }

func (v *Value) Uint32() uint32   { return *(*uint32)(v.ptr()) }
func (v *Value) Uint64() uint64   { return v.data }
func (v *Value) Float32() float32 { return *(*float32)(v.ptr()) }
func (v *Value) Float64() float64 { return *(*float64)(v.ptr()) }
func (v *Value) Bool() bool       { return (*(*Bool)(v.ptr())).IsTrue() }
func (v *Value) Uint8() uint8     { return *(*uint8)(v.ptr()) }
func (v *Value) Uint16() uint16   { return *(*uint16)(v.ptr()) }

func (v *Value) SetUint32(x uint32) {
	v.data = 0
	*(*uint32)(v.ptr()) = x
}

func (v *Value) SetUint64(x uint64) { v.data = x }

func (v *Value) SetFloat32(x float32) {
	v.data = 0
	*(*float32)(v.ptr()) = x
}

func (v *Value) SetFloat64(x float64) { *(*float64)(v.ptr()) = x }

func (v *Value) SetBool(x bool) {
	v.data = 0
	*(*Bool)(v.ptr()) = BoolOf(x)
}

// TypedValue is a Value tagged with its active member (zet_typed_value_t).
type TypedValue struct {
	Type  ValueType
	Value Value
}

// Interface returns the active member as a Go value. STRING values carry a
// native pointer and are returned as uintptr.
func (tv *TypedValue) Interface() any {
	switch tv.Type {
	case ValueTypeUint32:
		return tv.Value.Uint32()
	case ValueTypeUint64:
		return tv.Value.Uint64()
	case ValueTypeFloat32:
		return tv.Value.Float32()
	case ValueTypeFloat64:
		return tv.Value.Float64()
	case ValueTypeBool8:
		return tv.Value.Bool()
	case ValueTypeUint8:
		return tv.Value.Uint8()
	case ValueTypeUint16:
		return tv.Value.Uint16()
	default:
		return uintptr(tv.Value.Uint64())
	}
}

// GoString converts a fixed-size, NUL-terminated native char array.
func GoString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
