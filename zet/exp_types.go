// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"
	"unsafe"
)

// Experimental extension names as advertised by the driver.
const (
	APITracingExpName                 = "ZET_experimental_api_tracing"
	ConcurrentMetricGroupsExpName     = "ZET_experimental_concurrent_metric_groups"
	MetricTracerExpName               = "ZET_experimental_metric_tracer"
	MultiMetricsExpName               = "ZET_experimental_calculate_multiple_metrics"
	GlobalMetricsTimestampsExpName    = "ZET_experimental_global_metric_timestamps"
	ExportMetricsDataExpName          = "ZET_experimental_metric_export_data"
	ProgrammableMetricsExpName        = "ZET_experimental_programmable_metrics"
)

// Extension versions. Every extension is at 1.0 except programmable
// metrics, which is at 1.1.
const (
	APITracingExpVersion1_0                   = APIVersion1_0
	APITracingExpVersionCurrent               = APIVersion1_0
	ConcurrentMetricGroupsExpVersion1_0       = APIVersion1_0
	ConcurrentMetricGroupsExpVersionCurrent   = APIVersion1_0
	MetricTracerExpVersion1_0                 = APIVersion1_0
	MetricTracerExpVersionCurrent             = APIVersion1_0
	CalculateMultipleMetricsExpVersion1_0     = APIVersion1_0
	CalculateMultipleMetricsExpVersionCurrent = APIVersion1_0
	MetricGlobalTimestampsExpVersion1_0       = APIVersion1_0
	MetricGlobalTimestampsExpVersionCurrent   = APIVersion1_0
	ExportMetricDataExpVersion1_0             = APIVersion1_0
	ExportMetricDataExpVersionCurrent         = APIVersion1_0
	MetricProgrammableExpVersion1_1           = APIVersion1_1
	MetricProgrammableExpVersionCurrent       = APIVersion1_1
)

// TracerExpDesc configures TracerExpCreate.
type TracerExpDesc struct {
	SType StructureType
	PNext unsafe.Pointer
	// PUserData is handed back to every prologue and epilogue callback.
	PUserData unsafe.Pointer
}

// MetricTracerExpDesc configures MetricTracerCreateExp.
type MetricTracerExpDesc struct {
	SType             StructureType
	PNext             unsafe.Pointer
	NotifyEveryNBytes uint32
}

// MetricEntryExp is one decoded metric tracer record.
type MetricEntryExp struct {
	Value       Value
	TimeStamp   uint64
	MetricIndex uint32
	OnSubdevice Bool
	SubdeviceID uint32
}

// MetricGroupTypeExpFlags is a bitmask of zet_metric_group_type_exp_flag_t.
type MetricGroupTypeExpFlags uint32

const (
	MetricGroupTypeExpFlagExportDMABuf MetricGroupTypeExpFlags = 1 << 0
	MetricGroupTypeExpFlagUserCreated  MetricGroupTypeExpFlags = 1 << 1
	MetricGroupTypeExpFlagOther        MetricGroupTypeExpFlags = 1 << 2
)

func (f MetricGroupTypeExpFlags) Has(flag MetricGroupTypeExpFlags) bool {
	return f&flag == flag
}

func (f MetricGroupTypeExpFlags) String() string {
	return fmt.Sprintf("0x%x", uint32(f))
}

// MetricGroupTypeExp extends MetricGroupProperties through PNext.
type MetricGroupTypeExp struct {
	SType StructureType
	PNext unsafe.Pointer
	Type  MetricGroupTypeExpFlags
}

// ExportDMABufExpProperties extends MetricGroupProperties through PNext.
type ExportDMABufExpProperties struct {
	SType StructureType
	PNext unsafe.Pointer
	Fd    int32
	Size  uintptr
}

// MetricGlobalTimestampsResolutionExp extends MetricGroupProperties
// through PNext.
type MetricGlobalTimestampsResolutionExp struct {
	SType StructureType
	PNext unsafe.Pointer
	// TimerResolution is in cycles per second.
	TimerResolution    uint64
	TimestampValidBits uint64
}

const (
	MaxMetricExportDataElementNameExp        = 256
	MaxMetricExportDataElementDescriptionExp = 256
)

// MetricCalculateExpDesc configures MetricGroupCalculateMetricExportDataExp.
type MetricCalculateExpDesc struct {
	SType              StructureType
	PNext              unsafe.Pointer
	RawReportSkipCount uint32
}

const (
	MaxProgrammableMetricsElementNameExp        = 256
	MaxProgrammableMetricsElementDescriptionExp = 256
	MaxMetricGroupNamePrefixExp                 = 64
	MaxMetricProgrammableNameExp                = 128
	MaxMetricProgrammableDescriptionExp         = 128
	MaxMetricProgrammableComponentExp           = 128
	MaxMetricProgrammableParameterNameExp       = 128
	MaxMetricProgrammableValueDescriptionExp    = 128
	MaxMetricGroupNamePrefix                    = 64
)

// MetricProgrammableExpProperties is filled by
// MetricProgrammableGetPropertiesExp.
type MetricProgrammableExpProperties struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Name           [MaxMetricProgrammableNameExp]byte
	Description    [MaxMetricProgrammableDescriptionExp]byte
	Component      [MaxMetricProgrammableComponentExp]byte
	TierNumber     uint32
	Domain         uint32
	ParameterCount uint32
	SamplingType   MetricGroupSamplingTypeFlags
	SourceID       uint32
}

// MetricProgrammableParamTypeExp is the role of a programmable parameter.
type MetricProgrammableParamTypeExp uint32

const (
	MetricProgrammableParamTypeExpDisaggregation           MetricProgrammableParamTypeExp = 0
	MetricProgrammableParamTypeExpLatency                  MetricProgrammableParamTypeExp = 1
	MetricProgrammableParamTypeExpNormalizationUtilization MetricProgrammableParamTypeExp = 2
	MetricProgrammableParamTypeExpNormalizationAverage     MetricProgrammableParamTypeExp = 3
	MetricProgrammableParamTypeExpNormalizationRate        MetricProgrammableParamTypeExp = 4
	MetricProgrammableParamTypeExpNormalizationBytes       MetricProgrammableParamTypeExp = 5
	MetricProgrammableParamTypeExpGeneric                  MetricProgrammableParamTypeExp = 6
)

// ValueInfoTypeExp selects the active member of ValueInfoExp.
type ValueInfoTypeExp uint32

const (
	ValueInfoTypeExpUint32       ValueInfoTypeExp = 0
	ValueInfoTypeExpUint64       ValueInfoTypeExp = 1
	ValueInfoTypeExpFloat32      ValueInfoTypeExp = 2
	ValueInfoTypeExpFloat64      ValueInfoTypeExp = 3
	ValueInfoTypeExpBool8        ValueInfoTypeExp = 4
	ValueInfoTypeExpUint8        ValueInfoTypeExp = 5
	ValueInfoTypeExpUint16       ValueInfoTypeExp = 6
	ValueInfoTypeExpUint64Range  ValueInfoTypeExp = 7
	ValueInfoTypeExpFloat64Range ValueInfoTypeExp = 8
)

// ValueUint64RangeExp is an inclusive uint64 range.
type ValueUint64RangeExp struct {
	Ui64Min uint64
	Ui64Max uint64
}

// ValueFp64RangeExp is an inclusive float64 range.
type ValueFp64RangeExp struct {
	Fp64Min float64
	Fp64Max float64
}

// ValueInfoExp is the zet_value_info_exp_t union, sized by its range members.
type ValueInfoExp struct {
	data [2]uint64
}

func (v *ValueInfoExp) ptr() unsafe.Pointer { return unsafe.Pointer(&v.data) }

func (v *ValueInfoExp) Uint32() uint32   { return *(*uint32)(v.ptr()) }
func (v *ValueInfoExp) Uint64() uint64   { return v.data[0] }
func (v *ValueInfoExp) Float32() float32 { return *(*float32)(v.ptr()) }
func (v *ValueInfoExp) Float64() float64 { return *(*float64)(v.ptr()) }
func (v *ValueInfoExp) Bool() bool       { return (*(*Bool)(v.ptr())).IsTrue() }
func (v *ValueInfoExp) Uint8() uint8     { return *(*uint8)(v.ptr()) }
func (v *ValueInfoExp) Uint16() uint16   { return *(*uint16)(v.ptr()) }

func (v *ValueInfoExp) Uint64Range() ValueUint64RangeExp {
	return *(*ValueUint64RangeExp)(v.ptr())
}

func (v *ValueInfoExp) Float64Range() ValueFp64RangeExp {
	return *(*ValueFp64RangeExp)(v.ptr())
}

// MetricProgrammableParamInfoExp is filled by
// MetricProgrammableGetParamInfoExp.
type MetricProgrammableParamInfoExp struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Type           MetricProgrammableParamTypeExp
	Name           [MaxMetricProgrammableParameterNameExp]byte
	ValueInfoType  ValueInfoTypeExp
	DefaultValue   Value
	ValueInfoCount uint32
}

// MetricProgrammableParamValueInfoExp is filled by
// MetricProgrammableGetParamValueInfoExp.
type MetricProgrammableParamValueInfoExp struct {
	SType       StructureType
	PNext       unsafe.Pointer
	ValueInfo   ValueInfoExp
	Description [MaxMetricProgrammableValueDescriptionExp]byte
}

// MetricProgrammableParamValueExp is a parameter value passed to
// MetricCreateFromProgrammableExp.
type MetricProgrammableParamValueExp struct {
	Value Value
}
