// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"
	"unsafe"
)

const (
	MaxMetricGroupName        = 256
	MaxMetricGroupDescription = 256
	MaxMetricName             = 256
	MaxMetricDescription      = 256
	MaxMetricComponent        = 256
	MaxMetricResultUnits      = 256
)

// MetricGroupSamplingTypeFlags is a bitmask of
// zet_metric_group_sampling_type_flag_t.
type MetricGroupSamplingTypeFlags uint32

const (
	MetricGroupSamplingTypeFlagEventBased     MetricGroupSamplingTypeFlags = 1 << 0
	MetricGroupSamplingTypeFlagTimeBased      MetricGroupSamplingTypeFlags = 1 << 1
	MetricGroupSamplingTypeFlagExpTracerBased MetricGroupSamplingTypeFlags = 1 << 2
)

func (f MetricGroupSamplingTypeFlags) Has(flag MetricGroupSamplingTypeFlags) bool {
	return f&flag == flag
}

func (f MetricGroupSamplingTypeFlags) String() string {
	return fmt.Sprintf("0x%x", uint32(f))
}

// MetricGroupProperties is filled by MetricGroupGetProperties.
type MetricGroupProperties struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Name         [MaxMetricGroupName]byte
	Description  [MaxMetricGroupDescription]byte
	SamplingType MetricGroupSamplingTypeFlags
	// Domain groups metric groups that cannot be used simultaneously.
	Domain      uint32
	MetricCount uint32
}

// MetricType classifies a metric.
type MetricType uint32

const (
	MetricTypeDuration                    MetricType = 0
	MetricTypeEvent                       MetricType = 1
	MetricTypeEventWithRange              MetricType = 2
	MetricTypeThroughput                  MetricType = 3
	MetricTypeTimestamp                   MetricType = 4
	MetricTypeFlag                        MetricType = 5
	MetricTypeRatio                       MetricType = 6
	MetricTypeRaw                         MetricType = 7
	MetricTypeEventExpTimestamp           MetricType = 0x7ffffff9
	MetricTypeEventExpStart               MetricType = 0x7ffffffa
	MetricTypeEventExpEnd                 MetricType = 0x7ffffffb
	MetricTypeEventExpMonotonicWrapsValue MetricType = 0x7ffffffc
	MetricTypeExpExportDMABuf             MetricType = 0x7ffffffd
	// Deprecated: use MetricTypeIP.
	MetricTypeIPExp MetricType = 0x7ffffffe
	MetricTypeIP    MetricType = 0x7ffffffe
)

func (t MetricType) String() string {
	switch t {
	case MetricTypeDuration:
		return "DURATION"
	case MetricTypeEvent:
		return "EVENT"
	case MetricTypeEventWithRange:
		return "EVENT_WITH_RANGE"
	case MetricTypeThroughput:
		return "THROUGHPUT"
	case MetricTypeTimestamp:
		return "TIMESTAMP"
	case MetricTypeFlag:
		return "FLAG"
	case MetricTypeRatio:
		return "RATIO"
	case MetricTypeRaw:
		return "RAW"
	case MetricTypeEventExpTimestamp:
		return "EVENT_EXP_TIMESTAMP"
	case MetricTypeEventExpStart:
		return "EVENT_EXP_START"
	case MetricTypeEventExpEnd:
		return "EVENT_EXP_END"
	case MetricTypeEventExpMonotonicWrapsValue:
		return "EVENT_EXP_MONOTONIC_WRAPS_VALUE"
	case MetricTypeExpExportDMABuf:
		return "EXP_EXPORT_DMA_BUF"
	case MetricTypeIP:
		return "IP"
	}
	return fmt.Sprintf("MetricType(0x%x)", uint32(t))
}

// MetricGroupCalculationType selects what MetricGroupCalculateMetricValues
// produces.
type MetricGroupCalculationType uint32

const (
	MetricGroupCalculationTypeMetricValues    MetricGroupCalculationType = 0
	MetricGroupCalculationTypeMaxMetricValues MetricGroupCalculationType = 1
)

// MetricProperties is filled by MetricGetProperties.
type MetricProperties struct {
	SType       StructureType
	PNext       unsafe.Pointer
	Name        [MaxMetricName]byte
	Description [MaxMetricDescription]byte
	Component   [MaxMetricComponent]byte
	TierNumber  uint32
	MetricType  MetricType
	ResultType  ValueType
	ResultUnits [MaxMetricResultUnits]byte
}

// MetricStreamerDesc configures MetricStreamerOpen.
type MetricStreamerDesc struct {
	SType               StructureType
	PNext               unsafe.Pointer
	NotifyEveryNReports uint32
	// SamplingPeriod is in nanoseconds.
	SamplingPeriod uint32
}

// MetricQueryPoolType selects the kind of queries a pool holds.
type MetricQueryPoolType uint32

const (
	MetricQueryPoolTypePerformance MetricQueryPoolType = 0
	MetricQueryPoolTypeExecution   MetricQueryPoolType = 1
)

// MetricQueryPoolDesc configures MetricQueryPoolCreate.
type MetricQueryPoolDesc struct {
	SType StructureType
	PNext unsafe.Pointer
	Type  MetricQueryPoolType
	Count uint32
}

// ProfileFlags is a bitmask of zet_profile_flag_t.
type ProfileFlags uint32

const (
	ProfileFlagRegisterReallocation ProfileFlags = 1 << 0
	ProfileFlagFreeRegisterInfo     ProfileFlags = 1 << 1
)

func (f ProfileFlags) Has(flag ProfileFlags) bool {
	return f&flag == flag
}

func (f ProfileFlags) String() string {
	return fmt.Sprintf("0x%x", uint32(f))
}

// ProfileProperties is filled by KernelGetProfileInfo.
type ProfileProperties struct {
	SType     StructureType
	PNext     unsafe.Pointer
	Flags     ProfileFlags
	NumTokens uint32
}

// ProfileTokenType identifies a profile token.
type ProfileTokenType uint32

const ProfileTokenTypeFreeRegister ProfileTokenType = 0

// ProfileFreeRegisterToken is followed in memory by Count
// ProfileRegisterSequence entries.
type ProfileFreeRegisterToken struct {
	Type  ProfileTokenType
	Size  uint32
	Count uint32
}

// ProfileRegisterSequence is a run of free registers.
type ProfileRegisterSequence struct {
	Start uint32
	Count uint32
}
