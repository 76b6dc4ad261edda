// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

// Subsystem identifies one proc-address table exposed by the loader.
// The declaration order is the order in which tables are fetched.
type Subsystem int

const (
	SubsystemMetricProgrammableExp Subsystem = iota
	SubsystemMetricTracerExp
	SubsystemMetricDecoderExp
	SubsystemDevice
	SubsystemDeviceExp
	SubsystemContext
	SubsystemCommandList
	SubsystemModule
	SubsystemKernel
	SubsystemMetric
	SubsystemMetricExp
	SubsystemMetricGroup
	SubsystemMetricGroupExp
	SubsystemMetricStreamer
	SubsystemMetricQueryPool
	SubsystemMetricQuery
	SubsystemTracerExp
	SubsystemDebug

	numSubsystems
)

var subsystemInfo = [numSubsystems]struct {
	name         string
	experimental bool
}{
	SubsystemMetricProgrammableExp: {"MetricProgrammableExp", true},
	SubsystemMetricTracerExp:       {"MetricTracerExp", true},
	SubsystemMetricDecoderExp:      {"MetricDecoderExp", true},
	SubsystemDevice:                {"Device", false},
	SubsystemDeviceExp:             {"DeviceExp", true},
	SubsystemContext:               {"Context", false},
	SubsystemCommandList:           {"CommandList", false},
	SubsystemModule:                {"Module", false},
	SubsystemKernel:                {"Kernel", false},
	SubsystemMetric:                {"Metric", false},
	SubsystemMetricExp:             {"MetricExp", true},
	SubsystemMetricGroup:           {"MetricGroup", false},
	SubsystemMetricGroupExp:        {"MetricGroupExp", true},
	SubsystemMetricStreamer:        {"MetricStreamer", false},
	SubsystemMetricQueryPool:       {"MetricQueryPool", false},
	SubsystemMetricQuery:           {"MetricQuery", false},
	SubsystemTracerExp:             {"TracerExp", true},
	SubsystemDebug:                 {"Debug", false},
}

// Subsystems returns every subsystem in fetch order.
func Subsystems() []Subsystem {
	s := make([]Subsystem, numSubsystems)
	for i := range s {
		s[i] = Subsystem(i)
	}
	return s
}

func (s Subsystem) valid() bool {
	return s >= 0 && s < numSubsystems
}

func (s Subsystem) String() string {
	if !s.valid() {
		return "Subsystem(invalid)"
	}
	return subsystemInfo[s].name
}

// GetterSymbol is the exported name of the native table getter.
func (s Subsystem) GetterSymbol() string {
	if !s.valid() {
		return ""
	}
	return "zetGet" + subsystemInfo[s].name + "ProcAddrTable"
}

// Experimental reports whether the subsystem belongs to an experimental
// extension.
func (s Subsystem) Experimental() bool {
	return s.valid() && subsystemInfo[s].experimental
}
