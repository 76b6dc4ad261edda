// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

// Opaque handles. The driver owns the objects behind them; this package only
// passes them through.
type (
	// DriverHandle is a handle to a driver instance.
	DriverHandle uintptr
	// DeviceHandle is a handle of a device object.
	DeviceHandle uintptr
	// ContextHandle is a handle of a context object.
	ContextHandle uintptr
	// CommandListHandle is a handle of a command list object.
	CommandListHandle uintptr
	// ModuleHandle is a handle of a module object.
	ModuleHandle uintptr
	// KernelHandle is a handle of a kernel (function) object.
	KernelHandle uintptr
	// EventHandle is a handle of a core API event object.
	EventHandle uintptr
	// MetricGroupHandle is a handle of a metric group object.
	MetricGroupHandle uintptr
	// MetricHandle is a handle of a metric object.
	MetricHandle uintptr
	// MetricStreamerHandle is a handle of a metric streamer object.
	MetricStreamerHandle uintptr
	// MetricQueryPoolHandle is a handle of a metric query pool object.
	MetricQueryPoolHandle uintptr
	// MetricQueryHandle is a handle of a metric query object.
	MetricQueryHandle uintptr
	// TracerExpHandle is a handle of an API tracer object.
	TracerExpHandle uintptr
	// DebugSessionHandle is a handle of a debug session.
	DebugSessionHandle uintptr
	// MetricTracerExpHandle is a handle of a metric tracer object.
	MetricTracerExpHandle uintptr
	// MetricDecoderExpHandle is a handle of a metric decoder object.
	MetricDecoderExpHandle uintptr
	// MetricProgrammableExpHandle is a handle of a programmable metric object.
	MetricProgrammableExpHandle uintptr
)
