// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "unsafe"

// API holds one typed function per native entry point, named after the
// native function without its "zet" prefix. A nil field means the driver did
// not provide that entry point.
type API struct {
	// MetricProgrammableExp
	MetricProgrammableGetExp               func(hDevice DeviceHandle, pCount *uint32, phMetricProgrammables *MetricProgrammableExpHandle) Result
	MetricProgrammableGetPropertiesExp     func(hMetricProgrammable MetricProgrammableExpHandle, pProperties *MetricProgrammableExpProperties) Result
	MetricProgrammableGetParamInfoExp      func(hMetricProgrammable MetricProgrammableExpHandle, pParameterCount *uint32, pParameterInfo *MetricProgrammableParamInfoExp) Result
	MetricProgrammableGetParamValueInfoExp func(hMetricProgrammable MetricProgrammableExpHandle, parameterOrdinal uint32, pValueInfoCount *uint32, pValueInfo *MetricProgrammableParamValueInfoExp) Result

	// MetricTracerExp
	MetricTracerCreateExp   func(hContext ContextHandle, hDevice DeviceHandle, metricGroupCount uint32, phMetricGroups *MetricGroupHandle, desc *MetricTracerExpDesc, hNotificationEvent EventHandle, phMetricTracer *MetricTracerExpHandle) Result
	MetricTracerDestroyExp  func(hMetricTracer MetricTracerExpHandle) Result
	MetricTracerEnableExp   func(hMetricTracer MetricTracerExpHandle, synchronous Bool) Result
	MetricTracerDisableExp  func(hMetricTracer MetricTracerExpHandle, synchronous Bool) Result
	MetricTracerReadDataExp func(hMetricTracer MetricTracerExpHandle, pRawDataSize *uintptr, pRawData *uint8) Result
	MetricTracerDecodeExp   func(phMetricDecoder MetricDecoderExpHandle, pRawDataSize *uintptr, pRawData *uint8, metricsCount uint32, phMetrics *MetricHandle, pSetCount *uint32, pMetricEntriesCountPerSet *uint32, pMetricEntriesCount *uint32, pMetricEntries *MetricEntryExp) Result

	// MetricDecoderExp
	MetricDecoderCreateExp              func(hMetricTracer MetricTracerExpHandle, phMetricDecoder *MetricDecoderExpHandle) Result
	MetricDecoderDestroyExp             func(phMetricDecoder MetricDecoderExpHandle) Result
	MetricDecoderGetDecodableMetricsExp func(hMetricDecoder MetricDecoderExpHandle, pCount *uint32, phMetrics *MetricHandle) Result

	// Device
	DeviceGetDebugProperties func(hDevice DeviceHandle, pDebugProperties *DeviceDebugProperties) Result

	// DeviceExp
	DeviceGetConcurrentMetricGroupsExp     func(hDevice DeviceHandle, metricGroupCount uint32, phMetricGroups *MetricGroupHandle, pMetricGroupsCountPerConcurrentGroup *uint32, pConcurrentGroupCount *uint32) Result
	DeviceCreateMetricGroupsFromMetricsExp func(hDevice DeviceHandle, metricCount uint32, phMetrics *MetricHandle, pMetricGroupNamePrefix *byte, pDescription *byte, pMetricGroupCount *uint32, phMetricGroup *MetricGroupHandle) Result

	// Context
	ContextActivateMetricGroups func(hContext ContextHandle, hDevice DeviceHandle, count uint32, phMetricGroups *MetricGroupHandle) Result

	// CommandList
	CommandListAppendMetricStreamerMarker func(hCommandList CommandListHandle, hMetricStreamer MetricStreamerHandle, value uint32) Result
	CommandListAppendMetricQueryBegin     func(hCommandList CommandListHandle, hMetricQuery MetricQueryHandle) Result
	CommandListAppendMetricQueryEnd       func(hCommandList CommandListHandle, hMetricQuery MetricQueryHandle, hSignalEvent EventHandle, numWaitEvents uint32, phWaitEvents *EventHandle) Result
	CommandListAppendMetricMemoryBarrier  func(hCommandList CommandListHandle) Result

	// Module
	ModuleGetDebugInfo func(hModule ModuleHandle, format ModuleDebugInfoFormat, pSize *uintptr, pDebugInfo *uint8) Result

	// Kernel
	KernelGetProfileInfo func(hKernel KernelHandle, pProfileProperties *ProfileProperties) Result

	// Metric
	MetricGet           func(hMetricGroup MetricGroupHandle, pCount *uint32, phMetrics *MetricHandle) Result
	MetricGetProperties func(hMetric MetricHandle, pProperties *MetricProperties) Result

	// MetricExp
	MetricCreateFromProgrammableExp  func(hMetricProgrammable MetricProgrammableExpHandle, pParameterValues *MetricProgrammableParamValueExp, parameterCount uint32, pName *byte, pDescription *byte, pMetricHandleCount *uint32, phMetricHandles *MetricHandle) Result
	MetricDestroyExp                 func(hMetric MetricHandle) Result
	MetricCreateFromProgrammableExp2 func(hMetricProgrammable MetricProgrammableExpHandle, parameterCount uint32, pParameterValues *MetricProgrammableParamValueExp, pName *byte, pDescription *byte, pMetricHandleCount *uint32, phMetricHandles *MetricHandle) Result

	// MetricGroup
	MetricGroupGet                   func(hDevice DeviceHandle, pCount *uint32, phMetricGroups *MetricGroupHandle) Result
	MetricGroupGetProperties         func(hMetricGroup MetricGroupHandle, pProperties *MetricGroupProperties) Result
	MetricGroupCalculateMetricValues func(hMetricGroup MetricGroupHandle, calculationType MetricGroupCalculationType, rawDataSize uintptr, pRawData *uint8, pMetricValueCount *uint32, pMetricValues *TypedValue) Result

	// MetricGroupExp
	MetricGroupCalculateMultipleMetricValuesExp func(hMetricGroup MetricGroupHandle, calculationType MetricGroupCalculationType, rawDataSize uintptr, pRawData *uint8, pSetCount *uint32, pTotalMetricValueCount *uint32, pMetricCounts *uint32, pMetricValues *TypedValue) Result
	MetricGroupGetGlobalTimestampsExp           func(hMetricGroup MetricGroupHandle, synchronizedWithHost Bool, globalTimestamp *uint64, metricTimestamp *uint64) Result
	MetricGroupGetExportDataExp                 func(hMetricGroup MetricGroupHandle, pRawData *uint8, rawDataSize uintptr, pExportDataSize *uintptr, pExportData *uint8) Result
	MetricGroupCalculateMetricExportDataExp     func(hDriver DriverHandle, calculationType MetricGroupCalculationType, exportDataSize uintptr, pExportData *uint8, pCalculateDescriptor *MetricCalculateExpDesc, pSetCount *uint32, pTotalMetricValueCount *uint32, pMetricCounts *uint32, pMetricValues *TypedValue) Result
	MetricGroupCreateExp                        func(hDevice DeviceHandle, pName *byte, pDescription *byte, samplingType MetricGroupSamplingTypeFlags, phMetricGroup *MetricGroupHandle) Result
	MetricGroupAddMetricExp                     func(hMetricGroup MetricGroupHandle, hMetric MetricHandle, pErrorStringSize *uintptr, pErrorString *byte) Result
	MetricGroupRemoveMetricExp                  func(hMetricGroup MetricGroupHandle, hMetric MetricHandle) Result
	MetricGroupCloseExp                         func(hMetricGroup MetricGroupHandle) Result
	MetricGroupDestroyExp                       func(hMetricGroup MetricGroupHandle) Result

	// MetricStreamer
	MetricStreamerOpen     func(hContext ContextHandle, hDevice DeviceHandle, hMetricGroup MetricGroupHandle, desc *MetricStreamerDesc, hNotificationEvent EventHandle, phMetricStreamer *MetricStreamerHandle) Result
	MetricStreamerClose    func(hMetricStreamer MetricStreamerHandle) Result
	MetricStreamerReadData func(hMetricStreamer MetricStreamerHandle, maxReportCount uint32, pRawDataSize *uintptr, pRawData *uint8) Result

	// MetricQueryPool
	MetricQueryPoolCreate  func(hContext ContextHandle, hDevice DeviceHandle, hMetricGroup MetricGroupHandle, desc *MetricQueryPoolDesc, phMetricQueryPool *MetricQueryPoolHandle) Result
	MetricQueryPoolDestroy func(hMetricQueryPool MetricQueryPoolHandle) Result

	// MetricQuery
	MetricQueryCreate  func(hMetricQueryPool MetricQueryPoolHandle, index uint32, phMetricQuery *MetricQueryHandle) Result
	MetricQueryDestroy func(hMetricQuery MetricQueryHandle) Result
	MetricQueryReset   func(hMetricQuery MetricQueryHandle) Result
	MetricQueryGetData func(hMetricQuery MetricQueryHandle, pRawDataSize *uintptr, pRawData *uint8) Result

	// TracerExp
	TracerExpCreate       func(hContext ContextHandle, desc *TracerExpDesc, phTracer *TracerExpHandle) Result
	TracerExpDestroy      func(hTracer TracerExpHandle) Result
	TracerExpSetPrologues func(hTracer TracerExpHandle, pCoreCbs unsafe.Pointer) Result
	TracerExpSetEpilogues func(hTracer TracerExpHandle, pCoreCbs unsafe.Pointer) Result
	TracerExpSetEnabled   func(hTracer TracerExpHandle, enable Bool) Result

	// Debug
	DebugAttach                         func(hDevice DeviceHandle, config *DebugConfig, phDebug *DebugSessionHandle) Result
	DebugDetach                         func(hDebug DebugSessionHandle) Result
	DebugReadEvent                      func(hDebug DebugSessionHandle, timeout uint64, event *DebugEvent) Result
	DebugAcknowledgeEvent               func(hDebug DebugSessionHandle, event *DebugEvent) Result
	DebugInterrupt                      func(hDebug DebugSessionHandle, thread DeviceThread) Result
	DebugResume                         func(hDebug DebugSessionHandle, thread DeviceThread) Result
	DebugReadMemory                     func(hDebug DebugSessionHandle, thread DeviceThread, desc *DebugMemorySpaceDesc, size uintptr, buffer unsafe.Pointer) Result
	DebugWriteMemory                    func(hDebug DebugSessionHandle, thread DeviceThread, desc *DebugMemorySpaceDesc, size uintptr, buffer unsafe.Pointer) Result
	DebugGetRegisterSetProperties       func(hDevice DeviceHandle, pCount *uint32, pRegisterSetProperties *DebugRegsetProperties) Result
	DebugReadRegisters                  func(hDebug DebugSessionHandle, thread DeviceThread, typ uint32, start uint32, count uint32, pRegisterValues unsafe.Pointer) Result
	DebugWriteRegisters                 func(hDebug DebugSessionHandle, thread DeviceThread, typ uint32, start uint32, count uint32, pRegisterValues unsafe.Pointer) Result
	DebugGetThreadRegisterSetProperties func(hDebug DebugSessionHandle, thread DeviceThread, pCount *uint32, pRegisterSetProperties *DebugRegsetProperties) Result

	thread threadFuncs
}
