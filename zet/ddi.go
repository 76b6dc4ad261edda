// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "unsafe"

// procTable is implemented by every per-subsystem table. The native getter
// fills the struct in place through pointer().
type procTable interface {
	Subsystem() Subsystem
	pointer() unsafe.Pointer
	entries(api *API) []entry
	reset()
}

// entry pairs a table slot with the API field it is bound to.
type entry struct {
	name string
	addr uintptr
	fn   any
}

// MetricProgrammableExpTable mirrors _zet_metric_programmable_exp_dditable_t.
type MetricProgrammableExpTable struct {
	GetExp               uintptr
	GetPropertiesExp     uintptr
	GetParamInfoExp      uintptr
	GetParamValueInfoExp uintptr
}

func (t *MetricProgrammableExpTable) Subsystem() Subsystem { return SubsystemMetricProgrammableExp }

func (t *MetricProgrammableExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricProgrammableExpTable) reset() { *t = MetricProgrammableExpTable{} }

func (t *MetricProgrammableExpTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricProgrammableGetExp", t.GetExp, &api.MetricProgrammableGetExp},
		{"zetMetricProgrammableGetPropertiesExp", t.GetPropertiesExp, &api.MetricProgrammableGetPropertiesExp},
		{"zetMetricProgrammableGetParamInfoExp", t.GetParamInfoExp, &api.MetricProgrammableGetParamInfoExp},
		{"zetMetricProgrammableGetParamValueInfoExp", t.GetParamValueInfoExp, &api.MetricProgrammableGetParamValueInfoExp},
	}
}

// MetricTracerExpTable mirrors _zet_metric_tracer_exp_dditable_t.
type MetricTracerExpTable struct {
	CreateExp   uintptr
	DestroyExp  uintptr
	EnableExp   uintptr
	DisableExp  uintptr
	ReadDataExp uintptr
	DecodeExp   uintptr
}

func (t *MetricTracerExpTable) Subsystem() Subsystem { return SubsystemMetricTracerExp }

func (t *MetricTracerExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricTracerExpTable) reset() { *t = MetricTracerExpTable{} }

func (t *MetricTracerExpTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricTracerCreateExp", t.CreateExp, &api.MetricTracerCreateExp},
		{"zetMetricTracerDestroyExp", t.DestroyExp, &api.MetricTracerDestroyExp},
		{"zetMetricTracerEnableExp", t.EnableExp, &api.MetricTracerEnableExp},
		{"zetMetricTracerDisableExp", t.DisableExp, &api.MetricTracerDisableExp},
		{"zetMetricTracerReadDataExp", t.ReadDataExp, &api.MetricTracerReadDataExp},
		{"zetMetricTracerDecodeExp", t.DecodeExp, &api.MetricTracerDecodeExp},
	}
}

// MetricDecoderExpTable mirrors _zet_metric_decoder_exp_dditable_t.
type MetricDecoderExpTable struct {
	CreateExp              uintptr
	DestroyExp             uintptr
	GetDecodableMetricsExp uintptr
}

func (t *MetricDecoderExpTable) Subsystem() Subsystem { return SubsystemMetricDecoderExp }

func (t *MetricDecoderExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricDecoderExpTable) reset() { *t = MetricDecoderExpTable{} }

func (t *MetricDecoderExpTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricDecoderCreateExp", t.CreateExp, &api.MetricDecoderCreateExp},
		{"zetMetricDecoderDestroyExp", t.DestroyExp, &api.MetricDecoderDestroyExp},
		{"zetMetricDecoderGetDecodableMetricsExp", t.GetDecodableMetricsExp, &api.MetricDecoderGetDecodableMetricsExp},
	}
}

// DeviceTable mirrors _zet_device_dditable_t.
type DeviceTable struct {
	GetDebugProperties uintptr
}

func (t *DeviceTable) Subsystem() Subsystem { return SubsystemDevice }

func (t *DeviceTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *DeviceTable) reset() { *t = DeviceTable{} }

func (t *DeviceTable) entries(api *API) []entry {
	return []entry{
		{"zetDeviceGetDebugProperties", t.GetDebugProperties, &api.DeviceGetDebugProperties},
	}
}

// DeviceExpTable mirrors _zet_device_exp_dditable_t.
type DeviceExpTable struct {
	GetConcurrentMetricGroupsExp     uintptr
	CreateMetricGroupsFromMetricsExp uintptr
}

func (t *DeviceExpTable) Subsystem() Subsystem { return SubsystemDeviceExp }

func (t *DeviceExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *DeviceExpTable) reset() { *t = DeviceExpTable{} }

func (t *DeviceExpTable) entries(api *API) []entry {
	return []entry{
		{"zetDeviceGetConcurrentMetricGroupsExp", t.GetConcurrentMetricGroupsExp, &api.DeviceGetConcurrentMetricGroupsExp},
		{"zetDeviceCreateMetricGroupsFromMetricsExp", t.CreateMetricGroupsFromMetricsExp, &api.DeviceCreateMetricGroupsFromMetricsExp},
	}
}

// ContextTable mirrors _zet_context_dditable_t.
type ContextTable struct {
	ActivateMetricGroups uintptr
}

func (t *ContextTable) Subsystem() Subsystem { return SubsystemContext }

func (t *ContextTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *ContextTable) reset() { *t = ContextTable{} }

func (t *ContextTable) entries(api *API) []entry {
	return []entry{
		{"zetContextActivateMetricGroups", t.ActivateMetricGroups, &api.ContextActivateMetricGroups},
	}
}

// CommandListTable mirrors _zet_command_list_dditable_t.
type CommandListTable struct {
	AppendMetricStreamerMarker uintptr
	AppendMetricQueryBegin     uintptr
	AppendMetricQueryEnd       uintptr
	AppendMetricMemoryBarrier  uintptr
}

func (t *CommandListTable) Subsystem() Subsystem { return SubsystemCommandList }

func (t *CommandListTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *CommandListTable) reset() { *t = CommandListTable{} }

func (t *CommandListTable) entries(api *API) []entry {
	return []entry{
		{"zetCommandListAppendMetricStreamerMarker", t.AppendMetricStreamerMarker, &api.CommandListAppendMetricStreamerMarker},
		{"zetCommandListAppendMetricQueryBegin", t.AppendMetricQueryBegin, &api.CommandListAppendMetricQueryBegin},
		{"zetCommandListAppendMetricQueryEnd", t.AppendMetricQueryEnd, &api.CommandListAppendMetricQueryEnd},
		{"zetCommandListAppendMetricMemoryBarrier", t.AppendMetricMemoryBarrier, &api.CommandListAppendMetricMemoryBarrier},
	}
}

// ModuleTable mirrors _zet_module_dditable_t.
type ModuleTable struct {
	GetDebugInfo uintptr
}

func (t *ModuleTable) Subsystem() Subsystem { return SubsystemModule }

func (t *ModuleTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *ModuleTable) reset() { *t = ModuleTable{} }

func (t *ModuleTable) entries(api *API) []entry {
	return []entry{
		{"zetModuleGetDebugInfo", t.GetDebugInfo, &api.ModuleGetDebugInfo},
	}
}

// KernelTable mirrors _zet_kernel_dditable_t.
type KernelTable struct {
	GetProfileInfo uintptr
}

func (t *KernelTable) Subsystem() Subsystem { return SubsystemKernel }

func (t *KernelTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *KernelTable) reset() { *t = KernelTable{} }

func (t *KernelTable) entries(api *API) []entry {
	return []entry{
		{"zetKernelGetProfileInfo", t.GetProfileInfo, &api.KernelGetProfileInfo},
	}
}

// MetricTable mirrors _zet_metric_dditable_t.
type MetricTable struct {
	Get           uintptr
	GetProperties uintptr
}

func (t *MetricTable) Subsystem() Subsystem { return SubsystemMetric }

func (t *MetricTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricTable) reset() { *t = MetricTable{} }

func (t *MetricTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricGet", t.Get, &api.MetricGet},
		{"zetMetricGetProperties", t.GetProperties, &api.MetricGetProperties},
	}
}

// MetricExpTable mirrors _zet_metric_exp_dditable_t.
type MetricExpTable struct {
	CreateFromProgrammableExp  uintptr
	DestroyExp                 uintptr
	CreateFromProgrammableExp2 uintptr
}

func (t *MetricExpTable) Subsystem() Subsystem { return SubsystemMetricExp }

func (t *MetricExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricExpTable) reset() { *t = MetricExpTable{} }

func (t *MetricExpTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricCreateFromProgrammableExp", t.CreateFromProgrammableExp, &api.MetricCreateFromProgrammableExp},
		{"zetMetricDestroyExp", t.DestroyExp, &api.MetricDestroyExp},
		{"zetMetricCreateFromProgrammableExp2", t.CreateFromProgrammableExp2, &api.MetricCreateFromProgrammableExp2},
	}
}

// MetricGroupTable mirrors _zet_metric_group_dditable_t.
type MetricGroupTable struct {
	Get                   uintptr
	GetProperties         uintptr
	CalculateMetricValues uintptr
}

func (t *MetricGroupTable) Subsystem() Subsystem { return SubsystemMetricGroup }

func (t *MetricGroupTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricGroupTable) reset() { *t = MetricGroupTable{} }

func (t *MetricGroupTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricGroupGet", t.Get, &api.MetricGroupGet},
		{"zetMetricGroupGetProperties", t.GetProperties, &api.MetricGroupGetProperties},
		{"zetMetricGroupCalculateMetricValues", t.CalculateMetricValues, &api.MetricGroupCalculateMetricValues},
	}
}

// MetricGroupExpTable mirrors _zet_metric_group_exp_dditable_t.
type MetricGroupExpTable struct {
	CalculateMultipleMetricValuesExp uintptr
	GetGlobalTimestampsExp           uintptr
	GetExportDataExp                 uintptr
	CalculateMetricExportDataExp     uintptr
	CreateExp                        uintptr
	AddMetricExp                     uintptr
	RemoveMetricExp                  uintptr
	CloseExp                         uintptr
	DestroyExp                       uintptr
}

func (t *MetricGroupExpTable) Subsystem() Subsystem { return SubsystemMetricGroupExp }

func (t *MetricGroupExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricGroupExpTable) reset() { *t = MetricGroupExpTable{} }

func (t *MetricGroupExpTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricGroupCalculateMultipleMetricValuesExp", t.CalculateMultipleMetricValuesExp, &api.MetricGroupCalculateMultipleMetricValuesExp},
		{"zetMetricGroupGetGlobalTimestampsExp", t.GetGlobalTimestampsExp, &api.MetricGroupGetGlobalTimestampsExp},
		{"zetMetricGroupGetExportDataExp", t.GetExportDataExp, &api.MetricGroupGetExportDataExp},
		{"zetMetricGroupCalculateMetricExportDataExp", t.CalculateMetricExportDataExp, &api.MetricGroupCalculateMetricExportDataExp},
		{"zetMetricGroupCreateExp", t.CreateExp, &api.MetricGroupCreateExp},
		{"zetMetricGroupAddMetricExp", t.AddMetricExp, &api.MetricGroupAddMetricExp},
		{"zetMetricGroupRemoveMetricExp", t.RemoveMetricExp, &api.MetricGroupRemoveMetricExp},
		{"zetMetricGroupCloseExp", t.CloseExp, &api.MetricGroupCloseExp},
		{"zetMetricGroupDestroyExp", t.DestroyExp, &api.MetricGroupDestroyExp},
	}
}

// MetricStreamerTable mirrors _zet_metric_streamer_dditable_t.
type MetricStreamerTable struct {
	Open     uintptr
	Close    uintptr
	ReadData uintptr
}

func (t *MetricStreamerTable) Subsystem() Subsystem { return SubsystemMetricStreamer }

func (t *MetricStreamerTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricStreamerTable) reset() { *t = MetricStreamerTable{} }

func (t *MetricStreamerTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricStreamerOpen", t.Open, &api.MetricStreamerOpen},
		{"zetMetricStreamerClose", t.Close, &api.MetricStreamerClose},
		{"zetMetricStreamerReadData", t.ReadData, &api.MetricStreamerReadData},
	}
}

// MetricQueryPoolTable mirrors _zet_metric_query_pool_dditable_t.
type MetricQueryPoolTable struct {
	Create  uintptr
	Destroy uintptr
}

func (t *MetricQueryPoolTable) Subsystem() Subsystem { return SubsystemMetricQueryPool }

func (t *MetricQueryPoolTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricQueryPoolTable) reset() { *t = MetricQueryPoolTable{} }

func (t *MetricQueryPoolTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricQueryPoolCreate", t.Create, &api.MetricQueryPoolCreate},
		{"zetMetricQueryPoolDestroy", t.Destroy, &api.MetricQueryPoolDestroy},
	}
}

// MetricQueryTable mirrors _zet_metric_query_dditable_t.
type MetricQueryTable struct {
	Create  uintptr
	Destroy uintptr
	Reset   uintptr
	GetData uintptr
}

func (t *MetricQueryTable) Subsystem() Subsystem { return SubsystemMetricQuery }

func (t *MetricQueryTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *MetricQueryTable) reset() { *t = MetricQueryTable{} }

func (t *MetricQueryTable) entries(api *API) []entry {
	return []entry{
		{"zetMetricQueryCreate", t.Create, &api.MetricQueryCreate},
		{"zetMetricQueryDestroy", t.Destroy, &api.MetricQueryDestroy},
		{"zetMetricQueryReset", t.Reset, &api.MetricQueryReset},
		{"zetMetricQueryGetData", t.GetData, &api.MetricQueryGetData},
	}
}

// TracerExpTable mirrors _zet_tracer_exp_dditable_t.
type TracerExpTable struct {
	Create       uintptr
	Destroy      uintptr
	SetPrologues uintptr
	SetEpilogues uintptr
	SetEnabled   uintptr
}

func (t *TracerExpTable) Subsystem() Subsystem { return SubsystemTracerExp }

func (t *TracerExpTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *TracerExpTable) reset() { *t = TracerExpTable{} }

func (t *TracerExpTable) entries(api *API) []entry {
	return []entry{
		{"zetTracerExpCreate", t.Create, &api.TracerExpCreate},
		{"zetTracerExpDestroy", t.Destroy, &api.TracerExpDestroy},
		{"zetTracerExpSetPrologues", t.SetPrologues, &api.TracerExpSetPrologues},
		{"zetTracerExpSetEpilogues", t.SetEpilogues, &api.TracerExpSetEpilogues},
		{"zetTracerExpSetEnabled", t.SetEnabled, &api.TracerExpSetEnabled},
	}
}

// DebugTable mirrors _zet_debug_dditable_t.
type DebugTable struct {
	Attach                         uintptr
	Detach                         uintptr
	ReadEvent                      uintptr
	AcknowledgeEvent               uintptr
	Interrupt                      uintptr
	Resume                         uintptr
	ReadMemory                     uintptr
	WriteMemory                    uintptr
	GetRegisterSetProperties       uintptr
	ReadRegisters                  uintptr
	WriteRegisters                 uintptr
	GetThreadRegisterSetProperties uintptr
}

func (t *DebugTable) Subsystem() Subsystem { return SubsystemDebug }

func (t *DebugTable) pointer() unsafe.Pointer { return unsafe.Pointer(t) }

func (t *DebugTable) reset() { *t = DebugTable{} }

func (t *DebugTable) entries(api *API) []entry {
	return []entry{
		{"zetDebugAttach", t.Attach, &api.DebugAttach},
		{"zetDebugDetach", t.Detach, &api.DebugDetach},
		{"zetDebugReadEvent", t.ReadEvent, &api.DebugReadEvent},
		{"zetDebugAcknowledgeEvent", t.AcknowledgeEvent, &api.DebugAcknowledgeEvent},
		{"zetDebugInterrupt", t.Interrupt, &api.thread.debugInterrupt},
		{"zetDebugResume", t.Resume, &api.thread.debugResume},
		{"zetDebugReadMemory", t.ReadMemory, &api.thread.debugReadMemory},
		{"zetDebugWriteMemory", t.WriteMemory, &api.thread.debugWriteMemory},
		{"zetDebugGetRegisterSetProperties", t.GetRegisterSetProperties, &api.DebugGetRegisterSetProperties},
		{"zetDebugReadRegisters", t.ReadRegisters, &api.thread.debugReadRegisters},
		{"zetDebugWriteRegisters", t.WriteRegisters, &api.thread.debugWriteRegisters},
		{"zetDebugGetThreadRegisterSetProperties", t.GetThreadRegisterSetProperties, &api.thread.debugGetThreadRegisterSetProperties},
	}
}

// DDITable mirrors _zet_dditable_t: one table per subsystem.
type DDITable struct {
	MetricProgrammableExp MetricProgrammableExpTable
	MetricTracerExp       MetricTracerExpTable
	MetricDecoderExp      MetricDecoderExpTable
	Device                DeviceTable
	DeviceExp             DeviceExpTable
	Context               ContextTable
	CommandList           CommandListTable
	Module                ModuleTable
	Kernel                KernelTable
	Metric                MetricTable
	MetricExp             MetricExpTable
	MetricGroup           MetricGroupTable
	MetricGroupExp        MetricGroupExpTable
	MetricStreamer        MetricStreamerTable
	MetricQueryPool       MetricQueryPoolTable
	MetricQuery           MetricQueryTable
	TracerExp             TracerExpTable
	Debug                 DebugTable
}

// ordered returns the tables in fetch order.
func (d *DDITable) ordered() []procTable {
	return []procTable{
		&d.MetricProgrammableExp,
		&d.MetricTracerExp,
		&d.MetricDecoderExp,
		&d.Device,
		&d.DeviceExp,
		&d.Context,
		&d.CommandList,
		&d.Module,
		&d.Kernel,
		&d.Metric,
		&d.MetricExp,
		&d.MetricGroup,
		&d.MetricGroupExp,
		&d.MetricStreamer,
		&d.MetricQueryPool,
		&d.MetricQuery,
		&d.TracerExp,
		&d.Debug,
	}
}
