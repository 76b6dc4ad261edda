// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "fmt"

// Result is the status code returned by every native entry point
// (ze_result_t). Any value other than ResultSuccess is a failure, so Result
// also implements error.
type Result uint32

const (
	ResultSuccess                           Result = 0
	ResultNotReady                          Result = 1
	ResultErrorDeviceLost                   Result = 0x70000001
	ResultErrorOutOfHostMemory              Result = 0x70000002
	ResultErrorOutOfDeviceMemory            Result = 0x70000003
	ResultErrorModuleBuildFailure           Result = 0x70000004
	ResultErrorModuleLinkFailure            Result = 0x70000005
	ResultErrorDeviceRequiresReset          Result = 0x70000006
	ResultErrorDeviceInLowPowerState        Result = 0x70000007
	ResultExpErrorDeviceIsNotVertex         Result = 0x7ff00001
	ResultExpErrorVertexIsNotDevice         Result = 0x7ff00002
	ResultExpErrorRemoteDevice              Result = 0x7ff00003
	ResultExpErrorOperandsIncompatible      Result = 0x7ff00004
	ResultExpRTASBuildRetry                 Result = 0x7ff00005
	ResultExpRTASBuildDeferred              Result = 0x7ff00006
	ResultErrorInsufficientPermissions      Result = 0x70010000
	ResultErrorNotAvailable                 Result = 0x70010001
	ResultErrorDependencyUnavailable        Result = 0x70020000
	ResultWarningDroppedData                Result = 0x70020001
	ResultErrorUninitialized                Result = 0x78000001
	ResultErrorUnsupportedVersion           Result = 0x78000002
	ResultErrorUnsupportedFeature           Result = 0x78000003
	ResultErrorInvalidArgument              Result = 0x78000004
	ResultErrorInvalidNullHandle            Result = 0x78000005
	ResultErrorHandleObjectInUse            Result = 0x78000006
	ResultErrorInvalidNullPointer           Result = 0x78000007
	ResultErrorInvalidSize                  Result = 0x78000008
	ResultErrorUnsupportedSize              Result = 0x78000009
	ResultErrorUnsupportedAlignment         Result = 0x7800000a
	ResultErrorInvalidSynchronizationObject Result = 0x7800000b
	ResultErrorInvalidEnumeration           Result = 0x7800000c
	ResultErrorUnsupportedEnumeration       Result = 0x7800000d
	ResultErrorUnsupportedImageFormat       Result = 0x7800000e
	ResultErrorInvalidNativeBinary          Result = 0x7800000f
	ResultErrorInvalidGlobalName            Result = 0x78000010
	ResultErrorInvalidKernelName            Result = 0x78000011
	ResultErrorInvalidFunctionName          Result = 0x78000012
	ResultErrorInvalidGroupSizeDimension    Result = 0x78000013
	ResultErrorInvalidGlobalWidthDimension  Result = 0x78000014
	ResultErrorInvalidKernelArgumentIndex   Result = 0x78000015
	ResultErrorInvalidKernelArgumentSize    Result = 0x78000016
	ResultErrorInvalidKernelAttributeValue  Result = 0x78000017
	ResultErrorInvalidModuleUnlinked        Result = 0x78000018
	ResultErrorInvalidCommandListType       Result = 0x78000019
	ResultErrorOverlappingRegions           Result = 0x7800001a
	ResultWarningActionRequired             Result = 0x7800001b
	ResultErrorUnknown                      Result = 0x7ffffffe
)

var resultNames = map[Result]string{
	ResultSuccess:                           "ZE_RESULT_SUCCESS",
	ResultNotReady:                          "ZE_RESULT_NOT_READY",
	ResultErrorDeviceLost:                   "ZE_RESULT_ERROR_DEVICE_LOST",
	ResultErrorOutOfHostMemory:              "ZE_RESULT_ERROR_OUT_OF_HOST_MEMORY",
	ResultErrorOutOfDeviceMemory:            "ZE_RESULT_ERROR_OUT_OF_DEVICE_MEMORY",
	ResultErrorModuleBuildFailure:           "ZE_RESULT_ERROR_MODULE_BUILD_FAILURE",
	ResultErrorModuleLinkFailure:            "ZE_RESULT_ERROR_MODULE_LINK_FAILURE",
	ResultErrorDeviceRequiresReset:          "ZE_RESULT_ERROR_DEVICE_REQUIRES_RESET",
	ResultErrorDeviceInLowPowerState:        "ZE_RESULT_ERROR_DEVICE_IN_LOW_POWER_STATE",
	ResultExpErrorDeviceIsNotVertex:         "ZE_RESULT_EXP_ERROR_DEVICE_IS_NOT_VERTEX",
	ResultExpErrorVertexIsNotDevice:         "ZE_RESULT_EXP_ERROR_VERTEX_IS_NOT_DEVICE",
	ResultExpErrorRemoteDevice:              "ZE_RESULT_EXP_ERROR_REMOTE_DEVICE",
	ResultExpErrorOperandsIncompatible:      "ZE_RESULT_EXP_ERROR_OPERANDS_INCOMPATIBLE",
	ResultExpRTASBuildRetry:                 "ZE_RESULT_EXP_RTAS_BUILD_RETRY",
	ResultExpRTASBuildDeferred:              "ZE_RESULT_EXP_RTAS_BUILD_DEFERRED",
	ResultErrorInsufficientPermissions:      "ZE_RESULT_ERROR_INSUFFICIENT_PERMISSIONS",
	ResultErrorNotAvailable:                 "ZE_RESULT_ERROR_NOT_AVAILABLE",
	ResultErrorDependencyUnavailable:        "ZE_RESULT_ERROR_DEPENDENCY_UNAVAILABLE",
	ResultWarningDroppedData:                "ZE_RESULT_WARNING_DROPPED_DATA",
	ResultErrorUninitialized:                "ZE_RESULT_ERROR_UNINITIALIZED",
	ResultErrorUnsupportedVersion:           "ZE_RESULT_ERROR_UNSUPPORTED_VERSION",
	ResultErrorUnsupportedFeature:           "ZE_RESULT_ERROR_UNSUPPORTED_FEATURE",
	ResultErrorInvalidArgument:              "ZE_RESULT_ERROR_INVALID_ARGUMENT",
	ResultErrorInvalidNullHandle:            "ZE_RESULT_ERROR_INVALID_NULL_HANDLE",
	ResultErrorHandleObjectInUse:            "ZE_RESULT_ERROR_HANDLE_OBJECT_IN_USE",
	ResultErrorInvalidNullPointer:           "ZE_RESULT_ERROR_INVALID_NULL_POINTER",
	ResultErrorInvalidSize:                  "ZE_RESULT_ERROR_INVALID_SIZE",
	ResultErrorUnsupportedSize:              "ZE_RESULT_ERROR_UNSUPPORTED_SIZE",
	ResultErrorUnsupportedAlignment:         "ZE_RESULT_ERROR_UNSUPPORTED_ALIGNMENT",
	ResultErrorInvalidSynchronizationObject: "ZE_RESULT_ERROR_INVALID_SYNCHRONIZATION_OBJECT",
	ResultErrorInvalidEnumeration:           "ZE_RESULT_ERROR_INVALID_ENUMERATION",
	ResultErrorUnsupportedEnumeration:       "ZE_RESULT_ERROR_UNSUPPORTED_ENUMERATION",
	ResultErrorUnsupportedImageFormat:       "ZE_RESULT_ERROR_UNSUPPORTED_IMAGE_FORMAT",
	ResultErrorInvalidNativeBinary:          "ZE_RESULT_ERROR_INVALID_NATIVE_BINARY",
	ResultErrorInvalidGlobalName:            "ZE_RESULT_ERROR_INVALID_GLOBAL_NAME",
	ResultErrorInvalidKernelName:            "ZE_RESULT_ERROR_INVALID_KERNEL_NAME",
	ResultErrorInvalidFunctionName:          "ZE_RESULT_ERROR_INVALID_FUNCTION_NAME",
	ResultErrorInvalidGroupSizeDimension:    "ZE_RESULT_ERROR_INVALID_GROUP_SIZE_DIMENSION",
	ResultErrorInvalidGlobalWidthDimension:  "ZE_RESULT_ERROR_INVALID_GLOBAL_WIDTH_DIMENSION",
	ResultErrorInvalidKernelArgumentIndex:   "ZE_RESULT_ERROR_INVALID_KERNEL_ARGUMENT_INDEX",
	ResultErrorInvalidKernelArgumentSize:    "ZE_RESULT_ERROR_INVALID_KERNEL_ARGUMENT_SIZE",
	ResultErrorInvalidKernelAttributeValue:  "ZE_RESULT_ERROR_INVALID_KERNEL_ATTRIBUTE_VALUE",
	ResultErrorInvalidModuleUnlinked:        "ZE_RESULT_ERROR_INVALID_MODULE_UNLINKED",
	ResultErrorInvalidCommandListType:       "ZE_RESULT_ERROR_INVALID_COMMAND_LIST_TYPE",
	ResultErrorOverlappingRegions:           "ZE_RESULT_ERROR_OVERLAPPING_REGIONS",
	ResultWarningActionRequired:             "ZE_RESULT_WARNING_ACTION_REQUIRED",
	ResultErrorUnknown:                      "ZE_RESULT_ERROR_UNKNOWN",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ze_result_t(0x%x)", uint32(r))
}

// Error implements the error interface so that a failing code can be
// returned and wrapped as is.
func (r Result) Error() string {
	return r.String()
}

// Succeeded reports whether r is ResultSuccess.
func (r Result) Succeeded() bool {
	return r == ResultSuccess
}

// Err returns nil for ResultSuccess and r otherwise. It avoids the classic
// non-nil interface holding a zero Result.
func (r Result) Err() error {
	if r == ResultSuccess {
		return nil
	}
	return r
}
