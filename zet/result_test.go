// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	assert.True(t, ResultSuccess.Succeeded())
	assert.NoError(t, ResultSuccess.Err())
	assert.False(t, ResultNotReady.Succeeded())

	err := ResultErrorUnsupportedFeature.Err()
	require.Error(t, err)
	assert.Equal(t, "ZE_RESULT_ERROR_UNSUPPORTED_FEATURE", err.Error())

	wrapped := fmt.Errorf("metric group: %w", err)
	var res Result
	require.True(t, errors.As(wrapped, &res))
	assert.Equal(t, ResultErrorUnsupportedFeature, res)

	assert.Equal(t, "ze_result_t(0x12345)", Result(0x12345).String())
	assert.Equal(t, Result(0x7ffffffe), ResultErrorUnknown)
}

func TestAPIVersion(t *testing.T) {
	assert.Equal(t, APIVersion(0x1000c), APIVersion1_12)
	assert.Equal(t, APIVersion1_12, APIVersionCurrent)
	assert.Equal(t, APIVersion1_5, MakeVersion(1, 5))
	assert.Equal(t, uint16(1), APIVersion1_12.Major())
	assert.Equal(t, uint16(12), APIVersion1_12.Minor())
	assert.Equal(t, "1.12", APIVersion1_12.String())

	tests := map[string]struct {
		input   string
		want    APIVersion
		wantErr bool
	}{
		"empty":     {input: "", want: APIVersionCurrent},
		"current":   {input: "current", want: APIVersionCurrent},
		"plain":     {input: "1.3", want: APIVersion1_3},
		"v prefix":  {input: "v1.11", want: APIVersion1_11},
		"no minor":  {input: "1", wantErr: true},
		"garbage":   {input: "one.two", wantErr: true},
		"too large": {input: "70000.1", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAPIVersion(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBool(t *testing.T) {
	assert.Equal(t, True, BoolOf(true))
	assert.Equal(t, False, BoolOf(false))
	assert.True(t, Bool(2).IsTrue())
	assert.False(t, False.IsTrue())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "METRIC_GROUP_PROPERTIES", StructureTypeMetricGroupProperties.String())
	assert.Equal(t, "THREAD_STOPPED", DebugEventTypeThreadStopped.String())
	assert.Equal(t, "MODULE_BUILD_LOG", HandleModuleBuildLog.String())
	assert.Equal(t, "zel_handle_type_t(99)", HandleType(99).String())
	assert.Equal(t, "1.2.3", LibVersion{1, 2, 3}.String())
}
