// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet

import (
	"errors"
	"io"
	"reflect"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}

// apiFuncs returns the exported function fields of api by name.
func apiFuncs(api *API) map[string]reflect.Value {
	v := reflect.ValueOf(api).Elem()
	out := map[string]reflect.Value{}
	for i := range v.NumField() {
		field := v.Type().Field(i)
		if field.IsExported() && field.Type.Kind() == reflect.Func {
			out[field.Name] = v.Field(i)
		}
	}
	return out
}

func TestNewLoaderBindsEverything(t *testing.T) {
	drv := newFakeDriver()
	l, err := NewLoader(drv, APIVersion1_12, drv.options(WithLogger(quietLogger()))...)
	require.NoError(t, err)

	assert.Equal(t, Subsystems(), drv.getterCalls)
	for _, v := range drv.versions {
		assert.Equal(t, APIVersion1_12, v)
	}

	assert.Equal(t, 66, l.BoundEntryPoints())
	assert.Len(t, drv.bound, 66)
	funcs := apiFuncs(&l.API)
	assert.Len(t, funcs, 66)
	for name, fn := range funcs {
		assert.Falsef(t, fn.IsNil(), "%s is not bound", name)
	}

	for _, sub := range Subsystems() {
		assert.Truef(t, l.Loaded(sub), "%s not loaded", sub)
	}
	assert.False(t, l.Loaded(numSubsystems))

	entries := l.EntryPoints()
	require.Len(t, entries, 66)
	assert.Equal(t, EntryPoint{Name: "zetMetricProgrammableGetExp",
		Subsystem: SubsystemMetricProgrammableExp, Bound: true}, entries[0])
	assert.Equal(t, EntryPoint{Name: "zetDebugGetThreadRegisterSetProperties",
		Subsystem: SubsystemDebug, Bound: true}, entries[65])

	tables := l.Tables()
	assert.Equal(t, addrOf("zetContextActivateMetricGroups"), tables.Context.ActivateMetricGroups)
	assert.Equal(t, addrOf("zetDebugAttach"), tables.Debug.Attach)

	assert.False(t, drv.closed)
	require.NoError(t, l.Close())
	assert.False(t, drv.closed, "NewLoader must not close a caller owned library")
	assert.Nil(t, l.DebugAttach)
}

func TestBoundFunctionForwardsArguments(t *testing.T) {
	drv := newFakeDriver()
	l, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
	require.NoError(t, err)

	var count uint32
	res := l.MetricGroupGet(DeviceHandle(0xd1), &count, nil)
	assert.Equal(t, ResultSuccess, res)

	require.Len(t, drv.calls, 1)
	call := drv.calls[0]
	assert.Equal(t, addrOf("zetMetricGroupGet"), call.addr)
	assert.Equal(t, DeviceHandle(0xd1), call.args[0])
	assert.Equal(t, &count, call.args[1])
}

func TestGetterFailureStopsInitialization(t *testing.T) {
	for _, failing := range Subsystems() {
		t.Run(failing.String(), func(t *testing.T) {
			drv := newFakeDriver()
			drv.results[failing] = ResultErrorUninitialized

			l, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
			require.Error(t, err)
			assert.Nil(t, l)

			var tableErr *TableError
			require.ErrorAs(t, err, &tableErr)
			assert.Equal(t, failing, tableErr.Subsystem)

			var res Result
			require.ErrorAs(t, err, &res)
			assert.Equal(t, ResultErrorUninitialized, res)
			assert.ErrorIs(t, err, ResultErrorUninitialized)

			// No later getter is attempted.
			assert.Equal(t, Subsystems()[:failing+1], drv.getterCalls)

			// Nothing of the failing table is bound.
			var ddi DDITable
			var api API
			for i := range ddi.ordered()[failing].entries(&api) {
				assert.NotContains(t, drv.bound, entryAddr(failing, i))
			}
		})
	}
}

func TestContextFailureSkipsCommandList(t *testing.T) {
	drv := newFakeDriver()
	drv.results[SubsystemContext] = ResultErrorDeviceLost

	_, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ResultErrorDeviceLost)
	assert.NotContains(t, drv.getterCalls, SubsystemCommandList)
	assert.Equal(t, SubsystemContext, drv.getterCalls[len(drv.getterCalls)-1])
	assert.Contains(t, err.Error(), "Context")
	assert.Contains(t, err.Error(), "ZE_RESULT_ERROR_DEVICE_LOST")
}

func TestMissingGetter(t *testing.T) {
	drv := newFakeDriver()
	delete(drv.symbols, SubsystemDebug.GetterSymbol())

	_, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	var tableErr *TableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, SubsystemDebug, tableErr.Subsystem)
	assert.Equal(t, ResultErrorUnsupportedFeature, tableErr.Result)
	assert.NotContains(t, drv.getterCalls, SubsystemDebug)
}

func TestNullSlotsStayNil(t *testing.T) {
	drv := newFakeDriver()
	drv.holes["zetMetricGroupCloseExp"] = true
	drv.holes["zetDebugResume"] = true

	l, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
	require.NoError(t, err)

	assert.Equal(t, 64, l.BoundEntryPoints())
	assert.Nil(t, l.MetricGroupCloseExp)
	assert.Nil(t, l.DebugResume)
	assert.NotNil(t, l.MetricGroupDestroyExp)
	assert.NotNil(t, l.DebugInterrupt)
	assert.True(t, l.Loaded(SubsystemDebug))

	for _, e := range l.EntryPoints() {
		if e.Name == "zetDebugResume" {
			assert.False(t, e.Bound)
		}
	}
}

func TestBestEffortExperimental(t *testing.T) {
	tests := map[string]struct {
		subsystem Subsystem
		result    Result
		missing   bool
		wantErr   bool
	}{
		"unsupported feature": {
			subsystem: SubsystemMetricTracerExp,
			result:    ResultErrorUnsupportedFeature,
		},
		"unsupported version": {
			subsystem: SubsystemMetricGroupExp,
			result:    ResultErrorUnsupportedVersion,
		},
		"missing getter": {
			subsystem: SubsystemTracerExp,
			missing:   true,
		},
		"other failure still aborts": {
			subsystem: SubsystemMetricDecoderExp,
			result:    ResultErrorDeviceLost,
			wantErr:   true,
		},
		"core subsystem still aborts": {
			subsystem: SubsystemDevice,
			result:    ResultErrorUnsupportedFeature,
			wantErr:   true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			drv := newFakeDriver()
			if tc.missing {
				delete(drv.symbols, tc.subsystem.GetterSymbol())
			} else {
				drv.results[tc.subsystem] = tc.result
			}

			l, err := NewLoader(drv, APIVersionCurrent,
				drv.options(WithLogger(quietLogger()), WithBestEffortExperimental())...)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.False(t, l.Loaded(tc.subsystem))
			var ddi DDITable
			var api API
			skipped := len(ddi.ordered()[tc.subsystem].entries(&api))
			assert.Equal(t, 66-skipped, l.BoundEntryPoints())
			assert.Len(t, l.EntryPoints(), 66)

			// The scribbled table was cleared.
			tables := l.Tables()
			tbl := tables.ordered()[tc.subsystem]
			for _, e := range tbl.entries(&api) {
				assert.Zero(t, e.addr)
			}
			assert.True(t, l.Loaded(SubsystemDebug))
		})
	}
}

func TestDefaultIsAllOrNothing(t *testing.T) {
	drv := newFakeDriver()
	drv.results[SubsystemMetricProgrammableExp] = ResultErrorUnsupportedFeature

	_, err := NewLoader(drv, APIVersionCurrent, drv.options(WithLogger(quietLogger()))...)
	require.Error(t, err)
	assert.Equal(t, []Subsystem{SubsystemMetricProgrammableExp}, drv.getterCalls)
}

func TestNewLoaderNilLibrary(t *testing.T) {
	_, err := NewLoader(nil, APIVersionCurrent)
	require.Error(t, err)
}

func TestInitializeLibraryNotFound(t *testing.T) {
	_, err := Initialize(APIVersionCurrent,
		WithLogger(quietLogger()),
		WithLibraryPaths("/nonexistent/libze_loader.so.1", "/nonexistent/libze_loader.so"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "/nonexistent/libze_loader.so.1")
}

func TestTableErrorUnwrap(t *testing.T) {
	err := error(&TableError{Subsystem: SubsystemModule, Result: ResultErrorInvalidArgument})
	assert.ErrorIs(t, err, ResultErrorInvalidArgument)
	assert.NotErrorIs(t, err, ErrSymbolNotFound)
	assert.Equal(t, "fetching Module table: ZE_RESULT_ERROR_INVALID_ARGUMENT", err.Error())
}

func TestSkippable(t *testing.T) {
	assert.True(t, skippable(&TableError{Result: ResultErrorUnsupportedVersion}))
	assert.True(t, skippable(&TableError{Result: ResultErrorUnsupportedFeature}))
	assert.True(t, skippable(&TableError{Result: ResultErrorUnsupportedFeature, Err: ErrSymbolNotFound}))
	assert.False(t, skippable(&TableError{Result: ResultErrorUninitialized}))
	assert.False(t, skippable(errors.New("other")))
}

func TestSubsystems(t *testing.T) {
	subs := Subsystems()
	require.Len(t, subs, 18)
	assert.Equal(t, "zetGetMetricProgrammableExpProcAddrTable", subs[0].GetterSymbol())
	assert.Equal(t, "zetGetDebugProcAddrTable", subs[17].GetterSymbol())
	assert.Equal(t, SubsystemContext, subs[5])
	assert.Equal(t, SubsystemCommandList, subs[6])

	var experimental []Subsystem
	for _, s := range subs {
		if s.Experimental() {
			experimental = append(experimental, s)
		}
	}
	assert.Equal(t, []Subsystem{
		SubsystemMetricProgrammableExp, SubsystemMetricTracerExp, SubsystemMetricDecoderExp,
		SubsystemDeviceExp, SubsystemMetricExp, SubsystemMetricGroupExp, SubsystemTracerExp,
	}, experimental)

	assert.Equal(t, "Subsystem(invalid)", Subsystem(-1).String())
	assert.Empty(t, numSubsystems.GetterSymbol())
}
