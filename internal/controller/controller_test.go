// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/kobuk-gfx-level-zero/metrics"
	"github.com/canonical/kobuk-gfx-level-zero/zet"
)

func TestControllerStart(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "libze_loader.so.1")

	for _, tt := range []struct {
		name   string
		config *Config
		ctx    func() context.Context

		wantErr  error
		wantCode int
	}{
		{
			name:     "with an invalid api version",
			config:   &Config{APIVersion: "one.two"},
			wantCode: ExitInvalidConfig,
		},
		{
			name:     "with search globs but no search",
			config:   &Config{SearchGlobs: "/opt/*/libze_loader.so*"},
			wantCode: ExitInvalidConfig,
		},
		{
			name:     "with a missing library",
			config:   &Config{LibraryPaths: missing},
			wantErr:  zet.ErrLibraryNotFound,
			wantCode: ExitLibraryNotFound,
		},
		{
			name:   "with a cancelled context",
			config: &Config{LibraryPaths: missing},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantErr: context.Canceled,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ctlr := New(tt.config, WithOutput(&out))
			defer ctlr.Shutdown()

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			err := ctlr.Start(ctx)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantCode != 0 {
				var exitErr ErrorWithExitCode
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tt.wantCode, exitErr.Code())
			}
			assert.Empty(t, out.String())
		})
	}
}

func TestNewNilConfig(t *testing.T) {
	ctlr := New(nil)
	require.NotNil(t, ctlr.config)
	assert.Equal(t, os.Stdout, ctlr.output)
	ctlr.Shutdown()
}

func TestWithExitCode(t *testing.T) {
	tableErr := &zet.TableError{
		Subsystem: zet.Subsystems()[0],
		Result:    zet.ResultErrorUninitialized,
	}
	for _, tt := range []struct {
		name string
		err  error
		code int
	}{
		{"library not found", zet.ErrLibraryNotFound, ExitLibraryNotFound},
		{"table failure", tableErr, ExitTableFailure},
		{"wrapped table failure", errors.Join(errors.New("init"), tableErr), ExitTableFailure},
		{"other", errors.New("boom"), ExitFailure},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := withExitCode(tt.err)
			assert.Equal(t, tt.code, err.Code())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{APIVersion: "1.5"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zet.MakeVersion(1, 5), cfg.apiVersion)

	cfg = &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zet.APIVersionCurrent, cfg.apiVersion)
}

func TestLibraryPaths(t *testing.T) {
	cfg := &Config{LibraryPaths: " /a/libze_loader.so.1, ,/b/libze_loader.so "}
	assert.Equal(t, []string{"/a/libze_loader.so.1", "/b/libze_loader.so"}, cfg.libraryPaths())

	assert.Nil(t, (&Config{}).libraryPaths())
}

func TestLibraryPathsSearch(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("library search path layout is Linux specific")
	}
	t.Setenv("LD_LIBRARY_PATH", "")

	dir := t.TempDir()
	lib := filepath.Join(dir, "libze_loader.so.1")
	require.NoError(t, os.WriteFile(lib, nil, 0o644))
	resolved, err := filepath.EvalSymlinks(lib)
	require.NoError(t, err)

	cfg := &Config{
		LibraryPaths: "/explicit/libze_loader.so.1",
		Search:       true,
		SearchGlobs:  filepath.Join(dir, "libze_loader.so*"),
	}
	assert.Equal(t, []string{"/explicit/libze_loader.so.1", resolved}, cfg.libraryPaths())
}

func TestRenderSubsystems(t *testing.T) {
	subs := zet.Subsystems()
	entries := []zet.EntryPoint{
		{Name: "zetFirstA", Subsystem: subs[0], Bound: true},
		{Name: "zetFirstB", Subsystem: subs[0], Bound: true},
		{Name: "zetLastA", Subsystem: subs[len(subs)-1]},
	}
	loaded := func(s zet.Subsystem) bool { return s == subs[0] }

	var out bytes.Buffer
	renderSubsystems(&out, entries, loaded)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(subs)+1)
	assert.Contains(t, lines[0], "SUBSYSTEM")
	assert.Contains(t, lines[1], subs[0].GetterSymbol())
	assert.Contains(t, lines[1], "yes")
	assert.Contains(t, lines[1], "2/2")
	assert.Contains(t, lines[len(lines)-1], "no")
	assert.Contains(t, lines[len(lines)-1], "0/1")
}

func TestRenderEntryPoints(t *testing.T) {
	var out bytes.Buffer
	renderEntryPoints(&out, []zet.EntryPoint{
		{Name: "zetDebugAttach", Subsystem: zet.Subsystems()[0], Bound: true},
	})
	assert.Contains(t, out.String(), "ENTRY POINT")
	assert.Contains(t, out.String(), "zetDebugAttach")
	assert.Contains(t, out.String(), "true")
}

func TestRenderComponents(t *testing.T) {
	var v zet.ComponentVersion
	copy(v.ComponentName[:], "loader")
	v.SpecVersion = zet.MakeVersion(1, 12)
	v.ComponentLibVersion = zet.LibVersion{Major: 1, Minor: 17, Patch: 6}

	var out bytes.Buffer
	renderComponents(&out, []zet.ComponentVersion{v})
	assert.Contains(t, out.String(), "loader")
	assert.Contains(t, out.String(), "1.17.6")
	assert.Contains(t, out.String(), zet.MakeVersion(1, 12).String())
}

func TestRenderMetrics(t *testing.T) {
	defs := []metrics.MetricDefinition{
		{ID: metrics.IDTablesFetched, Field: "zet.tables.fetched"},
		{ID: metrics.IDInvalid, Field: "invalid"},
		{ID: metrics.IDLibraryLoadAttempts, Field: "zet.library.load_attempts"},
		{ID: metrics.IDHandleCacheHits, Field: "obsolete.field", Obsolete: true},
	}
	totals := metrics.Summary{metrics.IDTablesFetched: 18}

	var out bytes.Buffer
	renderMetrics(&out, defs, totals)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "zet.library.load_attempts")
	assert.Contains(t, lines[2], "zet.tables.fetched")
	assert.Contains(t, lines[2], "18")
	assert.NotContains(t, out.String(), "obsolete.field")
}
