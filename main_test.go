// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultArgAPIVersion, cfg.APIVersion)
	assert.False(t, cfg.BestEffort)
	assert.Empty(t, cfg.LibraryPaths)
	assert.False(t, cfg.Search)
	assert.NotNil(t, cfg.Fs)
	require.NoError(t, cfg.Validate())
}

func TestParseArgsSources(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "zet-probe.conf")
	require.NoError(t, os.WriteFile(conf, []byte(
		"list true\n"+
			"library /from/config/libze_loader.so.1\n"+
			"some-future-flag 42\n"), 0o644))

	t.Setenv("ZET_PROBE_API_VERSION", "1.3")
	t.Setenv("ZET_PROBE_BEST_EFFORT", "true")

	cfg, err := parseArgs([]string{
		"-config", conf,
		"-library", "/from/cli/libze_loader.so.1",
		"-v",
	})
	require.NoError(t, err)

	assert.Equal(t, "1.3", cfg.APIVersion)
	assert.True(t, cfg.BestEffort)
	assert.True(t, cfg.ListEntryPoints)
	assert.Equal(t, "/from/cli/libze_loader.so.1", cfg.LibraryPaths)
	assert.True(t, cfg.VerboseMode)
}

func TestParseArgsMissingConfig(t *testing.T) {
	cfg, err := parseArgs([]string{"-config", filepath.Join(t.TempDir(), "absent.conf")})
	require.NoError(t, err)
	assert.Equal(t, defaultArgAPIVersion, cfg.APIVersion)
}
