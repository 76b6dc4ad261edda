// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package zet binds the Level Zero tools API (metrics, program debug, API
tracing and command-list instrumentation) exported by the Level Zero loader
library.

The package mirrors the native header: handles are machine words, structures
have the exact C layout and enumerations carry the native values. Function
addresses are not looked up one by one. Instead the loader is asked for one
proc-address table per subsystem, in a fixed order, and every non-null entry
is bound to a typed Go function on [API]:

	ldr, err := zet.Initialize(zet.APIVersionCurrent)
	if err != nil {
		return err
	}
	var count uint32
	if res := ldr.MetricGroupGet(device, &count, nil); res != zet.ResultSuccess {
		return res
	}

Initialization is all-or-nothing: the first table getter that does not return
[ResultSuccess] aborts it and the error carries that code. The bound functions
call straight into the native library; their thread-safety is whatever the
driver provides.
*/
package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"
