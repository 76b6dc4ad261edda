// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

var shutdownSignals = []os.Signal{windows.SIGINT, windows.SIGTERM}
