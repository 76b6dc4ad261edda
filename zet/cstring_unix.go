// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "golang.org/x/sys/unix"

// BytePtrFromString returns a pointer to a NUL-terminated copy of s for
// const char* parameters. It fails if s contains a NUL byte.
func BytePtrFromString(s string) (*byte, error) {
	return unix.BytePtrFromString(s)
}

// BytePtrToString reads a NUL-terminated string written by the driver.
func BytePtrToString(p *byte) string {
	return unix.BytePtrToString(p)
}
