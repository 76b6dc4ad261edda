// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || freebsd || linux || windows

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// registerFunc turns addr into a callable Go function stored in *fptr.
// purego only builds the trampoline here, nothing is called.
func registerFunc(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register %T: %v", fptr, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}

// callGetter invokes a zetGet*ProcAddrTable function.
func callGetter(addr uintptr, version APIVersion, table unsafe.Pointer) Result {
	r1, _, _ := purego.SyscallN(addr, uintptr(version), uintptr(table))
	return Result(uint32(r1))
}
