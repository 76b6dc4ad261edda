// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin && !freebsd && !linux && !windows

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import "unsafe"

var defaultLibraryNames = []string{"libze_loader.so.1"}

func openLibrary(string) (Library, error) {
	return nil, ErrUnsupportedPlatform
}

func registerFunc(any, uintptr) error {
	return ErrUnsupportedPlatform
}

func callGetter(uintptr, APIVersion, unsafe.Pointer) Result {
	return ResultErrorUnsupportedFeature
}
