// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var defaultLibraryNames = []string{"ze_loader.dll"}

type dllLibrary struct {
	path   string
	handle windows.Handle
}

func openLibrary(path string) (Library, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("LoadLibrary %s: %w", path, err)
	}
	return &dllLibrary{path: path, handle: handle}, nil
}

func (l *dllLibrary) Lookup(symbol string) (uintptr, error) {
	addr, err := windows.GetProcAddress(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %v", ErrSymbolNotFound, symbol, l.path, err)
	}
	return addr, nil
}

func (l *dllLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(l.handle)
	l.handle = 0
	return err
}
