// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || freebsd || linux

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"

	"github.com/ebitengine/purego"
)

var defaultLibraryNames = []string{"libze_loader.so.1", "libze_loader.so"}

type dlLibrary struct {
	path   string
	handle uintptr
}

func openLibrary(path string) (Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}
	return &dlLibrary{path: path, handle: handle}, nil
}

func (l *dlLibrary) Lookup(symbol string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %v", ErrSymbolNotFound, symbol, l.path, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, symbol, l.path)
	}
	return addr, nil
}

func (l *dlLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
