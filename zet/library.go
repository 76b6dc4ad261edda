// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSymbolNotFound is returned when the library does not export a symbol.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrLibraryNotFound is returned when no loader library could be opened.
	ErrLibraryNotFound = errors.New("level zero loader library not found")
	// ErrUnsupportedPlatform is returned on platforms without dynamic loading.
	ErrUnsupportedPlatform = errors.New("dynamic loading is not supported on this platform")
)

// Library is a dynamically loaded shared library.
type Library interface {
	// Lookup returns the address of an exported symbol. A missing symbol
	// yields an error wrapping ErrSymbolNotFound.
	Lookup(symbol string) (uintptr, error)
	// Close releases the library handle.
	Close() error
}

// OpenLibrary loads the shared library at path. A bare file name is resolved
// by the platform's library search rules.
func OpenLibrary(path string) (Library, error) {
	return openLibrary(path)
}

// DefaultLibraryNames returns the loader library names tried by Initialize
// when no explicit path is given.
func DefaultLibraryNames() []string {
	return append([]string(nil), defaultLibraryNames...)
}

// openFirst opens the first path that loads. The attempt callback is
// invoked once per candidate with the outcome.
func openFirst(paths []string, attempt func(path string, err error)) (Library, string, error) {
	if len(paths) == 0 {
		return nil, "", ErrLibraryNotFound
	}
	var errs []error
	for _, path := range paths {
		lib, err := openLibrary(path)
		if attempt != nil {
			attempt(path, err)
		}
		if err == nil {
			return lib, path, nil
		}
		errs = append(errs, err)
	}
	return nil, "", fmt.Errorf("%w (tried %s): %w",
		ErrLibraryNotFound, strings.Join(paths, ", "), errors.Join(errs...))
}
