// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"errors"
	"fmt"
)

// ErrLoaderClosed is returned by loader extension calls after Close.
var ErrLoaderClosed = errors.New("loader is closed")

// ComponentStringSize is the size of ComponentVersion.ComponentName.
const ComponentStringSize = 64

// LibVersion is a loader component's library version (zel_version_t).
type LibVersion struct {
	Major int32
	Minor int32
	Patch int32
}

func (v LibVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ComponentVersion describes one loader component, such as the loader
// itself or a validation or tracing layer (zel_component_version_t).
type ComponentVersion struct {
	ComponentName       [ComponentStringSize]byte
	SpecVersion         APIVersion
	ComponentLibVersion LibVersion
}

// Name returns the component name.
func (c *ComponentVersion) Name() string {
	return GoString(c.ComponentName[:])
}

// HandleType selects the kind of handle passed to TranslateHandle
// (zel_handle_type_t).
type HandleType uint32

const (
	HandleDriver HandleType = iota
	HandleDevice
	HandleContext
	HandleCommandQueue
	HandleCommandList
	HandleFence
	HandleEventPool
	HandleEvent
	HandleImage
	HandleModule
	HandleModuleBuildLog
	HandleKernel
	HandleSampler
	HandlePhysicalMem
)

var handleTypeNames = [...]string{
	HandleDriver:         "DRIVER",
	HandleDevice:         "DEVICE",
	HandleContext:        "CONTEXT",
	HandleCommandQueue:   "COMMAND_QUEUE",
	HandleCommandList:    "COMMAND_LIST",
	HandleFence:          "FENCE",
	HandleEventPool:      "EVENT_POOL",
	HandleEvent:          "EVENT",
	HandleImage:          "IMAGE",
	HandleModule:         "MODULE",
	HandleModuleBuildLog: "MODULE_BUILD_LOG",
	HandleKernel:         "KERNEL",
	HandleSampler:        "SAMPLER",
	HandlePhysicalMem:    "PHYSICAL_MEM",
}

func (t HandleType) String() string {
	if int(t) < len(handleTypeNames) {
		return handleTypeNames[t]
	}
	return fmt.Sprintf("zel_handle_type_t(%d)", uint32(t))
}

// zelFuncs holds the optional loader exports. A nil field means the symbol
// is not exported.
type zelFuncs struct {
	getVersions       func(numElems *uintptr, versions *ComponentVersion) Result
	translateHandle   func(typ HandleType, in uintptr, out *uintptr) Result
	enableTracing     func() Result
	disableTracing    func() Result
	checkInTeardown   func() bool
	setDriverTeardown func() Result
}

// extensions resolves the loader exports on first use.
func (l *Loader) extensions() (*zelFuncs, error) {
	l.zelMu.Lock()
	defer l.zelMu.Unlock()

	if l.zel != nil {
		return l.zel, nil
	}
	if l.lib == nil {
		return nil, ErrLoaderClosed
	}

	z := &zelFuncs{}
	for _, sym := range []struct {
		name string
		fn   any
	}{
		{"zelLoaderGetVersions", &z.getVersions},
		{"zelLoaderTranslateHandle", &z.translateHandle},
		{"zelEnableTracingLayer", &z.enableTracing},
		{"zelDisableTracingLayer", &z.disableTracing},
		{"zelCheckIsLoaderInTearDown", &z.checkInTeardown},
		{"zelSetDriverTeardown", &z.setDriverTeardown},
	} {
		addr, err := l.lib.Lookup(sym.name)
		if err != nil {
			l.log.Debugf("[zet] optional export unavailable: %v", err)
			continue
		}
		if err := l.binder(sym.fn, addr); err != nil {
			return nil, fmt.Errorf("binding %s: %w", sym.name, err)
		}
	}
	l.zel = z
	return z, nil
}

func missing(symbol string) error {
	return fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
}

// ComponentVersions returns the versions of the loader and every layer it
// has loaded.
func (l *Loader) ComponentVersions() ([]ComponentVersion, error) {
	z, err := l.extensions()
	if err != nil {
		return nil, err
	}
	if z.getVersions == nil {
		return nil, missing("zelLoaderGetVersions")
	}

	var n uintptr
	if err := z.getVersions(&n, nil).Err(); err != nil {
		return nil, fmt.Errorf("zelLoaderGetVersions: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	versions := make([]ComponentVersion, n)
	if err := z.getVersions(&n, &versions[0]).Err(); err != nil {
		return nil, fmt.Errorf("zelLoaderGetVersions: %w", err)
	}
	return versions[:min(n, uintptr(len(versions)))], nil
}

// TranslateHandle maps a loader handle to the driver handle behind it. When
// handle interception is disabled the input handle is returned unchanged.
func (l *Loader) TranslateHandle(typ HandleType, handle uintptr) (uintptr, error) {
	z, err := l.extensions()
	if err != nil {
		return 0, err
	}
	if z.translateHandle == nil {
		return 0, missing("zelLoaderTranslateHandle")
	}
	var out uintptr
	if err := z.translateHandle(typ, handle, &out).Err(); err != nil {
		return 0, fmt.Errorf("translating %s handle 0x%x: %w", typ, handle, err)
	}
	return out, nil
}

// EnableTracingLayer turns on the tracing layer at runtime.
func (l *Loader) EnableTracingLayer() error {
	z, err := l.extensions()
	if err != nil {
		return err
	}
	if z.enableTracing == nil {
		return missing("zelEnableTracingLayer")
	}
	return z.enableTracing().Err()
}

// DisableTracingLayer turns off the tracing layer at runtime.
func (l *Loader) DisableTracingLayer() error {
	z, err := l.extensions()
	if err != nil {
		return err
	}
	if z.disableTracing == nil {
		return missing("zelDisableTracingLayer")
	}
	return z.disableTracing().Err()
}

// SetDriverTeardown tells the loader that drivers are being torn down.
func (l *Loader) SetDriverTeardown() error {
	z, err := l.extensions()
	if err != nil {
		return err
	}
	if z.setDriverTeardown == nil {
		return missing("zelSetDriverTeardown")
	}
	return z.setDriverTeardown().Err()
}

// InTeardown reports whether the loader is tearing down its context.
func (l *Loader) InTeardown() (bool, error) {
	z, err := l.extensions()
	if err != nil {
		return false, err
	}
	if z.checkInTeardown == nil {
		return false, missing("zelCheckIsLoaderInTearDown")
	}
	return z.checkInTeardown(), nil
}
