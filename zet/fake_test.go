// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

func tableSize(tbl procTable) uintptr {
	return reflect.TypeOf(tbl).Elem().Size()
}

// fakeDriver plays the loader library: it exports the table getters under
// fake addresses, fills tables with fake entry point addresses and binds
// them to Go implementations instead of native code.
type fakeDriver struct {
	mu sync.Mutex

	symbols map[string]uintptr
	// results overrides the code returned by a subsystem's getter.
	results map[Subsystem]Result
	// holes leaves table slots null, keyed by native entry point name.
	holes map[string]bool
	// impls provides Go implementations for bound addresses.
	impls map[uintptr]any

	getterCalls []Subsystem
	versions    []APIVersion
	bound       map[uintptr]string
	calls       []fakeCall
	closed      bool
}

type fakeCall struct {
	addr uintptr
	args []any
}

const (
	getterBase = 0x1000
	entryBase  = 0x100000
)

func newFakeDriver() *fakeDriver {
	f := &fakeDriver{
		symbols: map[string]uintptr{},
		results: map[Subsystem]Result{},
		holes:   map[string]bool{},
		impls:   map[uintptr]any{},
		bound:   map[uintptr]string{},
	}
	for _, sub := range Subsystems() {
		f.symbols[sub.GetterSymbol()] = getterBase + uintptr(sub)
	}
	return f
}

// entryAddr is the fake address of the n-th entry point of sub.
func entryAddr(sub Subsystem, n int) uintptr {
	return entryBase + uintptr(sub)<<8 + uintptr(n)
}

// addrOf returns the fake address of a native entry point.
func addrOf(name string) uintptr {
	var ddi DDITable
	var api API
	for _, tbl := range ddi.ordered() {
		for i, e := range tbl.entries(&api) {
			if e.name == name {
				return entryAddr(tbl.Subsystem(), i)
			}
		}
	}
	panic("unknown entry point " + name)
}

func (f *fakeDriver) Lookup(symbol string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if addr, ok := f.symbols[symbol]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
}

func (f *fakeDriver) Close() error {
	f.closed = true
	return nil
}

func (f *fakeDriver) invoke(addr uintptr, version APIVersion, table unsafe.Pointer) Result {
	sub := Subsystem(addr - getterBase)
	f.getterCalls = append(f.getterCalls, sub)
	f.versions = append(f.versions, version)

	// A driver may scribble over the table before failing.
	var ddi DDITable
	var api API
	entries := ddi.ordered()[sub].entries(&api)
	slots := unsafe.Slice((*uintptr)(table), len(entries))
	for i, e := range entries {
		if !f.holes[e.name] {
			slots[i] = entryAddr(sub, i)
		}
	}
	if res, ok := f.results[sub]; ok {
		return res
	}
	return ResultSuccess
}

// bind installs impls[addr] or a recorder returning ResultSuccess.
func (f *fakeDriver) bind(fptr any, addr uintptr) error {
	fn := reflect.ValueOf(fptr).Elem()
	f.mu.Lock()
	f.bound[addr] = fn.Type().String()
	impl, ok := f.impls[addr]
	f.mu.Unlock()

	if ok {
		fn.Set(reflect.ValueOf(impl))
		return nil
	}
	fn.Set(reflect.MakeFunc(fn.Type(), func(args []reflect.Value) []reflect.Value {
		call := fakeCall{addr: addr}
		for _, a := range args {
			call.args = append(call.args, a.Interface())
		}
		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		out := make([]reflect.Value, fn.Type().NumOut())
		for i := range out {
			out[i] = reflect.Zero(fn.Type().Out(i))
		}
		return out
	}))
	return nil
}

func (f *fakeDriver) options(extra ...Option) []Option {
	return append([]Option{
		func(o *options) {
			o.bind = f.bind
			o.invoke = f.invoke
		},
	}, extra...)
}
