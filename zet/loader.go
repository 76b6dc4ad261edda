// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	log "github.com/sirupsen/logrus"

	"github.com/canonical/kobuk-gfx-level-zero/metrics"
)

// TableError reports the subsystem whose table could not be fetched.
type TableError struct {
	Subsystem Subsystem
	// Result is the code returned by the getter. It is
	// ResultErrorUnsupportedFeature when the getter is not exported.
	Result Result
	// Err is set when the getter could not be called at all.
	Err error
}

func (e *TableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s table: %v", e.Subsystem, e.Err)
	}
	return fmt.Sprintf("fetching %s table: %v", e.Subsystem, e.Result)
}

// Unwrap exposes both the underlying error and the result code, so
// errors.As(err, &res) with a Result yields the failing code.
func (e *TableError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Err, e.Result}
	}
	return []error{e.Result}
}

// EntryPoint describes one native function known to the loader.
type EntryPoint struct {
	// Name is the exported native name, e.g. zetDebugAttach.
	Name      string
	Subsystem Subsystem
	Bound     bool
}

type (
	binder  func(fptr any, addr uintptr) error
	invoker func(addr uintptr, version APIVersion, table unsafe.Pointer) Result
)

type options struct {
	paths      []string
	bestEffort bool
	logger     *log.Entry
	bind       binder
	invoke     invoker
}

// Option configures Initialize and NewLoader.
type Option func(*options)

// WithLibraryPaths sets the loader library candidates tried by Initialize,
// in order. Defaults to DefaultLibraryNames.
func WithLibraryPaths(paths ...string) Option {
	return func(o *options) {
		o.paths = append(o.paths, paths...)
	}
}

// WithBestEffortExperimental lets initialization continue past an
// experimental subsystem whose getter is not exported or reports
// ResultErrorUnsupportedVersion or ResultErrorUnsupportedFeature. The
// subsystem's functions stay nil. Failures of any other subsystem still
// abort initialization.
func WithBestEffortExperimental() Option {
	return func(o *options) {
		o.bestEffort = true
	}
}

// WithLogger routes the loader's log output.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		bind:   registerFunc,
		invoke: callGetter,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.NewEntry(log.StandardLogger())
	}
	if len(o.paths) == 0 {
		o.paths = DefaultLibraryNames()
	}
	return o
}

// Loader owns the loader library and exposes every bound entry point
// through the embedded API. It is read-only after construction and safe
// for concurrent use.
type Loader struct {
	API

	lib     Library
	ownsLib bool
	path    string
	version APIVersion
	tables  DDITable
	loaded  [numSubsystems]bool
	entries []EntryPoint
	bound   int
	log     *log.Entry
	binder  binder

	zelMu sync.Mutex
	zel   *zelFuncs
}

// Initialize opens the first loadable loader library and fetches every
// proc-address table for the requested API version.
func Initialize(version APIVersion, opts ...Option) (*Loader, error) {
	o := newOptions(opts)

	lib, path, err := openFirst(o.paths, func(path string, err error) {
		metrics.Add(metrics.IDLibraryLoadAttempts, 1)
		if err != nil {
			metrics.Add(metrics.IDLibraryLoadFailures, 1)
			o.logger.Debugf("[zet] failed to open %s: %v", path, err)
		}
	})
	if err != nil {
		return nil, err
	}
	o.logger.Debugf("[zet] opened loader library %s", path)

	l, err := newLoader(lib, version, o)
	if err != nil {
		if cerr := lib.Close(); cerr != nil {
			o.logger.Warnf("[zet] failed to close %s: %v", path, cerr)
		}
		return nil, err
	}
	l.ownsLib = true
	l.path = path
	return l, nil
}

// NewLoader fetches every proc-address table from an already opened
// library. The caller keeps ownership of lib.
func NewLoader(lib Library, version APIVersion, opts ...Option) (*Loader, error) {
	if lib == nil {
		return nil, errors.New("nil library")
	}
	return newLoader(lib, version, newOptions(opts))
}

func newLoader(lib Library, version APIVersion, o *options) (*Loader, error) {
	l := &Loader{
		lib:     lib,
		version: version,
		log:     o.logger,
		binder:  o.bind,
	}

	for _, tbl := range l.tables.ordered() {
		sub := tbl.Subsystem()
		if err := l.fetch(tbl, o.invoke); err != nil {
			tbl.reset()
			if o.bestEffort && sub.Experimental() && skippable(err) {
				l.log.Warnf("[zet] skipping experimental %s: %v", sub, err)
				metrics.Add(metrics.IDExpTablesSkipped, 1)
				l.record(tbl)
				continue
			}
			metrics.Add(metrics.IDTableFetchFailures, 1)
			return nil, err
		}
		metrics.Add(metrics.IDTablesFetched, 1)

		n, err := l.bind(tbl, o.bind)
		if err != nil {
			return nil, err
		}
		l.loaded[sub] = true
		l.log.Debugf("[zet] bound %d entry points for %s", n, sub)
	}
	l.thread.install(&l.API)

	metrics.AddSlice([]metrics.Metric{
		{ID: metrics.IDEntryPointsBound, Value: metrics.MetricValue(l.bound)},
		{ID: metrics.IDEntryPointsUnbound, Value: metrics.MetricValue(len(l.entries) - l.bound)},
	})
	return l, nil
}

// fetch calls the subsystem's getter, filling tbl in place.
func (l *Loader) fetch(tbl procTable, invoke invoker) error {
	sub := tbl.Subsystem()
	addr, err := l.lib.Lookup(sub.GetterSymbol())
	if err != nil {
		return &TableError{Subsystem: sub, Result: ResultErrorUnsupportedFeature, Err: err}
	}
	if res := invoke(addr, l.version, tbl.pointer()); res != ResultSuccess {
		return &TableError{Subsystem: sub, Result: res}
	}
	return nil
}

// bind installs every non-null address of tbl into its API field.
func (l *Loader) bind(tbl procTable, bind binder) (int, error) {
	sub := tbl.Subsystem()
	n := 0
	for _, e := range tbl.entries(&l.API) {
		if e.addr != 0 {
			if err := bind(e.fn, e.addr); err != nil {
				return n, fmt.Errorf("binding %s: %w", e.name, err)
			}
			n++
		}
		l.entries = append(l.entries, EntryPoint{Name: e.name, Subsystem: sub, Bound: e.addr != 0})
	}
	l.bound += n
	return n, nil
}

// record lists the entry points of a skipped table as unbound.
func (l *Loader) record(tbl procTable) {
	for _, e := range tbl.entries(&l.API) {
		l.entries = append(l.entries,
			EntryPoint{Name: e.name, Subsystem: tbl.Subsystem(), Bound: false})
	}
}

func skippable(err error) bool {
	if errors.Is(err, ErrSymbolNotFound) {
		return true
	}
	var res Result
	if !errors.As(err, &res) {
		return false
	}
	return res == ResultErrorUnsupportedVersion || res == ResultErrorUnsupportedFeature
}

// Version returns the API version the tables were requested for.
func (l *Loader) Version() APIVersion {
	return l.version
}

// Path returns the library path opened by Initialize, or "" for loaders
// built with NewLoader.
func (l *Loader) Path() string {
	return l.path
}

// Library returns the underlying library handle, or nil after Close.
func (l *Loader) Library() Library {
	return l.lib
}

// Loaded reports whether the subsystem's table was fetched.
func (l *Loader) Loaded(sub Subsystem) bool {
	return sub.valid() && l.loaded[sub]
}

// Tables returns a copy of the raw proc-address tables.
func (l *Loader) Tables() DDITable {
	return l.tables
}

// BoundEntryPoints returns the number of entry points with a non-nil
// function.
func (l *Loader) BoundEntryPoints() int {
	return l.bound
}

// EntryPoints lists every known entry point in table order.
func (l *Loader) EntryPoints() []EntryPoint {
	return append([]EntryPoint(nil), l.entries...)
}

// Close releases the library if it was opened by Initialize. All bound
// functions are cleared and none may be called afterwards. Close must not
// race with other uses of the loader.
func (l *Loader) Close() error {
	l.API = API{}
	l.zelMu.Lock()
	lib := l.lib
	l.lib = nil
	l.zel = nil
	l.zelMu.Unlock()

	if !l.ownsLib || lib == nil {
		return nil
	}
	return lib.Close()
}
