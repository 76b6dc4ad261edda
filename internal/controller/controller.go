// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package controller // import "github.com/canonical/kobuk-gfx-level-zero/internal/controller"

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/canonical/kobuk-gfx-level-zero/metrics"
	"github.com/canonical/kobuk-gfx-level-zero/zet"
)

// Controller is an instance that loads the Level Zero tools API once and
// reports what was bound.
type Controller struct {
	config     *Config
	output     io.Writer
	loaderOpts []zet.Option
	loader     *zet.Loader
}

// New creates a new controller
// The controller should only be started once.
func New(cfg *Config, opts ...Option) *Controller {
	if cfg == nil {
		cfg = &Config{}
	}
	c := &Controller{
		config: cfg,
		output: os.Stdout,
	}
	for _, opt := range opts {
		c = opt.applyOption(c)
	}
	return c
}

// Start loads the tools API and writes the report.
func (c *Controller) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.config.Validate(); err != nil {
		return ErrorWithExitCode{err, ExitInvalidConfig}
	}

	opts := []zet.Option{
		zet.WithLogger(log.WithField("component", "zet")),
	}
	if paths := c.config.libraryPaths(); len(paths) > 0 {
		opts = append(opts, zet.WithLibraryPaths(paths...))
	}
	if c.config.BestEffort {
		opts = append(opts, zet.WithBestEffortExperimental())
	}
	opts = append(opts, c.loaderOpts...)

	loader, err := zet.Initialize(c.config.apiVersion, opts...)
	if err != nil {
		return withExitCode(fmt.Errorf("failed to initialize tools API: %w", err))
	}
	c.loader = loader
	log.Infof("Loaded %s (API %s), %d entry points bound",
		loader.Path(), loader.Version(), loader.BoundEntryPoints())

	renderSubsystems(c.output, loader.EntryPoints(), loader.Loaded)

	if c.config.ListEntryPoints {
		renderEntryPoints(c.output, loader.EntryPoints())
	}

	if c.config.ShowVersions {
		versions, err := loader.ComponentVersions()
		if err != nil {
			log.Warnf("Failed to query loader components: %v", err)
		} else {
			renderComponents(c.output, versions)
		}
	}

	renderMetrics(c.output, metrics.GetDefinitions(), metrics.Totals())
	return nil
}

// Shutdown releases the loader library.
func (c *Controller) Shutdown() {
	if c.loader == nil {
		return
	}
	if err := c.loader.Close(); err != nil {
		log.Errorf("Failed to close loader: %v", err)
	}
	c.loader = nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

func renderSubsystems(w io.Writer, entries []zet.EntryPoint, loaded func(zet.Subsystem) bool) {
	type count struct{ bound, total int }
	counts := make(map[zet.Subsystem]count)
	for _, ep := range entries {
		c := counts[ep.Subsystem]
		c.total++
		if ep.Bound {
			c.bound++
		}
		counts[ep.Subsystem] = c
	}

	data := make([][]string, 0, len(zet.Subsystems()))
	for _, sub := range zet.Subsystems() {
		state := "no"
		if loaded(sub) {
			state = "yes"
		}
		c := counts[sub]
		data = append(data, []string{
			sub.String(),
			sub.GetterSymbol(),
			state,
			fmt.Sprintf("%d/%d", c.bound, c.total),
		})
	}

	table := newTable(w, "SUBSYSTEM", "GETTER", "LOADED", "BOUND")
	table.AppendBulk(data)
	table.Render()
}

func renderEntryPoints(w io.Writer, entries []zet.EntryPoint) {
	data := make([][]string, 0, len(entries))
	for _, ep := range entries {
		data = append(data, []string{ep.Name, ep.Subsystem.String(), strconv.FormatBool(ep.Bound)})
	}

	table := newTable(w, "ENTRY POINT", "SUBSYSTEM", "BOUND")
	table.AppendBulk(data)
	table.Render()
}

func renderComponents(w io.Writer, versions []zet.ComponentVersion) {
	data := make([][]string, 0, len(versions))
	for i := range versions {
		v := &versions[i]
		data = append(data, []string{v.Name(), v.ComponentLibVersion.String(), v.SpecVersion.String()})
	}

	table := newTable(w, "COMPONENT", "VERSION", "API")
	table.AppendBulk(data)
	table.Render()
}

func renderMetrics(w io.Writer, defs []metrics.MetricDefinition, totals metrics.Summary) {
	defs = slices.DeleteFunc(slices.Clone(defs), func(d metrics.MetricDefinition) bool {
		return d.Obsolete || d.ID == metrics.IDInvalid
	})
	slices.SortFunc(defs, func(a, b metrics.MetricDefinition) int {
		return int(a.ID) - int(b.ID)
	})

	data := make([][]string, 0, len(defs))
	for _, d := range defs {
		data = append(data, []string{d.Field, strconv.FormatInt(int64(totals[d.ID]), 10)})
	}

	table := newTable(w, "METRIC", "VALUE")
	table.AppendBulk(data)
	table.Render()
}
