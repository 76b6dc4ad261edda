// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package controller // import "github.com/canonical/kobuk-gfx-level-zero/internal/controller"

import (
	"io"

	"github.com/canonical/kobuk-gfx-level-zero/zet"
)

type Option interface {
	applyOption(*Controller) *Controller
}
type controllerOptionFunc func(*Controller) *Controller

func (f controllerOptionFunc) applyOption(c *Controller) *Controller {
	return f(c)
}

// WithOutput sets the writer receiving the report.
// This defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return controllerOptionFunc(func(c *Controller) *Controller {
		c.output = w
		return c
	})
}

// WithLoaderOptions appends options passed to zet.Initialize after the ones
// derived from the configuration.
func WithLoaderOptions(opts ...zet.Option) Option {
	return controllerOptionFunc(func(c *Controller) *Controller {
		c.loaderOpts = append(c.loaderOpts, opts...)
		return c
	})
}
