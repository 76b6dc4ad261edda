// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTranslator struct {
	calls atomic.Int32
	gate  chan struct{}
}

func (c *countingTranslator) TranslateHandle(typ HandleType, handle uintptr) (uintptr, error) {
	c.calls.Add(1)
	if c.gate != nil {
		<-c.gate
	}
	if handle == 0 {
		return 0, ResultErrorInvalidNullHandle
	}
	return handle + uintptr(typ)<<32, nil
}

func TestHandleCache(t *testing.T) {
	tr := &countingTranslator{}
	cache, err := NewHandleCache(tr, 4)
	require.NoError(t, err)

	out, err := cache.Translate(HandleDevice, 0x10)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x10)+uintptr(HandleDevice)<<32, out)

	out2, err := cache.Translate(HandleDevice, 0x10)
	require.NoError(t, err)
	assert.Equal(t, out, out2)
	assert.Equal(t, int32(1), tr.calls.Load())

	// Same handle value, different type, is a different key.
	_, err = cache.Translate(HandleContext, 0x10)
	require.NoError(t, err)
	assert.Equal(t, int32(2), tr.calls.Load())
	assert.Equal(t, 2, cache.Len())

	// Failures are not cached.
	_, err = cache.Translate(HandleDevice, 0)
	assert.True(t, errors.Is(err, ResultErrorInvalidNullHandle))
	_, err = cache.Translate(HandleDevice, 0)
	assert.Error(t, err)
	assert.Equal(t, int32(4), tr.calls.Load())
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Zero(t, cache.Len())
}

func TestHandleCacheEviction(t *testing.T) {
	tr := &countingTranslator{}
	cache, err := NewHandleCache(tr, 2)
	require.NoError(t, err)

	for h := uintptr(1); h <= 8; h++ {
		_, err := cache.Translate(HandleKernel, h)
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, cache.Len(), 2)
}

func TestHandleCacheCollapsesConcurrentMisses(t *testing.T) {
	tr := &countingTranslator{gate: make(chan struct{})}
	cache, err := NewHandleCache(tr, 16)
	require.NoError(t, err)

	const workers = 8
	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	results := make([]uintptr, workers)
	for i := range workers {
		go func() {
			defer done.Done()
			started.Done()
			results[i], _ = cache.Translate(HandleModule, 0x42)
		}()
	}
	started.Wait()
	close(tr.gate)
	done.Wait()

	for _, r := range results {
		assert.Equal(t, uintptr(0x42)+uintptr(HandleModule)<<32, r)
	}
	assert.LessOrEqual(t, tr.calls.Load(), int32(workers))
	assert.GreaterOrEqual(t, tr.calls.Load(), int32(1))
}

func TestLoaderIsHandleTranslator(t *testing.T) {
	var _ HandleTranslator = (*Loader)(nil)
}
