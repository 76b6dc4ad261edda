// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"strconv"

	lru "github.com/elastic/go-freelru"
	"golang.org/x/sync/singleflight"

	"github.com/canonical/kobuk-gfx-level-zero/internal/hash"
	"github.com/canonical/kobuk-gfx-level-zero/metrics"
)

// HandleTranslator maps loader handles to driver handles. *Loader
// implements it.
type HandleTranslator interface {
	TranslateHandle(typ HandleType, handle uintptr) (uintptr, error)
}

type handleKey struct {
	typ    HandleType
	handle uintptr
}

func hashHandleKey(k handleKey) uint32 {
	return hash.Uint32(uint64(k.handle) ^ uint64(k.typ)<<56)
}

// HandleCache memoizes handle translations. Concurrent misses for the same
// handle are collapsed into one native call. Failed translations are not
// cached.
type HandleCache struct {
	translator HandleTranslator
	cache      *lru.SyncedLRU[handleKey, uintptr]
	inflight   singleflight.Group
}

// NewHandleCache creates a cache holding up to size translations.
func NewHandleCache(translator HandleTranslator, size uint32) (*HandleCache, error) {
	cache, err := lru.NewSynced[handleKey, uintptr](size, hashHandleKey)
	if err != nil {
		return nil, err
	}
	return &HandleCache{
		translator: translator,
		cache:      cache,
	}, nil
}

// Translate returns the driver handle for a loader handle.
func (c *HandleCache) Translate(typ HandleType, handle uintptr) (uintptr, error) {
	key := handleKey{typ: typ, handle: handle}
	if out, ok := c.cache.Get(key); ok {
		metrics.Add(metrics.IDHandleCacheHits, 1)
		return out, nil
	}
	metrics.Add(metrics.IDHandleCacheMisses, 1)

	flightKey := strconv.FormatUint(uint64(typ), 10) + ":" +
		strconv.FormatUint(uint64(handle), 16)
	v, err, _ := c.inflight.Do(flightKey, func() (any, error) {
		out, err := c.translator.TranslateHandle(typ, handle)
		if err != nil {
			return uintptr(0), err
		}
		c.cache.Add(key, out)
		return out, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uintptr), nil
}

// Len returns the number of cached translations.
func (c *HandleCache) Len() int {
	return c.cache.Len()
}

// Purge drops every cached translation.
func (c *HandleCache) Purge() {
	c.cache.Purge()
}
