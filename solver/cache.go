// SPDX-License-Identifier: MIT

package solver

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/jacobi/fourier"
)

// ComputeFunc computes a basis at the given precision.
type ComputeFunc func(prec *fourier.Filter) ([]*fourier.Expansion, error)

// Cache memoises bases keyed by (weight, lattice).
//
// An entry is only replaced by a computation at a strictly larger bound;
// requests at a bound no larger than the stored one are answered by
// truncation. Concurrent misses for the same (weight, lattice, bound) share
// one computation.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	flight  singleflight.Group
	metrics *Metrics
}

type cacheKey struct {
	weight  int
	lattice string
}

type cacheEntry struct {
	prec  *fourier.Filter
	basis []*fourier.Expansion
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]cacheEntry)}
}

// SetMetrics attaches instrumentation; nil detaches it.
func (c *Cache) SetMetrics(m *Metrics) {
	c.mu.Lock()
	c.metrics = m
	c.mu.Unlock()
}

// Len returns the number of cached (weight, lattice) entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]cacheEntry)
	c.mu.Unlock()
}

// Bound returns the precision bound stored for (k, lattice key), if any.
func (c *Cache) Bound(k int, latticeKey string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[cacheKey{weight: k, lattice: latticeKey}]
	if !ok {
		return 0, false
	}

	return e.prec.Bound(), true
}

// Get returns the cached basis truncated to prec, if the stored precision
// covers it.
func (c *Cache) Get(k int, prec *fourier.Filter) ([]*fourier.Expansion, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[cacheKey{weight: k, lattice: prec.Form().Key()}]
	c.mu.RUnlock()
	if !ok || !e.prec.Covers(prec) {
		return nil, false, nil
	}
	out := make([]*fourier.Expansion, len(e.basis))
	for i, f := range e.basis {
		t, err := f.Truncate(prec)
		if err != nil {
			return nil, false, solverErrorf("Cache.Get", err)
		}
		out[i] = t
	}

	return out, true, nil
}

// Put stores basis computed at prec unless an entry of at least the same
// precision exists. It reports whether the entry was written.
func (c *Cache) Put(k int, prec *fourier.Filter, basis []*fourier.Expansion) bool {
	key := cacheKey{weight: k, lattice: prec.Form().Key()}
	c.mu.Lock()
	defer c.mu.Unlock()
	old, ok := c.entries[key]
	if ok && old.prec.Covers(prec) {
		return false
	}
	if ok {
		c.metrics.refined()
	}
	c.entries[key] = cacheEntry{prec: prec, basis: append([]*fourier.Expansion(nil), basis...)}

	return true
}

// GetOrCompute answers from the cache or runs compute at prec and stores
// the result.
func (c *Cache) GetOrCompute(k int, prec *fourier.Filter, compute ComputeFunc) ([]*fourier.Expansion, error) {
	if basis, ok, err := c.Get(k, prec); err != nil || ok {
		if ok {
			c.metricsRef().hit()
		}
		return basis, err
	}
	c.metricsRef().miss()

	flightKey := strconv.Itoa(k) + "/" + prec.Form().Key() + "/" + strconv.FormatInt(prec.Bound(), 10)
	v, err, _ := c.flight.Do(flightKey, func() (any, error) {
		// another caller may have refined the entry meanwhile
		if basis, ok, err := c.Get(k, prec); err != nil || ok {
			return basis, err
		}
		basis, err := compute(prec)
		if err != nil {
			return nil, err
		}
		c.Put(k, prec, basis)

		return basis, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*fourier.Expansion), nil
}

func (c *Cache) metricsRef() *Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.metrics
}
