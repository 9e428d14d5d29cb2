package cache

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// LoadFunc fetches and decodes the block starting at the given compressed
// offset.
type LoadFunc func(coffset int64) ([]byte, error)

type blockCacheStats struct {
	Hits   atomic.Uint64
	Misses atomic.Uint64
}

// BlockCache keeps recently decoded blocks keyed by their compressed offset,
// so random-access readers sharing one file do not decompress the same block
// repeatedly. Concurrent loads of the same block are collapsed into one.
//
// Eviction is FIFO over insertion order; block access patterns during index
// lookups are close enough to sequential that tracking recency is not worth
// the bookkeeping.
type BlockCache struct {
	load LoadFunc
	max  int

	locker sync.RWMutex
	blocks map[int64][]byte
	order  []int64

	loadGroup singleflight.Group
	stats     blockCacheStats
}

func NewBlockCache(maxBlocks int, load LoadFunc) *BlockCache {

	if maxBlocks < 1 {
		maxBlocks = 1
	}

	return &BlockCache{
		load:   load,
		max:    maxBlocks,
		blocks: make(map[int64][]byte, maxBlocks),
	}
}

// Get returns the decompressed block starting at coffset, loading it when
// absent. The returned slice is shared; callers must not modify it.
func (c *BlockCache) Get(coffset int64) ([]byte, error) {

	c.locker.RLock()
	data, ok := c.blocks[coffset]
	c.locker.RUnlock()

	if ok {
		c.stats.Hits.Add(1)
		return data, nil
	}

	c.stats.Misses.Add(1)

	v, err, _ := c.loadGroup.Do(strconv.FormatInt(coffset, 16), func() (any, error) {

		loaded, loadErr := c.load(coffset)
		if loadErr != nil {
			return nil, loadErr
		}

		c.locker.Lock()
		if _, exists := c.blocks[coffset]; !exists {
			c.blocks[coffset] = loaded
			c.order = append(c.order, coffset)

			for len(c.order) > c.max {
				delete(c.blocks, c.order[0])
				c.order = c.order[1:]
			}
		}
		c.locker.Unlock()

		return loaded, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

// Stats reports cache hits and misses since creation.
func (c *BlockCache) Stats() (hits, misses uint64) {
	return c.stats.Hits.Load(), c.stats.Misses.Load()
}
