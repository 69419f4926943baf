package core

import (
	"fmt"
	"math"
)

// Allocator is the optional capability a caller can supply for the memory
// matrix, mirroring the reference implementation's allocate_cbk/free_cbk
// pair. When absent the driver falls back to a plain make, relying on the
// garbage collector.
type Allocator interface {
	Alloc(n int) ([]Block, error)
	Free([]Block)
}

// Context is the internal driver's view of a single hash invocation: cost
// parameters, the input material for H0, and the optional allocator. It is
// deliberately independent of the root package's Params/ErrorCode types so
// this package never imports the root package.
type Context struct {
	Variant   Variant
	Version   uint32
	Passes    uint32 // t_cost
	MemoryKiB uint32 // m_cost
	Lanes     uint32
	Threads   uint32
	KeyLen    uint32
	Input     Input
	Allocator Allocator
	NoWipe    bool
}

// laneLength computes the rounded memory_blocks/lanes matrix shape:
// memory_blocks rounds up to max(m_cost, 8*lanes), then down to a multiple
// of 4*lanes.
func (c *Context) laneLength() uint32 {
	blocks := c.MemoryKiB
	minBlocks := 8 * c.Lanes
	if blocks < minBlocks {
		blocks = minBlocks
	}
	blocks -= blocks % (4 * c.Lanes)
	return blocks / c.Lanes
}

func (c *Context) allocate(numBlocks uint32) ([]Block, error) {
	if uint64(numBlocks) > uint64(math.MaxInt)/BlockSize {
		return nil, fmt.Errorf("core: memory matrix size overflows int")
	}
	if c.Allocator != nil {
		return c.Allocator.Alloc(int(numBlocks))
	}
	return make([]Block, numBlocks), nil
}

func (c *Context) free(memory []Block) {
	if c.Allocator != nil {
		c.Allocator.Free(memory)
	}
}
