package core

import "fmt"

// Derive runs the full Argon2 memory-filling engine: H0, first-block
// initialization, the pass/slice/lane fill schedule, and tag extraction.
// It is the internal package's single entry point, wired by the root
// package after parameter validation.
func Derive(ctx Context) ([]byte, error) {
	laneLength := ctx.laneLength()
	numBlocks := laneLength * ctx.Lanes

	memory, err := ctx.allocate(numBlocks)
	if err != nil {
		return nil, fmt.Errorf("core: allocate memory matrix: %w", err)
	}
	defer func() {
		if !ctx.NoWipe {
			wipe(memory)
		}
		ctx.free(memory)
	}()

	// H0 absorbs the requested m_cost, not the rounded block count; the
	// rounding in laneLength only shapes the matrix.
	h0 := initialHash(ctx.Input, ctx.Lanes, ctx.KeyLen, ctx.MemoryKiB, ctx.Passes, ctx.Version, ctx.Variant)
	fillFirstBlocks(memory, h0, ctx.Lanes, laneLength)

	fillMemory(memory, ctx.Variant, ctx.Version, ctx.Passes, ctx.Lanes, ctx.Threads)

	tag := finalize(memory, ctx.Lanes, laneLength, ctx.KeyLen)
	return tag, nil
}
