package core

// addressGenerator produces the pseudo-random stream used by the
// data-independent (Argon2i, and the first half-pass of Argon2id) reference
// index derivation (RFC 9106 section 3.4.1.2): a persistent input block
// seeded with the pass/lane/slice/memory/time/type counters plus a running
// segment counter, run twice through the compression function with an
// all-zero reference block to produce one address block of 128
// pseudo-random words at a time.
type addressGenerator struct {
	input     Block
	address   Block
	zero      Block
	generated bool
}

func newAddressGenerator(pass, lane, slice, totalBlocks, totalPasses uint32, variant Variant) *addressGenerator {
	g := &addressGenerator{}
	g.input[0] = uint64(pass)
	g.input[1] = uint64(lane)
	g.input[2] = uint64(slice)
	g.input[3] = uint64(totalBlocks)
	g.input[4] = uint64(totalPasses)
	g.input[5] = uint64(variant)
	return g
}

// at returns the pseudo-random word for segment-relative position index,
// regenerating the address block every 128 indices.
func (g *addressGenerator) at(index uint32) uint64 {
	if index%QWordsInBlock == 0 || !g.generated {
		g.input[6]++
		fillBlock(&g.zero, &g.input, &g.address, false)
		fillBlock(&g.zero, &g.address, &g.address, false)
		g.generated = true
	}
	return g.address[index%QWordsInBlock]
}
