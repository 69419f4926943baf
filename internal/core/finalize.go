package core

import "github.com/opd-ai/go-argon2/internal/blake2b"

// finalize XORs each lane's last block together and stretches the result
// to tagLen bytes with H'. The caller is responsible for wiping memory
// afterward.
func finalize(memory []Block, lanes, laneLength, tagLen uint32) []byte {
	var final Block
	final = memory[laneLength-1]
	for lane := uint32(1); lane < lanes; lane++ {
		final.XOR(&memory[lane*laneLength+laneLength-1])
	}
	return blake2b.Hprime(int(tagLen), final.ToBytes())
}

// wipe zeroes every block in memory, used to clear derived key material
// before the buffer is released back to an allocator or the GC.
func wipe(memory []Block) {
	for i := range memory {
		memory[i].Zero()
	}
}
