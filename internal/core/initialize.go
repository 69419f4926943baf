package core

import (
	"encoding/binary"

	"github.com/opd-ai/go-argon2/internal/blake2b"
)

// Input bundles the caller-supplied material needed to compute H0 and seed
// the memory matrix. Cost/shape parameters that also drive the fill loop
// (lanes, memory size, passes) are threaded through separately since the
// driver needs them independent of this hash.
type Input struct {
	Password []byte
	Salt     []byte
	Secret   []byte
	AD       []byte
}

// initialHash computes H0, the 64-byte BLAKE2b prehash seeding every
// lane's first two blocks. memory is the caller's requested m_cost in KiB,
// not the rounded block count.
func initialHash(in Input, lanes, outlen, memory, passes, version uint32, variant Variant) [64]byte {
	h, _ := blake2b.New(64, nil)

	var v [4]byte
	put := func(x uint32) {
		binary.LittleEndian.PutUint32(v[:], x)
		h.Write(v[:])
	}
	putField := func(b []byte) {
		put(uint32(len(b)))
		if len(b) > 0 {
			h.Write(b)
		}
	}

	put(lanes)
	put(outlen)
	put(memory)
	put(passes)
	put(version)
	put(uint32(variant))
	putField(in.Password)
	putField(in.Salt)
	putField(in.Secret)
	putField(in.AD)

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// fillFirstBlocks derives the first two blocks of every lane from H0 via
// H', using the lane and block index as extra disambiguating input:
// block(lane,0) = H'(H0 || 0 || lane), block(lane,1) = H'(H0 || 1 || lane).
func fillFirstBlocks(memory []Block, h0 [64]byte, lanes, laneLength uint32) {
	var seed [72]byte
	copy(seed[:64], h0[:])

	for lane := uint32(0); lane < lanes; lane++ {
		binary.LittleEndian.PutUint32(seed[64:68], 0)
		binary.LittleEndian.PutUint32(seed[68:72], lane)
		memory[lane*laneLength+0].FromBytes(blake2b.Hprime(BlockSize, seed[:]))

		binary.LittleEndian.PutUint32(seed[64:68], 1)
		memory[lane*laneLength+1].FromBytes(blake2b.Hprime(BlockSize, seed[:]))
	}
}
