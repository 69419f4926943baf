package core

// fillBlock is the Argon2 compression function G(prev, ref) -> next
// (RFC 9106 section 3.5). It XORs prev and ref into a working block R,
// applies the BLAKE2b round permutation over R's 8 contiguous 16-word
// groups and then over its 8 strided 16-word groups, and feeds the
// pre-permutation value of R back in (R = P(R) XOR R). When withXOR is set
// the result is XORed with next's existing contents instead of overwriting
// it, the rule used for every pass after the first in version 0x13.
func fillBlock(prev, ref, next *Block, withXOR bool) {
	var r, q Block
	r = *ref
	r.XOR(prev)
	q = r

	if withXOR {
		q.XOR(next)
	}

	for i := 0; i < 8; i++ {
		gRound(&r, columnGroup(i))
	}
	for i := 0; i < 8; i++ {
		gRound(&r, rowGroup(i))
	}

	*next = q
	next.XOR(&r)
}

// columnGroup returns the 16 word indices of contiguous group i: words
// 16*i .. 16*i+15.
func columnGroup(i int) [16]int {
	var idx [16]int
	for j := range idx {
		idx[j] = 16*i + j
	}
	return idx
}

// rowGroup returns the 16 word indices of strided group i: pairs (2*i,
// 2*i+1) taken from each of the 8 contiguous groups, i.e. 2*i+16*k and
// 2*i+16*k+1 for k in 0..7.
func rowGroup(i int) [16]int {
	var idx [16]int
	for k := 0; k < 8; k++ {
		idx[2*k] = 2*i + 16*k
		idx[2*k+1] = 2*i + 16*k + 1
	}
	return idx
}
