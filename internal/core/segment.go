package core

// fillSegment fills one segment (the blocks of a single lane within a
// single slice of a single pass). memory holds every lane's blocks back to
// back: lane l's block i lives at memory[l*laneLength+i].
func fillSegment(memory []Block, variant Variant, version uint32, pos Position, lanes, laneLength, segmentLength, totalPasses uint32) {
	var addr *addressGenerator
	if usesDataIndependent(variant, pos) {
		addr = newAddressGenerator(pos.Pass, pos.Lane, pos.Slice, lanes*laneLength, totalPasses, variant)
	}

	startIndex := uint32(0)
	if pos.Pass == 0 && pos.Slice == 0 {
		startIndex = 2
	}

	curOffset := pos.Lane*laneLength + pos.Slice*segmentLength + startIndex
	var prevOffset uint32
	if curOffset%laneLength == 0 {
		prevOffset = curOffset + laneLength - 1
	} else {
		prevOffset = curOffset - 1
	}

	for i := startIndex; i < segmentLength; i++ {
		if curOffset%laneLength == 1 {
			prevOffset = curOffset - 1
		}

		var pseudoRand uint64
		if addr != nil {
			pseudoRand = addr.at(i)
		} else {
			pseudoRand = memory[prevOffset][0]
		}

		refLane, refIndex := indexAlpha(variant, Position{Pass: pos.Pass, Lane: pos.Lane, Slice: pos.Slice, Index: i}, pseudoRand, lanes, laneLength, segmentLength)
		refOffset := refLane*laneLength + refIndex

		withXOR := version != Version0x10 && pos.Pass != 0
		fillBlock(&memory[prevOffset], &memory[refOffset], &memory[curOffset], withXOR)

		curOffset++
		prevOffset++
	}
}
