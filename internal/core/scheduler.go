package core

import "sync"

// fillMemory runs every pass/slice of the fill loop, dispatching one
// goroutine per lane within a slice and capping in-flight goroutines at
// min(threads, lanes) with a counting semaphore. Slice boundaries are hard
// barriers: every lane's segment for a given (pass,slice) must finish
// before any lane starts the next slice, since later segments read blocks
// other lanes wrote in the slice just completed.
func fillMemory(memory []Block, variant Variant, version, passes, lanes, threads uint32) {
	laneLength := uint32(len(memory)) / lanes
	segmentLength := laneLength / SyncPoints

	inFlight := min32(threads, lanes)
	if inFlight == 0 {
		inFlight = 1
	}
	sem := make(chan struct{}, inFlight)

	for pass := uint32(0); pass < passes; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < lanes; lane++ {
				wg.Add(1)
				sem <- struct{}{}
				go func(lane uint32) {
					defer wg.Done()
					defer func() { <-sem }()
					pos := Position{Pass: pass, Lane: lane, Slice: slice}
					fillSegment(memory, variant, version, pos, lanes, laneLength, segmentLength, passes)
				}(lane)
			}
			wg.Wait()
		}
	}
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
