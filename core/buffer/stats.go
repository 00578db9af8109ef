// File: core/buffer/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide allocation counters for blocks created by New.

package buffer

import (
	"sync/atomic"

	"github.com/momentics/simplevector/api"
)

var (
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	slotsAlloc atomic.Int64
)

func recordAlloc(slots int) {
	totalAlloc.Add(1)
	slotsAlloc.Add(int64(slots))
}

func recordFree() {
	totalFree.Add(1)
}

// Stats returns a snapshot of block accounting.
// A block leaves InUse when its owner frees it or releases it to a caller.
func Stats() api.BufferStats {
	alloc := totalAlloc.Load()
	free := totalFree.Load()
	return api.BufferStats{
		TotalAlloc:     alloc,
		TotalFree:      free,
		InUse:          alloc - free,
		SlotsAllocated: slotsAlloc.Load(),
	}
}
