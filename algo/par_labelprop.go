/*
Copyright (C) 2026  csccount Contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package algo

import (
	"sync/atomic"

	"github.com/launix-de/NonLockingReadMap"
	"github.com/launix-de/csccount/matrix"
	"github.com/launix-de/csccount/parallel"
)

const dynamicChunk = 128

// CountParLabelProp is the parallel label-propagation variant: every
// sweep over the edge list runs on a worker pool with dynamic
// scheduling (column degree varies a lot more than row degree, so
// static chunking would leave some workers idle), labels are written
// with plain atomic stores since a torn read only costs an extra
// iteration rather than correctness, and the final per-label dedup uses
// a lock-free bitmap instead of a sort so the counting phase stays
// parallel too.
func CountParLabelProp(m *matrix.CSC, threads int) (int64, error) {
	n := int(m.N())
	if n == 0 {
		return 0, nil
	}
	label := make([]uint32, n)

	workers := parallel.Workers(threads, n)
	parallel.StaticFor(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.StoreUint32(&label[i], uint32(i))
		}
	})

	for {
		var changed int32
		parallel.DynamicFor(int(m.NCols), workers, dynamicChunk, func(lo, hi int) {
			localChanged := false
			for col := lo; col < hi; col++ {
				for _, row := range m.Column(uint32(col)) {
					lc := atomic.LoadUint32(&label[col])
					lr := atomic.LoadUint32(&label[row])
					if lc == lr {
						continue
					}
					localChanged = true
					minVal := lc
					if lr < minVal {
						minVal = lr
					}
					atomic.StoreUint32(&label[col], minVal)
					atomic.StoreUint32(&label[row], minVal)
				}
			}
			if localChanged {
				atomic.StoreInt32(&changed, 1)
			}
		})
		if atomic.LoadInt32(&changed) == 0 {
			break
		}
	}

	// Grow the bitmap to its full extent before the parallel region: Set
	// only reallocates the backing words while growing, and a concurrent
	// grow could drop a bit set through the stale slice header. Labels
	// never exceed n-1, so after this no Set call grows again.
	var bitmap NonLockingReadMap.NonBlockingBitMap
	bitmap.Set(uint32(n-1), false)
	parallel.StaticFor(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			bitmap.Set(atomic.LoadUint32(&label[i]), true)
		}
	})

	return int64(bitmap.Count()), nil
}
