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

	"github.com/launix-de/csccount/matrix"
	"github.com/launix-de/csccount/parallel"
)

// maxUnionRetries bounds the CAS contention loop in unionRem before it
// falls back to an unconditional store. Without a bound, a hot root
// under heavy contention from many goroutines could starve a thread
// indefinitely; ten retries is enough to resolve ordinary contention
// while keeping worst-case latency predictable.
const maxUnionRetries = 10

// findCompress finds x's root by following parent pointers, then makes
// every visited node point directly at that root. Safe to call
// concurrently with other goroutines' findCompress/unionRem calls on
// disjoint or overlapping paths: a torn read of label[x] only ever
// yields a valid (if stale) parent, never garbage, because the only
// writes to label entries are atomic stores of valid node indices.
func findCompress(label []uint32, x uint32) uint32 {
	root := x
	for {
		p := atomic.LoadUint32(&label[root])
		if p == root {
			break
		}
		root = p
	}
	for x != root {
		next := atomic.LoadUint32(&label[x])
		if next == root {
			break
		}
		atomic.StoreUint32(&label[x], root)
		x = next
	}
	return root
}

// unionRem links the components containing a and b using Rem's
// algorithm: repeatedly find both roots, then try to CAS the
// larger-indexed root's parent onto the smaller-indexed one. A CAS
// failure means another goroutine relabeled b's root first, so the loop
// takes the freshly observed parent as the new b and retries, finding
// the roots of both a and b again before the next CAS. After maxUnionRetries the
// goroutine gives up contending and forces the link with a plain
// store — correctness still holds because a subsequent flattening pass
// (see CountParUnionFind) repairs any path left non-canonical by a
// forced union.
func unionRem(label []uint32, a, b uint32) {
	for retries := 0; retries < maxUnionRetries; retries++ {
		a = findCompress(label, a)
		b = findCompress(label, b)
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		if atomic.CompareAndSwapUint32(&label[b], b, a) {
			return
		}
		b = atomic.LoadUint32(&label[b])
	}

	a = findCompress(label, a)
	b = findCompress(label, b)
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	atomic.StoreUint32(&label[b], a)
}

// CountParUnionFind is the lock-free parallel union-find variant: init,
// union, flatten and count each run as their own bulk-synchronous
// phase separated by a barrier, so no phase starts reading state a
// concurrent writer from the previous phase might still be touching.
// The union phase uses dynamic scheduling for the same load-balance
// reason as the label-propagation variant; the flatten and count phases
// use static chunking since every node costs the same to process.
func CountParUnionFind(m *matrix.CSC, threads int) (int64, error) {
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

	parallel.DynamicFor(int(m.NCols), workers, dynamicChunk, func(lo, hi int) {
		for col := lo; col < hi; col++ {
			c := uint32(col)
			for _, row := range m.Column(c) {
				unionRem(label, row, c)
			}
		}
	})

	parallel.StaticFor(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			findCompress(label, uint32(i))
		}
	})

	var count int64
	parallel.StaticFor(n, workers, func(lo, hi int) {
		var local int64
		for i := lo; i < hi; i++ {
			if atomic.LoadUint32(&label[i]) == uint32(i) {
				local++
			}
		}
		atomic.AddInt64(&count, local)
	})

	return count, nil
}
