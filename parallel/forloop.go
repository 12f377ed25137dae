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

// Package parallel provides the two bulk-synchronous parallel-for
// shapes the counting phases need: static chunking for uniform-work
// phases (init/flatten/count) and dynamic chunking for column sweeps
// whose degree varies widely. Both run a bounded goroutine count
// launched with gls.Go, fed through a channel for dynamic work or a
// fixed contiguous split for static work, joined on a sync.WaitGroup.
package parallel

import (
	"runtime"
	"sync"

	"github.com/jtolds/gls"
)

// Workers returns the worker count to use for n items given a requested
// thread count t. t<=0 falls back to runtime.NumCPU(), and the result
// never exceeds the number of items there is to hand out.
func Workers(t int, n int) int {
	if t <= 0 {
		t = runtime.NumCPU()
	}
	if t < 1 {
		t = 1
	}
	if n > 0 && t > n {
		t = n
	}
	return t
}

// StaticFor splits [0,n) into `workers` contiguous, roughly equal
// ranges and runs fn(lo, hi) once per range concurrently. Used for the
// init/flatten/count phases where every index costs the same.
func StaticFor(n int, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers, n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		gls.Go(func(lo, hi int) func() {
			return func() {
				defer wg.Done()
				fn(lo, hi)
			}
		}(lo, hi))
	}
	wg.Wait()
}

// DynamicFor hands out [0,n) in chunks of `chunk` items through a shared
// work queue so that `workers` goroutines self-balance load — the shape
// column-degree work needs, since some columns touch far more edges than
// others. fn receives [lo,hi) for each chunk it claims.
func DynamicFor(n int, workers int, chunk int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if chunk < 1 {
		chunk = 1
	}
	workers = Workers(workers, (n+chunk-1)/chunk)
	if workers <= 1 {
		for lo := 0; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			fn(lo, hi)
		}
		return
	}

	type span struct{ lo, hi int }
	jobs := make(chan span, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		gls.Go(func() {
			defer wg.Done()
			for s := range jobs {
				fn(s.lo, s.hi)
			}
		})
	}
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		jobs <- span{lo, hi}
	}
	close(jobs)
	wg.Wait()
}
