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

package parallel

import (
	"sync/atomic"
	"testing"
)

func TestStaticForCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 10007
	var hits [n]int32
	StaticFor(n, 8, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d hit %d times, want 1", i, h)
		}
	}
}

func TestDynamicForCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 10007
	var hits [n]int32
	DynamicFor(n, 8, 17, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d hit %d times, want 1", i, h)
		}
	}
}

func TestStaticForEmptyRange(t *testing.T) {
	called := false
	StaticFor(0, 4, func(lo, hi int) { called = true })
	if called {
		t.Fatal("fn should not be called for n<=0")
	}
}

func TestWorkersNeverExceedsWork(t *testing.T) {
	if w := Workers(16, 3); w > 3 {
		t.Fatalf("Workers(16, 3) = %d, want <= 3", w)
	}
	if w := Workers(0, 100); w < 1 {
		t.Fatalf("Workers(0, 100) = %d, want >= 1", w)
	}
}

func TestStaticForSingleWorkerRunsInline(t *testing.T) {
	var seen []int
	StaticFor(5, 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			seen = append(seen, i)
		}
	})
	if len(seen) != 5 {
		t.Fatalf("got %d indices, want 5", len(seen))
	}
}
