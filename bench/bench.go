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

// Package bench times the four algo.Variant implementations against a
// shared matrix and reduces the per-trial measurements into summary
// statistics, speedup, and parallel efficiency.
package bench

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/launix-de/csccount/algo"
	"github.com/launix-de/csccount/matrix"
)

// ErrInconsistent is returned when two trials of the same algorithm over
// the same matrix disagree on the component count — a correctness bug,
// not a measurement artifact, so the harness treats it as fatal.
var ErrInconsistent = errors.New("trials disagree on component count")

// Trial holds one run's measurements.
type Trial struct {
	Wall  time.Duration
	CPU   time.Duration
	Count int64
}

// Stats summarizes a slice of durations.
type Stats struct {
	Mean, Min, Max, Std, Median time.Duration
}

// ComputeStats reduces a non-empty slice of durations to summary
// statistics. Panics on an empty slice; callers always pass at least
// one trial's measurement.
func ComputeStats(d []time.Duration) Stats {
	if len(d) == 0 {
		panic("bench: ComputeStats called with no samples")
	}
	sorted := make([]time.Duration, len(d))
	copy(sorted, d)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	mean := sum / time.Duration(len(d))

	var variance float64
	for _, v := range d {
		delta := float64(v - mean)
		variance += delta * delta
	}
	variance /= float64(len(d))
	std := time.Duration(math.Sqrt(variance))

	var median time.Duration
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	return Stats{
		Mean:   mean,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Std:    std,
		Median: median,
	}
}

// Result is one benchmarking session's outcome for a single algorithm
// variant at a fixed thread count.
type Result struct {
	RunID   uuid.UUID
	Variant algo.Variant
	Threads int
	Count   int64
	Trials  []Trial
	Wall    Stats
	CPU     Stats
}

// Run repeats variant over m for k trials (k<1 is treated as 1),
// recording wall-clock and process CPU time per trial, and verifies
// every trial produced the same component count.
func Run(m *matrix.CSC, v algo.Variant, threads, k int) (*Result, error) {
	if k < 1 {
		k = 1
	}
	trials := make([]Trial, 0, k)
	var want int64
	for i := 0; i < k; i++ {
		wallStart := time.Now()
		cpuStart := cpuTime()
		count, err := algo.Count(m, v, threads)
		wall := time.Since(wallStart)
		cpu := cpuTime() - cpuStart
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		if i == 0 {
			want = count
		} else if count != want {
			return nil, fmt.Errorf("%w: trial %d got %d, trial 0 got %d", ErrInconsistent, i, count, want)
		}
		trials = append(trials, Trial{Wall: wall, CPU: cpu, Count: count})
	}

	wallSamples := make([]time.Duration, len(trials))
	cpuSamples := make([]time.Duration, len(trials))
	for i, t := range trials {
		wallSamples[i] = t.Wall
		cpuSamples[i] = t.CPU
	}

	return &Result{
		RunID:   newRunID(),
		Variant: v,
		Threads: threads,
		Count:   want,
		Trials:  trials,
		Wall:    ComputeStats(wallSamples),
		CPU:     ComputeStats(cpuSamples),
	}, nil
}

// Speedup is mean_seq / mean_par, undefined (returns 0) if par took no
// measurable time.
func Speedup(seq, par *Result) float64 {
	if par.Wall.Mean <= 0 {
		return 0
	}
	return float64(seq.Wall.Mean) / float64(par.Wall.Mean)
}

// Efficiency is Speedup / T, the fraction of perfect linear scaling
// achieved at par's thread count.
func Efficiency(seq, par *Result) float64 {
	if par.Threads <= 0 {
		return 0
	}
	return Speedup(seq, par) / float64(par.Threads)
}
