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

// Package matrix owns the sparse binary adjacency structure that every
// counting algorithm reads: a Compressed Sparse Column (CSC) matrix with
// implicit 1-valued entries.
package matrix

import (
	"fmt"
	"strings"
)

// CSC is an immutable-after-construction Compressed Sparse Column binary
// matrix. Entry (r, c) with r != c is interpreted as an undirected graph
// edge r—c. Symmetry is not required in storage.
type CSC struct {
	NRows, NCols uint32
	NNZ          uint32
	RowIdx       []uint32 // length NNZ, row indices in [0, NRows)
	ColPtr       []uint32 // length NCols+1, ColPtr[0]==0, ColPtr[NCols]==NNZ
}

// N returns the shared row/column dimension. Callers rely on the loader
// having already enforced NRows == NCols.
func (m *CSC) N() uint32 {
	return m.NRows
}

// Column returns the row indices stored in column c, sliced directly out
// of RowIdx. Not sorted, may contain duplicates; both are tolerated by
// every algorithm in this module.
func (m *CSC) Column(c uint32) []uint32 {
	return m.RowIdx[m.ColPtr[c]:m.ColPtr[c+1]]
}

// Free releases the matrix's owned storage. Idempotent. Go's garbage
// collector reclaims the backing arrays once unreferenced; Free drops
// this value's references to them, so a long-running harness that still
// holds the *CSC lets the next GC cycle reclaim a multi-gigabyte matrix.
func (m *CSC) Free() {
	if m == nil {
		return
	}
	m.RowIdx = nil
	m.ColPtr = nil
	m.NRows, m.NCols, m.NNZ = 0, 0, 0
}

// Print renders (row, col) pairs in column-major, intra-column stored
// order, 1-based, ten entries per line. Deterministic: used only for
// diagnostics and round-trip tests, never for graph semantics.
func (m *CSC) Print(w *strings.Builder) {
	fmt.Fprintf(w, "Binary Sparse Matrix:\nN:%d, M:%d, Non-Zero Elements:%d\n\n", m.NRows, m.NCols, m.NNZ)
	const perLine = 10
	onLine := 0
	for c := uint32(0); c < m.NCols; c++ {
		for _, r := range m.Column(c) {
			fmt.Fprintf(w, "(%d,%d)", r+1, c+1)
			onLine++
			if onLine < perLine {
				w.WriteByte(' ')
			} else {
				w.WriteByte('\n')
				onLine = 0
			}
		}
	}
	w.WriteByte('\n')
}

// String renders Print's output for convenience (tests, debugging).
func (m *CSC) String() string {
	var b strings.Builder
	m.Print(&b)
	return b.String()
}
