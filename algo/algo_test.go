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
	"math/rand"
	"strings"
	"testing"

	"github.com/launix-de/csccount/matrix"
)

// buildFromEdges constructs a CSC matrix directly from a 0-based edge
// list, bypassing the Matrix Market loader for tests that need large or
// generated graphs.
func buildFromEdges(t *testing.T, n uint32, edges [][2]uint32) *matrix.CSC {
	if t != nil {
		t.Helper()
	}
	colPtr := make([]uint32, n+1)
	for _, e := range edges {
		colPtr[e[1]+1]++
	}
	for c := uint32(0); c < n; c++ {
		colPtr[c+1] += colPtr[c]
	}
	rowIdx := make([]uint32, len(edges))
	cursor := make([]uint32, n)
	copy(cursor, colPtr[:n])
	for _, e := range edges {
		rowIdx[cursor[e[1]]] = e[0]
		cursor[e[1]]++
	}
	return &matrix.CSC{NRows: n, NCols: n, NNZ: uint32(len(edges)), RowIdx: rowIdx, ColPtr: colPtr}
}

func loadMTX(t *testing.T, src string) *matrix.CSC {
	t.Helper()
	m, err := matrix.LoadMatrixMarket(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadMatrixMarket: %v", err)
	}
	return m
}

func twoPaths(n uint32) *matrix.CSC {
	half := n / 2
	var edges [][2]uint32
	for i := uint32(0); i+1 < half; i++ {
		edges = append(edges, [2]uint32{i, i + 1})
	}
	for i := half; i+1 < n; i++ {
		edges = append(edges, [2]uint32{i, i + 1})
	}
	return buildFromEdges(nil, n, edges) // t unused for matrix-only construction below
}

func completeGraph(n uint32) *matrix.CSC {
	var edges [][2]uint32
	for i := uint32(0); i < n; i++ {
		for j := uint32(0); j < n; j++ {
			if i != j {
				edges = append(edges, [2]uint32{i, j})
			}
		}
	}
	return buildFromEdges(nil, n, edges)
}

var variants = []Variant{SeqLabelProp, SeqUnionFind, ParLabelProp, ParUnionFind}

const (
	s1 = `%%MatrixMarket matrix coordinate pattern general
5 5 0
`
	s2 = `%%MatrixMarket matrix coordinate pattern general
4 4 6
1 2
2 3
3 1
2 1
3 2
1 3
`
	s3 = `%%MatrixMarket matrix coordinate pattern general
6 6 4
1 2
3 4
5 6
2 1
`
	s4 = `%%MatrixMarket matrix coordinate pattern general
3 3 3
1 1
2 2
3 3
`
)

func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.CSC
		want int64
	}{
		{"S1_empty", loadMTX(t, s1), 5},
		{"S2_triangle_plus_isolated", loadMTX(t, s2), 2},
		{"S3_asymmetric_pairs", loadMTX(t, s3), 3},
		{"S4_self_loops_only", loadMTX(t, s4), 3},
		{"S5_two_paths", twoPaths(1000), 2},
		{"S6_complete_graph", completeGraph(1000), 1},
	}

	for _, c := range cases {
		for _, v := range variants {
			t.Run(c.name+"/"+v.String(), func(t *testing.T) {
				got, err := Count(c.m, v, 4)
				if err != nil {
					t.Fatalf("Count: %v", err)
				}
				if got != c.want {
					t.Errorf("got %d, want %d", got, c.want)
				}
			})
		}
	}
}

func TestParallelThreadCountsAgree(t *testing.T) {
	graphs := map[string]*matrix.CSC{
		"two_paths": twoPaths(1000),
		"complete":  completeGraph(1000),
	}
	for name, m := range graphs {
		want, err := CountSeqUnionFind(m)
		if err != nil {
			t.Fatalf("%s: CountSeqUnionFind: %v", name, err)
		}
		for _, threads := range []int{1, 2, 4, 8, 16} {
			for _, v := range []Variant{ParLabelProp, ParUnionFind} {
				got, err := Count(m, v, threads)
				if err != nil {
					t.Fatalf("%s/%s/T=%d: %v", name, v, threads, err)
				}
				if got != want {
					t.Errorf("%s/%s/T=%d: got %d, want %d", name, v, threads, got, want)
				}
			}
		}
	}
}

// TestAgreementRandomGraphs is the Erdős–Rényi stress property: parallel
// union-find must agree with sequential union-find across many
// independently seeded random graphs. Uses a far smaller N than the
// stress property's 10^5 to keep the unit test suite fast; the shape
// (n, p, T) is otherwise identical.
func TestAgreementRandomGraphs(t *testing.T) {
	const n = 2000
	const p = 10.0 / float64(n)
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		var edges [][2]uint32
		for i := uint32(0); i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					edges = append(edges, [2]uint32{i, j})
					edges = append(edges, [2]uint32{j, i})
				}
			}
		}
		m := buildFromEdges(t, n, edges)
		want, err := CountSeqUnionFind(m)
		if err != nil {
			t.Fatalf("seed %d: CountSeqUnionFind: %v", seed, err)
		}
		got, err := Count(m, ParUnionFind, 16)
		if err != nil {
			t.Fatalf("seed %d: Count(ParUnionFind): %v", seed, err)
		}
		if got != want {
			t.Errorf("seed %d: par-uf=%d seq-uf=%d", seed, got, want)
		}
	}
}

func TestInvariantDuplicateTolerance(t *testing.T) {
	noDup := buildFromEdges(t, 4, [][2]uint32{{0, 1}, {1, 0}})
	withDup := buildFromEdges(t, 4, [][2]uint32{{0, 1}, {1, 0}, {0, 1}, {1, 0}, {0, 1}})
	for _, v := range variants {
		a, err := Count(noDup, v, 2)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		b, err := Count(withDup, v, 2)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if a != b {
			t.Errorf("%s: no-dup=%d with-dup=%d", v, a, b)
		}
	}
}

func TestInvariantDisjointUnion(t *testing.T) {
	// Three disjoint triangles: 9 nodes, 3 components.
	var edges [][2]uint32
	for b := uint32(0); b < 3; b++ {
		base := b * 3
		edges = append(edges,
			[2]uint32{base, base + 1}, [2]uint32{base + 1, base},
			[2]uint32{base + 1, base + 2}, [2]uint32{base + 2, base + 1},
			[2]uint32{base + 2, base}, [2]uint32{base, base + 2},
		)
	}
	m := buildFromEdges(t, 9, edges)
	for _, v := range variants {
		got, err := Count(m, v, 3)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if got != 3 {
			t.Errorf("%s: got %d, want 3", v, got)
		}
	}
}

func TestCanonicalRootIsMinIndex(t *testing.T) {
	// A path 5-3-1 and 4-2 should canonicalize to roots {1, 2}; the
	// isolated node 0 stays its own root.
	m := buildFromEdges(nil, 6, [][2]uint32{
		{5, 3}, {3, 5}, {3, 1}, {1, 3},
		{4, 2}, {2, 4},
	})
	n := int(m.N())
	label := make([]uint32, n)
	for i := range label {
		label[i] = uint32(i)
	}
	for c := uint32(0); c < m.NCols; c++ {
		for _, r := range m.Column(c) {
			unionByIndex(label, c, r)
		}
	}
	for i := uint32(0); i < uint32(n); i++ {
		findRootHalving(label, i)
	}
	roots := map[uint32]bool{}
	for i, l := range label {
		if uint32(i) == l {
			roots[l] = true
		}
	}
	want := map[uint32]bool{1: true, 2: true, 0: true}
	if len(roots) != len(want) {
		t.Fatalf("got roots %v, want 3 roots including {0,1,2}", roots)
	}
	for r := range want {
		if !roots[r] {
			t.Errorf("expected %d to be a canonical root, roots=%v", r, roots)
		}
	}
}

func TestCountRejectsBadInput(t *testing.T) {
	m := buildFromEdges(nil, 3, nil)
	if _, err := Count(m, Variant(99), 1); err == nil {
		t.Error("expected error for unknown variant")
	}
	if _, err := Count(m, SeqUnionFind, -1); err == nil {
		t.Error("expected error for negative thread count")
	}
	if _, err := ParseVariant("bogus"); err == nil {
		t.Error("expected error for unknown variant name")
	}
}

func TestCountTrivialMatrices(t *testing.T) {
	for _, v := range variants {
		got, err := Count(nil, v, 2)
		if err != nil || got != 0 {
			t.Errorf("%s: nil matrix: got (%d, %v), want (0, nil)", v, got, err)
		}
		empty := buildFromEdges(nil, 0, nil)
		got, err = Count(empty, v, 2)
		if err != nil || got != 0 {
			t.Errorf("%s: 0x0 matrix: got (%d, %v), want (0, nil)", v, got, err)
		}
	}
}
