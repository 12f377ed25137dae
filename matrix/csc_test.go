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

package matrix

import "testing"

func sample() *CSC {
	// 3x3: col0 -> {1}, col1 -> {}, col2 -> {0,1}
	return &CSC{
		NRows: 3, NCols: 3, NNZ: 3,
		RowIdx: []uint32{1, 0, 1},
		ColPtr: []uint32{0, 1, 1, 3},
	}
}

func TestColumn(t *testing.T) {
	m := sample()
	if got := m.Column(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("column 0 = %v, want [1]", got)
	}
	if got := m.Column(1); len(got) != 0 {
		t.Errorf("column 1 = %v, want []", got)
	}
	if got := m.Column(2); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("column 2 = %v, want [0 1]", got)
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	m := sample()
	m.Free()
	if m.RowIdx != nil || m.ColPtr != nil || m.NRows != 0 || m.NNZ != 0 {
		t.Fatal("Free did not clear the matrix")
	}
	m.Free() // must not panic on an already-freed matrix
	var nilM *CSC
	nilM.Free() // must not panic on a nil receiver
}

func TestPrintDeterministic(t *testing.T) {
	m := sample()
	if got, want := m.String(), m.String(); got != want {
		t.Fatal("Print output is not deterministic across calls")
	}
	if m.String() == "" {
		t.Fatal("expected non-empty output")
	}
}

func TestValidateAcceptsSample(t *testing.T) {
	if err := Validate("test", sample()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsNonSquare(t *testing.T) {
	m := &CSC{NRows: 3, NCols: 4, NNZ: 0, RowIdx: []uint32{}, ColPtr: make([]uint32, 5)}
	if err := Validate("test", m); err == nil {
		t.Fatal("expected error for non-square matrix")
	}
}

func TestValidateRejectsOutOfRangeRowIndex(t *testing.T) {
	m := &CSC{NRows: 2, NCols: 2, NNZ: 1, RowIdx: []uint32{5}, ColPtr: []uint32{0, 1, 1}}
	if err := Validate("test", m); err == nil {
		t.Fatal("expected error for out-of-range row index")
	}
}

func TestValidateRejectsNonMonotoneColPtr(t *testing.T) {
	m := &CSC{NRows: 3, NCols: 3, NNZ: 2, RowIdx: []uint32{0, 1}, ColPtr: []uint32{0, 2, 1, 2}}
	if err := Validate("test", m); err == nil {
		t.Fatal("expected error for non-monotone col_ptr")
	}
}

func TestValidateRejectsBadColPtrLength(t *testing.T) {
	m := &CSC{NRows: 2, NCols: 2, NNZ: 0, RowIdx: []uint32{}, ColPtr: []uint32{0, 0}}
	if err := Validate("test", m); err == nil {
		t.Fatal("expected error for wrong col_ptr length")
	}
}
