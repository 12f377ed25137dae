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

import "fmt"

// validateShape rejects a rank that isn't 2 OR a non-square matrix.
// rank is always 2 for the matrix container formats this package
// parses, so the parameter exists for any future loader backend that
// carries a rank field; today it only ever guards squareness.
func validateShape(op string, rank int, rows, cols uint32) error {
	if rank != 2 || rows != cols {
		return newLoadError(op, ErrShape, fmt.Sprintf("rank=%d rows=%d cols=%d: matrix must be 2-D and square", rank, rows, cols))
	}
	return nil
}

// validateRowIndices rejects any stored row index >= n.
func validateRowIndices(op string, rowIdx []uint32, n uint32) error {
	for _, r := range rowIdx {
		if r >= n {
			return newLoadError(op, ErrShape, fmt.Sprintf("row index %d out of range [0,%d)", r, n))
		}
	}
	return nil
}

// validateColPtr checks the col_ptr invariants: length, endpoints, and
// monotonicity.
func validateColPtr(op string, colPtr []uint32, ncols, nnz uint32) error {
	if uint32(len(colPtr)) != ncols+1 {
		return newLoadError(op, ErrShape, fmt.Sprintf("col_ptr length %d, want %d", len(colPtr), ncols+1))
	}
	if ncols == 0 {
		return nil
	}
	if colPtr[0] != 0 {
		return newLoadError(op, ErrShape, "col_ptr[0] must be 0")
	}
	if colPtr[ncols] != nnz {
		return newLoadError(op, ErrShape, fmt.Sprintf("col_ptr[ncols]=%d, want nnz=%d", colPtr[ncols], nnz))
	}
	for j := uint32(0); j < ncols; j++ {
		if colPtr[j] > colPtr[j+1] {
			return newLoadError(op, ErrShape, fmt.Sprintf("col_ptr not monotone at column %d", j))
		}
	}
	return nil
}

// Validate checks every structural invariant of a constructed matrix:
// squareness, row_idx length, col_ptr shape and monotonicity, and row
// index range. Loaders call this before returning a matrix to the
// caller; it never mutates m.
func Validate(op string, m *CSC) error {
	if err := validateShape(op, 2, m.NRows, m.NCols); err != nil {
		return err
	}
	if uint32(len(m.RowIdx)) != m.NNZ {
		return newLoadError(op, ErrShape, fmt.Sprintf("row_idx length %d, want nnz=%d", len(m.RowIdx), m.NNZ))
	}
	if err := validateColPtr(op, m.ColPtr, m.NCols, m.NNZ); err != nil {
		return err
	}
	return validateRowIndices(op, m.RowIdx, m.NRows)
}
