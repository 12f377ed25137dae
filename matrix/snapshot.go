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

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz"
)

const snapshotMagic uint32 = 0x43534332 // "CSC2"

// SaveSnapshot writes m as a compact binary container (header, col_ptr,
// row_idx) piped through xz. This exists solely for round-trip testing
// and the benchmark harness's optional -snapshot flag; no algorithm
// depends on it.
func SaveSnapshot(w io.Writer, m *CSC) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	zw, err := xz.NewWriter(bw)
	if err != nil {
		return newLoadError("SaveSnapshot", ErrIO, err.Error())
	}
	if err := binary.Write(zw, binary.LittleEndian, snapshotMagic); err != nil {
		return newLoadError("SaveSnapshot", ErrIO, err.Error())
	}
	for _, v := range []uint32{m.NRows, m.NCols, m.NNZ} {
		if err := binary.Write(zw, binary.LittleEndian, v); err != nil {
			return newLoadError("SaveSnapshot", ErrIO, err.Error())
		}
	}
	if err := binary.Write(zw, binary.LittleEndian, m.ColPtr); err != nil {
		return newLoadError("SaveSnapshot", ErrIO, err.Error())
	}
	if err := binary.Write(zw, binary.LittleEndian, m.RowIdx); err != nil {
		return newLoadError("SaveSnapshot", ErrIO, err.Error())
	}
	if err := zw.Close(); err != nil {
		return newLoadError("SaveSnapshot", ErrIO, err.Error())
	}
	return bw.Flush()
}

// LoadSnapshot reads back a matrix written by SaveSnapshot and validates
// it before returning.
func LoadSnapshot(r io.Reader) (*CSC, error) {
	const op = "LoadSnapshot"
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, newLoadError(op, ErrIO, err.Error())
	}
	var magic uint32
	if err := binary.Read(zr, binary.LittleEndian, &magic); err != nil {
		return nil, newLoadError(op, ErrIO, err.Error())
	}
	if magic != snapshotMagic {
		return nil, newLoadError(op, ErrFormat, "bad snapshot magic")
	}
	var nrows, ncols, nnz uint32
	for _, v := range []*uint32{&nrows, &ncols, &nnz} {
		if err := binary.Read(zr, binary.LittleEndian, v); err != nil {
			return nil, newLoadError(op, ErrIO, err.Error())
		}
	}
	colPtr := make([]uint32, ncols+1)
	if err := binary.Read(zr, binary.LittleEndian, colPtr); err != nil {
		return nil, newLoadError(op, ErrIO, err.Error())
	}
	rowIdx := make([]uint32, nnz)
	if err := binary.Read(zr, binary.LittleEndian, rowIdx); err != nil {
		return nil, newLoadError(op, ErrIO, err.Error())
	}
	m := &CSC{NRows: nrows, NCols: ncols, NNZ: nnz, RowIdx: rowIdx, ColPtr: colPtr}
	if err := Validate(op, m); err != nil {
		return nil, err
	}
	return m, nil
}
