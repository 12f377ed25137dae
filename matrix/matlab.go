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
	"encoding/json"
	"io"
)

// matlabSparseField is the JSON sidecar shape for a MATLAB sparse
// container field: row indices (ir) and column offsets (jc) verbatim,
// the same two arrays a real matio binding would hand back from a
// mat_sparse_t. rows/cols carry the struct's declared dimensions.
type matlabSparseField struct {
	Rows uint32   `json:"rows"`
	Cols uint32   `json:"cols"`
	IR   []uint32 `json:"ir"`
	JC   []uint32 `json:"jc"`
}

type matlabContainer struct {
	Fields map[string]matlabSparseField `json:"fields"`
}

// LoadMATLABContainer reads a named sparse field (conventionally "A")
// from the "fields" object of the sidecar. structName (conventionally
// "Problem") is accepted but not looked up: the sidecar holds a single
// unnamed outer struct, so any name reads the same data.
// It expects the JSON sidecar shape of a MATLAB sparse container, since
// no Go binding for the matio C library exists in this module's
// dependency set; ir/jc are taken verbatim from the container, exactly
// as a mat_sparse_t exposes them.
func LoadMATLABContainer(r io.Reader, structName, fieldName string) (*CSC, error) {
	const op = "LoadMATLABContainer"
	_ = structName // the sidecar has exactly one outer struct; parameter kept so callers can name it

	var c matlabContainer
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, newLoadError(op, ErrIO, err.Error())
	}
	field, ok := c.Fields[fieldName]
	if !ok {
		return nil, newLoadError(op, ErrFormat, "field \""+fieldName+"\" not found")
	}
	if err := validateShape(op, 2, field.Rows, field.Cols); err != nil {
		return nil, err
	}
	if uint32(len(field.JC)) != field.Cols+1 {
		return nil, newLoadError(op, ErrShape, "jc length does not match cols+1")
	}
	nnz := field.JC[field.Cols]
	if uint32(len(field.IR)) != nnz {
		return nil, newLoadError(op, ErrShape, "ir length does not match jc[cols]")
	}

	rowIdx := make([]uint32, nnz)
	copy(rowIdx, field.IR)
	colPtr := make([]uint32, field.Cols+1)
	copy(colPtr, field.JC)

	m := &CSC{NRows: field.Rows, NCols: field.Cols, NNZ: nnz, RowIdx: rowIdx, ColPtr: colPtr}
	if err := Validate(op, m); err != nil {
		return nil, err
	}
	return m, nil
}
