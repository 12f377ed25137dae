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
	"fmt"
	"io"
	"strconv"
	"strings"
)

type mtxFormat int

const (
	formatCoordinate mtxFormat = iota
	formatArray
)

type mtxField int

const (
	fieldPattern mtxField = iota
	fieldReal
)

type mtxSymmetry int

const (
	symGeneral mtxSymmetry = iota
	symSymmetric
	symSkewSymmetric
	symHermitian
)

type edge struct{ r, c uint32 }

// LoadMatrixMarket parses a .mtx file (coordinate or array, pattern or
// real, any symmetry kind) and returns a validated CSC matrix. Indices
// on disk are 1-based; the returned matrix is 0-based.
//
// A scanning goroutine feeds a line channel so a very large file can
// start producing edges before it is fully read off disk.
func LoadMatrixMarket(r io.Reader) (*CSC, error) {
	const op = "LoadMatrixMarket"

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	lines := make(chan string, 512)
	scanErr := make(chan error, 1)
	go func() {
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()
	// The scanner goroutine blocks on lines until drained; on an early
	// error return the drain lets it run to completion instead of leaking.
	defer func() {
		go func() {
			for range lines {
			}
		}()
	}()

	header, ok := <-lines
	if !ok {
		return nil, newLoadError(op, ErrIO, "empty input")
	}
	format, field, symmetry, err := parseMtxHeader(header)
	if err != nil {
		return nil, newLoadError(op, ErrFormat, err.Error())
	}

	var sizeLine string
	for {
		l, ok := <-lines
		if !ok {
			return nil, newLoadError(op, ErrFormat, "missing size line")
		}
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "%") {
			continue
		}
		sizeLine = l
		break
	}

	var m *CSC
	switch format {
	case formatCoordinate:
		m, err = loadCoordinate(op, sizeLine, lines, field, symmetry)
	default:
		m, err = loadArray(op, sizeLine, lines, symmetry)
	}
	if err != nil {
		return nil, err
	}
	if ioErr := <-scanErr; ioErr != nil {
		return nil, newLoadError(op, ErrIO, ioErr.Error())
	}
	return m, nil
}

func parseMtxHeader(line string) (mtxFormat, mtxField, mtxSymmetry, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != "%%MatrixMarket" || strings.ToLower(fields[1]) != "matrix" {
		return 0, 0, 0, fmt.Errorf("malformed header line %q", line)
	}
	var format mtxFormat
	switch strings.ToLower(fields[2]) {
	case "coordinate":
		format = formatCoordinate
	case "array":
		format = formatArray
	default:
		return 0, 0, 0, fmt.Errorf("unsupported matrix format %q", fields[2])
	}
	var field mtxField
	switch strings.ToLower(fields[3]) {
	case "pattern":
		field = fieldPattern
	case "real":
		field = fieldReal
	default:
		return 0, 0, 0, fmt.Errorf("unsupported element field %q", fields[3])
	}
	var symmetry mtxSymmetry
	switch strings.ToLower(fields[4]) {
	case "general":
		symmetry = symGeneral
	case "symmetric":
		symmetry = symSymmetric
	case "skew-symmetric":
		symmetry = symSkewSymmetric
	case "hermitian":
		symmetry = symHermitian
	default:
		return 0, 0, 0, fmt.Errorf("unsupported symmetry %q", fields[4])
	}
	return format, field, symmetry, nil
}

func parseDim(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func loadCoordinate(op, sizeLine string, lines <-chan string, field mtxField, symmetry mtxSymmetry) (*CSC, error) {
	parts := strings.Fields(sizeLine)
	if len(parts) != 3 {
		return nil, newLoadError(op, ErrFormat, "coordinate size line must have 3 fields: nrows ncols nnz")
	}
	nrows, err1 := parseDim(parts[0])
	ncols, err2 := parseDim(parts[1])
	nnzStored, err3 := parseDim(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, newLoadError(op, ErrFormat, "malformed coordinate size line")
	}
	if err := validateShape(op, 2, nrows, ncols); err != nil {
		return nil, err
	}

	edges := make([]edge, 0, nnzStored)
	wantFields := 2
	if field == fieldReal {
		wantFields = 3
	}
	for read := uint32(0); read < nnzStored; {
		line, ok := <-lines
		if !ok {
			return nil, newLoadError(op, ErrFormat, "unexpected end of input reading coordinate entries")
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fs := strings.Fields(line)
		if len(fs) < wantFields {
			return nil, newLoadError(op, ErrFormat, fmt.Sprintf("malformed entry line %q", line))
		}
		i, erri := strconv.ParseUint(fs[0], 10, 32)
		j, errj := strconv.ParseUint(fs[1], 10, 32)
		if erri != nil || errj != nil || i == 0 || j == 0 {
			return nil, newLoadError(op, ErrFormat, fmt.Sprintf("malformed 1-based index in entry %q", line))
		}
		r, c := uint32(i-1), uint32(j-1)
		if r >= nrows || c >= ncols {
			return nil, newLoadError(op, ErrShape, fmt.Sprintf("entry (%d,%d) out of bounds", i, j))
		}
		edges = append(edges, edge{r, c})
		if symmetry != symGeneral && r != c {
			edges = append(edges, edge{c, r})
		}
		read++
	}
	return buildCSC(op, nrows, ncols, edges)
}

// tokenReader pulls whitespace-separated tokens across an arbitrary
// number of lines, needed because array-format values are not
// guaranteed one-per-line.
type tokenReader struct {
	lines <-chan string
	buf   []string
}

func (t *tokenReader) next() (string, bool) {
	for len(t.buf) == 0 {
		line, ok := <-t.lines
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		t.buf = strings.Fields(line)
	}
	tok := t.buf[0]
	t.buf = t.buf[1:]
	return tok, true
}

func loadArray(op, sizeLine string, lines <-chan string, symmetry mtxSymmetry) (*CSC, error) {
	parts := strings.Fields(sizeLine)
	if len(parts) != 2 {
		return nil, newLoadError(op, ErrFormat, "array size line must have 2 fields: nrows ncols")
	}
	nrows, err1 := parseDim(parts[0])
	ncols, err2 := parseDim(parts[1])
	if err1 != nil || err2 != nil {
		return nil, newLoadError(op, ErrFormat, "malformed array size line")
	}
	if err := validateShape(op, 2, nrows, ncols); err != nil {
		return nil, err
	}

	tr := &tokenReader{lines: lines}
	var edges []edge
	total := uint64(nrows) * uint64(ncols)
	for p := uint64(0); p < total; p++ {
		tok, ok := tr.next()
		if !ok {
			return nil, newLoadError(op, ErrFormat, "unexpected end of input reading array values")
		}
		val, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, newLoadError(op, ErrFormat, fmt.Sprintf("malformed array value %q", tok))
		}
		if val == 0 {
			continue // array format drops zeros
		}
		if nrows == 0 {
			continue
		}
		c := uint32(p / uint64(nrows))
		r := uint32(p % uint64(nrows))
		edges = append(edges, edge{r, c})
		if symmetry != symGeneral && r != c {
			edges = append(edges, edge{c, r})
		}
	}
	return buildCSC(op, nrows, ncols, edges)
}

// buildCSC compresses an unordered edge list into CSC form via a
// counting sort over columns — O(nnz + ncols), no comparison sort
// needed since column indices are small dense integers.
func buildCSC(op string, nrows, ncols uint32, edges []edge) (*CSC, error) {
	colPtr := make([]uint32, ncols+1)
	for _, e := range edges {
		colPtr[e.c+1]++
	}
	for j := uint32(0); j < ncols; j++ {
		colPtr[j+1] += colPtr[j]
	}
	rowIdx := make([]uint32, len(edges))
	cursor := make([]uint32, ncols)
	copy(cursor, colPtr[:ncols])
	for _, e := range edges {
		rowIdx[cursor[e.c]] = e.r
		cursor[e.c]++
	}
	m := &CSC{NRows: nrows, NCols: ncols, NNZ: uint32(len(edges)), RowIdx: rowIdx, ColPtr: colPtr}
	if err := Validate(op, m); err != nil {
		return nil, err
	}
	return m, nil
}
