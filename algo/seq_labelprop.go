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
	"sort"

	"github.com/launix-de/csccount/matrix"
)

// swapMin propagates the smaller of the two labels onto both nodes,
// reporting whether anything changed.
func swapMin(label []uint32, i, j uint32) bool {
	if label[i] == label[j] {
		return false
	}
	if label[i] < label[j] {
		label[j] = label[i]
	} else {
		label[i] = label[j]
	}
	return true
}

// CountSeqLabelProp implements the sequential label-propagation variant:
// repeatedly sweep every edge, pulling both endpoints down to the
// smaller of their two labels, until a full sweep changes nothing. The
// fixed point assigns every node in a component the component's minimum
// index as label, so the number of distinct labels is the component
// count.
func CountSeqLabelProp(m *matrix.CSC) (int64, error) {
	n := m.N()
	label := make([]uint32, n)
	for i := range label {
		label[i] = uint32(i)
	}

	for {
		changed := false
		for c := uint32(0); c < m.NCols; c++ {
			for _, r := range m.Column(c) {
				if swapMin(label, c, r) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	sort.Slice(label, func(a, b int) bool { return label[a] < label[b] })
	var count int64
	for i, v := range label {
		if i == 0 || v != label[i-1] {
			count++
		}
	}
	return count, nil
}
