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

// Package algo holds the four connected-components counting variants —
// sequential and parallel label propagation, sequential and lock-free
// parallel union-find — plus the dispatcher that picks one of them.
package algo

import (
	"fmt"

	"github.com/launix-de/csccount/matrix"
)

// Variant selects one of the four counting algorithms.
type Variant int

const (
	SeqLabelProp Variant = iota
	SeqUnionFind
	ParLabelProp
	ParUnionFind
)

func (v Variant) String() string {
	switch v {
	case SeqLabelProp:
		return "seq-lp"
	case SeqUnionFind:
		return "seq-uf"
	case ParLabelProp:
		return "par-lp"
	case ParUnionFind:
		return "par-uf"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant maps a CLI/config string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "seq-lp":
		return SeqLabelProp, nil
	case "seq-uf":
		return SeqUnionFind, nil
	case "par-lp":
		return ParLabelProp, nil
	case "par-uf":
		return ParUnionFind, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, s)
	}
}

// All lists every variant in a stable order, used by the harness and the
// CLI's "-algo all" mode.
var All = []Variant{SeqLabelProp, SeqUnionFind, ParLabelProp, ParUnionFind}

// Count runs the requested variant over m with the given thread count
// (ignored by the sequential variants) and returns the component count.
// A nil or zero-dimension matrix short-circuits to 0 components with no
// allocation; it is not an error. A non-nil error always accompanies a
// meaningless count, so callers check it instead of a negative-count
// sentinel.
func Count(m *matrix.CSC, v Variant, threads int) (int64, error) {
	if threads < 0 {
		return 0, fmt.Errorf("%w: negative thread count %d", ErrInvalidArgument, threads)
	}
	if m == nil || m.N() == 0 {
		return 0, nil
	}
	switch v {
	case SeqLabelProp:
		return CountSeqLabelProp(m)
	case SeqUnionFind:
		return CountSeqUnionFind(m)
	case ParLabelProp:
		return CountParLabelProp(m, threads)
	case ParUnionFind:
		return CountParUnionFind(m, threads)
	default:
		return 0, fmt.Errorf("%w: unknown algorithm variant %d", ErrInvalidArgument, int(v))
	}
}
