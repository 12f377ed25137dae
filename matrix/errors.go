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
	"errors"
	"fmt"
)

// Sentinel error kinds, matched with errors.Is by callers instead of
// string comparison. Each concrete error returned by a loader wraps one
// of these.
var (
	ErrIO       = errors.New("io error")
	ErrFormat   = errors.New("format error")
	ErrShape    = errors.New("shape error")
	ErrAlloc    = errors.New("allocation error")
	ErrArgument = errors.New("invalid argument")
)

// LoadError names the loader operation that failed and wraps the
// underlying sentinel kind, so callers can report both the operation
// and match the kind with errors.Is.
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(op string, kind error, detail string) *LoadError {
	if detail == "" {
		return &LoadError{Op: op, Err: kind}
	}
	return &LoadError{Op: op, Err: fmt.Errorf("%s: %w", detail, kind)}
}
