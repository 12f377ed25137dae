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

// Package reporter formats user-facing errors as
// "program: operation: message". The program name travels in an
// injected Reporter value rather than a package-level global, so each
// entry point can hold its own and tests can capture output instead of
// reading stderr.
package reporter

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints structured, user-facing error messages naming both
// the program and the operation that failed.
type Reporter struct {
	ProgramName string
	Out         io.Writer
}

// New builds a Reporter writing to out (stderr when nil) under the
// given program name.
func New(programName string, out io.Writer) Reporter {
	if out == nil {
		out = os.Stderr
	}
	return Reporter{ProgramName: programName, Out: out}
}

// Report writes "<program>: <op>: <err>" to Out. A nil err is a no-op,
// so callers can write `defer r.Report(op, err)`-style deferred checks
// without an extra nil guard at each call site.
func (r Reporter) Report(op string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(r.Out, "%s: %s: %v\n", r.ProgramName, op, err)
}

// Fatal reports err (if non-nil) and exits with status 1.
func (r Reporter) Fatal(op string, err error) {
	if err == nil {
		return
	}
	r.Report(op, err)
	os.Exit(1)
}
