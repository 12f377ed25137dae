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

// Command csccount counts the connected components of a sparse binary
// graph across four algorithm variants, benchmarking them against a
// shared loaded matrix.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dc0d/onexit"
	"github.com/launix-de/csccount/algo"
	"github.com/launix-de/csccount/bench"
	"github.com/launix-de/csccount/matrix"
	"github.com/launix-de/csccount/reporter"
)

func main() {
	programName := filepath.Base(os.Args[0])
	rep := reporter.New(programName, os.Stderr)

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		rep.Report("parseargs", err)
		fmt.Fprint(os.Stderr, usage(programName))
		os.Exit(1)
	}
	if cfg.showHelp {
		fmt.Print(usage(programName))
		return
	}

	var m *matrix.CSC
	if cfg.filePath != "" {
		m, err = loadMatrix(cfg.filePath)
		if err != nil {
			rep.Report("load", err)
			os.Exit(1)
		}
		onexit.Register(func() { m.Free() })
		defer m.Free()

		if cfg.snapshot != "" {
			if err := writeSnapshot(cfg.snapshot, m); err != nil {
				rep.Report("snapshot", err)
				os.Exit(1)
			}
		}
	}

	if cfg.interactive {
		repl(rep, m, cfg)
		return
	}

	if err := runOnce(rep, m, cfg); err != nil {
		os.Exit(1)
	}
}

// loadMatrix dispatches on file extension: .mtx/.mm is Matrix Market,
// .json is the MATLAB-container sidecar, anything else is treated as a
// compressed snapshot written by this tool's own -snapshot flag.
func loadMatrix(path string) (*matrix.CSC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtx", ".mm":
		return matrix.LoadMatrixMarket(f)
	case ".json":
		return matrix.LoadMATLABContainer(f, "Problem", "A")
	default:
		return matrix.LoadSnapshot(f)
	}
}

func writeSnapshot(path string, m *matrix.CSC) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return matrix.SaveSnapshot(f, m)
}

// runOnce runs either a single named variant or every variant ("all"),
// printing a one-line summary per variant and, when more than one
// variant ran, a speedup/efficiency comparison against seq-uf.
func runOnce(rep reporter.Reporter, m *matrix.CSC, cfg config) error {
	variantsToRun := algo.All
	if cfg.algorithm != "all" {
		v, err := algo.ParseVariant(cfg.algorithm)
		if err != nil {
			rep.Report("run", err)
			return err
		}
		variantsToRun = []algo.Variant{v}
	}

	results := make(map[algo.Variant]*bench.Result, len(variantsToRun))
	for _, v := range variantsToRun {
		res, err := bench.Run(m, v, cfg.threads, cfg.trials)
		if err != nil {
			rep.Report("bench", err)
			return err
		}
		results[v] = res
		fmt.Printf("%-8s count=%d trials=%d wall_mean=%v wall_min=%v wall_max=%v wall_std=%v wall_median=%v\n",
			v, res.Count, len(res.Trials), res.Wall.Mean, res.Wall.Min, res.Wall.Max, res.Wall.Std, res.Wall.Median)
	}

	if seq, ok := results[algo.SeqUnionFind]; ok {
		for _, v := range []algo.Variant{algo.ParLabelProp, algo.ParUnionFind} {
			if par, ok := results[v]; ok {
				sp := bench.Speedup(seq, par)
				eff := bench.Efficiency(seq, par)
				fmt.Printf("%-8s speedup=%.2fx efficiency=%.2f\n", v, sp, eff)
			}
		}
	}
	return nil
}
