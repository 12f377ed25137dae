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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/launix-de/csccount/algo"
	"github.com/launix-de/csccount/bench"
	"github.com/launix-de/csccount/matrix"
	"github.com/launix-de/csccount/reporter"
)

const (
	newPrompt    = "\033[32mcsc>\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

// session holds the REPL's mutable state across commands: the currently
// loaded matrix and the results of the most recent `run`, so `stat` can
// report on them without re-running anything.
type session struct {
	m       *matrix.CSC
	results map[algo.Variant]*bench.Result
}

// repl is an interactive session that reloads or re-benchmarks a
// matrix on command: readline for history/editing, a
// recover-and-continue wrapper around each command so one bad line
// never kills the session.
func repl(rep reporter.Reporter, m *matrix.CSC, cfg config) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".csccount-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		rep.Report("repl", err)
		return
	}
	defer l.Close()
	// Close also flushes the history file, so a session torn down via
	// os.Exit still keeps its command history.
	onexit.Register(func() { l.Close() })
	l.CaptureExitSignal()

	fmt.Println("csccount interactive mode. Commands: load <path>, run <algo|all> [threads] [trials], stat, quit")

	s := &session{m: m, results: map[algo.Variant]*bench.Result{}}
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			rep.Report("repl", err)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Println("panic:", r)
				}
			}()
			runCommand(rep, s, cfg, line)
		}()
	}
}

func runCommand(rep reporter.Reporter, s *session, cfg config, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		fmt.Println("load <path>                    load a new matrix")
		fmt.Println("run <algo|all> [threads] [trials]   run the counter")
		fmt.Println("stat                           show the last run's statistics")
		fmt.Println("quit                           leave the session")
	case "load":
		if len(fields) != 2 {
			fmt.Println(resultPrompt, "usage: load <path>")
			return
		}
		next, err := loadMatrix(fields[1])
		if err != nil {
			rep.Report("load", err)
			return
		}
		if s.m != nil {
			s.m.Free()
		}
		s.m = next
		s.results = map[algo.Variant]*bench.Result{}
		fmt.Println(resultPrompt, "loaded", fields[1])
	case "run":
		if s.m == nil {
			fmt.Println(resultPrompt, "no matrix loaded; use \"load <path>\" first")
			return
		}
		if len(fields) < 2 {
			fmt.Println(resultPrompt, "usage: run <algo|all> [threads] [trials]")
			return
		}
		threads, trials := cfg.threads, cfg.trials
		if len(fields) >= 3 {
			if v, err := strconv.Atoi(fields[2]); err == nil {
				threads = v
			}
		}
		if len(fields) >= 4 {
			if v, err := strconv.Atoi(fields[3]); err == nil {
				trials = v
			}
		}
		runREPLCount(rep, s, fields[1], threads, trials)
	case "stat":
		printStats(s)
	default:
		fmt.Println(resultPrompt, "unknown command:", fields[0])
	}
}

func runREPLCount(rep reporter.Reporter, s *session, name string, threads, trials int) {
	variantsToRun := algo.All
	if name != "all" {
		v, err := algo.ParseVariant(name)
		if err != nil {
			rep.Report("run", err)
			return
		}
		variantsToRun = []algo.Variant{v}
	}
	for _, v := range variantsToRun {
		res, err := bench.Run(s.m, v, threads, trials)
		if err != nil {
			rep.Report("run", err)
			continue
		}
		s.results[v] = res
		fmt.Printf("%s %-8s count=%d wall_mean=%v\n", resultPrompt, v, res.Count, res.Wall.Mean)
	}
}

func printStats(s *session) {
	if len(s.results) == 0 {
		fmt.Println(resultPrompt, "no results yet; use \"run <algo|all>\" first")
		return
	}
	for _, v := range algo.All {
		res, ok := s.results[v]
		if !ok {
			continue
		}
		fmt.Printf("%s %-8s count=%d trials=%d wall_mean=%v wall_min=%v wall_max=%v wall_std=%v wall_median=%v\n",
			resultPrompt, v, res.Count, len(res.Trials), res.Wall.Mean, res.Wall.Min, res.Wall.Max, res.Wall.Std, res.Wall.Median)
	}
	if seq, ok := s.results[algo.SeqUnionFind]; ok {
		for _, v := range []algo.Variant{algo.ParLabelProp, algo.ParUnionFind} {
			if par, ok := s.results[v]; ok {
				fmt.Printf("%s %-8s speedup=%.2fx efficiency=%.2f\n",
					resultPrompt, v, bench.Speedup(seq, par), bench.Efficiency(seq, par))
			}
		}
	}
}
