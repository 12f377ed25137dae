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
	"os"
	"strconv"
)

// config holds a parsed command line: -t threads, -n trials, a single
// positional input path, plus -algo and -i for the multi-variant
// harness and interactive mode.
type config struct {
	threads     int
	trials      int
	algorithm   string // "seq-lp", "seq-uf", "par-lp", "par-uf", or "all"
	snapshot    string // optional path to write a compressed snapshot after load
	interactive bool
	filePath    string
	showHelp    bool
}

func usage(programName string) string {
	return fmt.Sprintf("./%s [-t n_threads] [-n n_trials] [-algo variant|all] [-snapshot path] [-i] <path>\n", programName)
}

func isuint(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}

// parseArgs walks argv with a manual scan recognizing
// -t/-n/-algo/-snapshot/-i/-h, with exactly one bare positional
// argument accepted as the input file path.
func parseArgs(argv []string) (config, error) {
	// threads: 0 defers to runtime.NumCPU() (see parallel.Workers);
	// algo "all" runs and cross-checks every variant.
	cfg := config{threads: 0, trials: 1, algorithm: "all"}

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-t":
			if i+1 >= len(argv) {
				return cfg, fmt.Errorf("missing argument for -t")
			}
			i++
			if !isuint(argv[i]) {
				return cfg, fmt.Errorf("invalid argument type for -t: %q", argv[i])
			}
			v, _ := strconv.Atoi(argv[i])
			cfg.threads = v
		case "-n":
			if i+1 >= len(argv) {
				return cfg, fmt.Errorf("missing argument for -n")
			}
			i++
			if !isuint(argv[i]) {
				return cfg, fmt.Errorf("invalid argument type for -n: %q", argv[i])
			}
			v, _ := strconv.Atoi(argv[i])
			cfg.trials = v
		case "-algo":
			if i+1 >= len(argv) {
				return cfg, fmt.Errorf("missing argument for -algo")
			}
			i++
			cfg.algorithm = argv[i]
		case "-snapshot":
			if i+1 >= len(argv) {
				return cfg, fmt.Errorf("missing argument for -snapshot")
			}
			i++
			cfg.snapshot = argv[i]
		case "-i":
			cfg.interactive = true
		case "-h":
			cfg.showHelp = true
			return cfg, nil
		default:
			if argv[i] != "" && argv[i][0] == '-' {
				return cfg, fmt.Errorf("unknown flag %q", argv[i])
			}
			if cfg.filePath != "" {
				return cfg, fmt.Errorf("multiple file paths specified")
			}
			if _, err := os.Stat(argv[i]); err != nil {
				return cfg, fmt.Errorf("cannot access file %q: %w", argv[i], err)
			}
			cfg.filePath = argv[i]
		}
	}

	if !cfg.interactive && cfg.filePath == "" {
		return cfg, fmt.Errorf("no input file specified")
	}
	return cfg, nil
}
