// Command covercheck enforces a per-file statement coverage floor on a
// profile written by go test -coverprofile.
//
//	go test -coverprofile=coverage.out ./...
//	go run ./internal/tools/covercheck -profile coverage.out -include setupgen/pkg/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

type fileCov struct {
	total   int
	covered int
}

func (fc fileCov) percent() float64 {
	return float64(fc.covered) * 100.0 / float64(fc.total)
}

func main() {
	var profile string
	var threshold float64
	var include string
	flag.StringVar(&profile, "profile", "coverage.out", "coverage profile file (go test -coverprofile)")
	flag.Float64Var(&threshold, "threshold", 80.0, "minimum per-file coverage percentage")
	flag.StringVar(&include, "include", "setupgen/pkg/", "comma-separated import path prefixes to check")
	flag.Parse()

	f, err := os.Open(profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "covercheck: failed to open profile: %v\n", err)
		os.Exit(2)
	}
	defer f.Close()

	failed, err := check(f, threshold, splitFilters(include))
	if err != nil {
		fmt.Fprintf(os.Stderr, "covercheck: read error: %v\n", err)
		os.Exit(2)
	}
	if len(failed) > 0 {
		fmt.Fprintln(os.Stderr, "Per-file coverage check failed:")
		for _, msg := range failed {
			fmt.Fprintln(os.Stderr, "  ", msg)
		}
		os.Exit(1)
	}
}

func splitFilters(include string) []string {
	var filters []string
	for _, p := range strings.Split(include, ",") {
		if p = strings.TrimSpace(p); p != "" {
			filters = append(filters, filepath.ToSlash(p))
		}
	}
	return filters
}

// check reads a coverage profile and returns one message per file below
// threshold, sorted by file name. Test files and files outside filters
// are ignored; an empty filter list checks everything.
func check(r io.Reader, threshold float64, filters []string) ([]string, error) {
	cov, err := parseProfile(r, filters)
	if err != nil {
		return nil, err
	}
	var failed []string
	for file, fc := range cov {
		if fc.total == 0 {
			continue
		}
		if pct := fc.percent(); pct+1e-9 < threshold {
			failed = append(failed, fmt.Sprintf("%s: %.1f%% < %.1f%%", file, pct, threshold))
		}
	}
	sort.Strings(failed)
	return failed, nil
}

// parseProfile sums statements per file. Lines look like
// path/file.go:12.2,14.16 3 1 after a "mode:" header.
func parseProfile(r io.Reader, filters []string) (map[string]*fileCov, error) {
	cov := make(map[string]*fileCov)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "mode:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		i := strings.Index(fields[0], ":")
		if i <= 0 {
			continue
		}
		filename := filepath.ToSlash(fields[0][:i])
		if strings.HasSuffix(filename, "_test.go") || !included(filename, filters) {
			continue
		}
		numStmt, err1 := strconv.Atoi(fields[1])
		cnt, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			continue
		}
		fc := cov[filename]
		if fc == nil {
			fc = &fileCov{}
			cov[filename] = fc
		}
		fc.total += numStmt
		if cnt > 0 {
			fc.covered += numStmt
		}
	}
	return cov, s.Err()
}

func included(filename string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.HasPrefix(filename, f) {
			return true
		}
	}
	return false
}
