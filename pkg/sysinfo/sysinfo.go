// Package sysinfo answers the questions a packaging script asks about the
// build host: how many CPUs to use for parallel builds, whether the binary
// is 64-bit, and which directory the script was started from.
package sysinfo

import (
	"os"
	"runtime"
	"strconv"

	"github.com/klauspost/cpuid/v2"

	e "setupgen/pkg/errors"
)

// NumCPU returns the number of logical cores. cpuid is asked first; when it
// cannot tell (unsupported architecture or virtualised CPUID) the Go
// runtime's count is used.
func NumCPU() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// CPUBrand returns the processor brand string, or "unknown".
func CPUBrand() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return "unknown"
}

// Is64Bit reports whether this binary was built with 64-bit pointers.
func Is64Bit() bool {
	return strconv.IntSize == 64
}

// sourceDirVars are consulted in order: PWD is set by POSIX shells, CD by cmd.exe.
var sourceDirVars = []string{"PWD", "CD"}

// SetupSourceDir returns the directory the packaging script was launched
// from, as recorded by the invoking shell. It stays correct when the script
// runs from a temporary build directory (pip copies the tree elsewhere but
// keeps the shell environment). A nil lookup uses os.LookupEnv.
func SetupSourceDir(lookup func(string) (string, bool)) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range sourceDirVars {
		if v, ok := lookup(key); ok && v != "" {
			return v, nil
		}
	}
	return "", e.New(e.ErrEnvironment, "could not determine the setup source directory").
		WithDetails("none of the environment variables PWD, CD is set")
}
