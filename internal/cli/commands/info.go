package commands

import (
	"fmt"
	"runtime"

	"setupgen/pkg/sysinfo"
	"setupgen/pkg/terminal"
	"setupgen/pkg/version"
)

// Info prints what setupgen knows about the build host.
func Info(args []string) error {
	if _, err := parseArgs(args).Positional("info", 0, 0); err != nil {
		return err
	}

	bits := "32-bit"
	if sysinfo.Is64Bit() {
		bits = "64-bit"
	}
	source, err := sysinfo.SetupSourceDir(nil)
	if err != nil {
		source = terminal.Warning("unknown")
	}

	fmt.Printf("%s %s\n", terminal.IconInfo, terminal.BoldText("setupgen "+version.Version))
	fmt.Printf("  Platform:   %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, bits)
	fmt.Printf("  %s CPU:      %s\n", terminal.IconCPU, sysinfo.CPUBrand())
	fmt.Printf("  Cores:      %d\n", sysinfo.NumCPU())
	fmt.Printf("  Source dir: %s\n", source)
	return nil
}
