package commands

import (
	"fmt"

	"setupgen/pkg/fileops"
	"setupgen/pkg/terminal"
)

const mirrorUsage = "mirror <src> <dst>"

// Mirror recreates the directory layout of src under dst without copying files.
func Mirror(args []string) error {
	pos, err := parseArgs(args).Positional(mirrorUsage, 2, 2)
	if err != nil {
		return err
	}
	if err := fileops.ReplicateDirectoryStructure(pos[0], pos[1]); err != nil {
		return err
	}
	fmt.Printf("%s Mirrored directories of %s into %s\n", terminal.IconFolder, pos[0], pos[1])
	return nil
}
