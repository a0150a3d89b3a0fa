package commands

import (
	"fmt"

	"setupgen/pkg/fileops"
	"setupgen/pkg/terminal"
)

const mkdirUsage = "mkdir [-p] <path>..."

// Mkdir creates each path. An existing directory is not an error. With -p
// missing parents are created too.
func Mkdir(args []string) error {
	p := parseArgs(args)
	parents := p.Bool("-p", "--parents")
	paths, err := p.Positional(mkdirUsage, 1, -1)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if parents {
			err = fileops.MakeDirAll(path)
		} else {
			err = fileops.MakeDir(path)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", terminal.IconFolder, path)
	}
	return nil
}
