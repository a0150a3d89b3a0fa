package fileops

import (
	stdErrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	e "setupgen/pkg/errors"
)

// DirPerm is the mode used for every directory fileops creates.
const DirPerm fs.FileMode = 0o755

// MakeDir creates a single directory. A directory already present at path
// is success; any other failure, including a non-directory occupying path
// or a missing parent, is returned.
func MakeDir(path string) error {
	err := os.Mkdir(path, DirPerm)
	if err == nil {
		return nil
	}
	if stdErrors.Is(err, fs.ErrExist) {
		return requireDir(path, err)
	}
	return e.WrapFS(err, "create directory "+path).WithContext("path", path)
}

// MakeDirAll creates path and any missing parents. Like MakeDir, only an
// existing directory counts as success.
func MakeDirAll(path string) error {
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return e.WrapFS(err, "create directories "+path).WithContext("path", path)
	}
	return nil
}

func requireDir(path string, cause error) error {
	fi, err := os.Stat(path)
	if err == nil && fi.IsDir() {
		return nil
	}
	return e.New(e.ErrFilesystem, path+" exists and is not a directory").
		WithCause(cause).
		WithContext("path", path)
}

// ReplicateDirectoryStructure creates, under dstRoot, a directory for every
// subdirectory of srcRoot. dstRoot itself is created if missing. Running it
// again over the same trees changes nothing.
func ReplicateDirectoryStructure(srcRoot, dstRoot string) error {
	dirs, err := RecursiveGlob(srcRoot, "*", GlobOptions{Kind: Dirs})
	if err != nil {
		return err
	}
	if err := MakeDirAll(dstRoot); err != nil {
		return err
	}
	// Walk order lists parents before their children.
	for _, d := range dirs {
		if err := MakeDir(filepath.Join(dstRoot, d)); err != nil {
			return err
		}
	}
	return nil
}
