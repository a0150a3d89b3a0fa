package fileops

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/blake3"

	e "setupgen/pkg/errors"
)

// FileDigest returns the hex-encoded blake3 digest of the file at path.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", e.WrapFS(err, "open "+path)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", e.WrapFS(err, "read "+path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// sameContent reports whether two files hold identical bytes.
func sameContent(a, b string) (bool, error) {
	da, err := FileDigest(a)
	if err != nil {
		return false, err
	}
	db, err := FileDigest(b)
	if err != nil {
		return false, err
	}
	return da == db, nil
}
