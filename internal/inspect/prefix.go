package inspect

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultPrefixSize is the amount of leading bytes read for the type detection (enough for every known signature
// with some margin).
const DefaultPrefixSize = 64

// ReadPrefix reads up to n leading bytes of the file. A file shorter than n bytes results in a shorter slice
// (this is not an error).
func ReadPrefix(path string, n int) ([]byte, error) {
	if n < 0 {
		n = 0
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pathError(path, err)
	}

	defer func() { _ = f.Close() }()

	if info, statErr := f.Stat(); statErr != nil {
		return nil, pathError(path, statErr)
	} else if info.IsDir() {
		return nil, errors.Wrap(ErrIsDirectory, path)
	}

	return readPrefix(f, n)
}

func readPrefix(r io.Reader, n int) ([]byte, error) {
	var buf = make([]byte, n)

	read, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, errors.Wrap(err, "unable to read the file prefix")
	}

	return buf[:read], nil
}
