package inspect

import (
	"os"
	"time"
)

// Metadata is a basic set of the file system attributes.
type Metadata struct {
	Size     int64     // size in bytes
	Modified time.Time // last modification time
	Changed  time.Time // last status change time on unix, creation time on windows
	Accessed time.Time // last access time
}

// Stat returns the file metadata. Timestamps the platform does not provide fall back to the modification time.
func Stat(path string) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, pathError(path, err)
	}

	var md = Metadata{
		Size:     info.Size(),
		Modified: info.ModTime(),
		Changed:  info.ModTime(),
		Accessed: info.ModTime(),
	}

	if changed, accessed, ok := platformTimes(path, info); ok {
		md.Changed, md.Accessed = changed, accessed
	}

	return md, nil
}
