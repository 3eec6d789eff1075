//go:build windows

package inspect

import (
	"os"
	"syscall"
	"time"
)

func platformTimes(_ string, info os.FileInfo) (changed, accessed time.Time, ok bool) {
	data, isWin := info.Sys().(*syscall.Win32FileAttributeData)
	if !isWin || data == nil {
		return
	}

	// windows has no status change time, the creation time is reported instead
	return time.Unix(0, data.CreationTime.Nanoseconds()), time.Unix(0, data.LastAccessTime.Nanoseconds()), true
}
