//go:build windows

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// entryTimes extracts creation and access timestamps from the raw
// attribute data returned by the Windows stat implementation.
func entryTimes(info fs.FileInfo) (created, accessed time.Time) {
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime(), info.ModTime()
	}

	created = time.Unix(0, attr.CreationTime.Nanoseconds())
	accessed = time.Unix(0, attr.LastAccessTime.Nanoseconds())

	return created, accessed
}
