//go:build darwin

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// entryTimes extracts creation and access timestamps from the raw stat
// data. Darwin carries a real birth time in Birthtimespec.
func entryTimes(info fs.FileInfo) (created, accessed time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}

	created = time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	accessed = time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)

	return created, accessed
}
