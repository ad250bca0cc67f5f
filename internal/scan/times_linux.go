//go:build linux

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// entryTimes extracts creation and access timestamps from the raw stat
// data. Linux exposes no birth time through Stat_t, so the inode change
// time stands in for creation.
func entryTimes(info fs.FileInfo) (created, accessed time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}

	created = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	accessed = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)

	return created, accessed
}
