//go:build !linux && !darwin && !windows

package scan

import (
	"io/fs"
	"time"
)

// entryTimes falls back to the modification time on platforms without a
// known stat layout.
func entryTimes(info fs.FileInfo) (created, accessed time.Time) {
	return info.ModTime(), info.ModTime()
}
