package scanner

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// createdTime reads the birth time with statx. Filesystems that do not
// record it leave STATX_BTIME unset in the returned mask.
func createdTime(path string, _ fs.FileInfo, follow bool) uint64 {
	flags := unix.AT_STATX_SYNC_AS_STAT
	if !follow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, flags, unix.STATX_BTIME, &stx); err != nil {
		return 0
	}
	if stx.Mask&unix.STATX_BTIME == 0 || stx.Btime.Sec <= 0 {
		return 0
	}
	return uint64(stx.Btime.Sec)
}
