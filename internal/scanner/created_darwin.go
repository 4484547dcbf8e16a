package scanner

import (
	"io/fs"
	"syscall"
)

func createdTime(_ string, info fs.FileInfo, _ bool) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st.Birthtimespec.Sec <= 0 {
		return 0
	}
	return uint64(st.Birthtimespec.Sec)
}
