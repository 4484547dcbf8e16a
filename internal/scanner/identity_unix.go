//go:build unix

package scanner

import (
	"fmt"
	"io/fs"
	"syscall"
)

// identity returns a key that is equal for two paths naming the same
// directory: its device and inode numbers.
func identity(_ string, info fs.FileInfo) (string, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d:%d", uint64(st.Dev), uint64(st.Ino)), true
}
