//go:build !linux && !darwin

package scanner

import "io/fs"

func createdTime(string, fs.FileInfo, bool) uint64 {
	return 0
}
