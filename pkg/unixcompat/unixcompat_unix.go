// +build darwin dragonfly freebsd linux netbsd openbsd

package unixcompat

import (
	"golang.org/x/sys/unix"
)

// HolesSupported reports whether seeking past the end of a file and writing
// leaves an unallocated range that reads back as zero.
func HolesSupported() bool {
	return true
}

// AllocatedBytes reports the space the filesystem has allocated to path.
func AllocatedBytes(path string) (int64, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, false
	}
	return int64(st.Blocks) * 512, true
}
