// +build !darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd

package unixcompat

func HolesSupported() bool {
	return false
}

func AllocatedBytes(path string) (int64, bool) {
	return 0, false
}
