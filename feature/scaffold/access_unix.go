//go:build unix

package scaffold

import "golang.org/x/sys/unix"

// writable probes dir for write permission with a real access(2) check, so
// read-only mounts and permission bits both count.
func writable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
