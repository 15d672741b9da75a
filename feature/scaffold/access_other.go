//go:build !unix

package scaffold

// writable treats any existing ancestor as writable. Windows ACLs cannot
// be answered from mode bits, so the ancestor existence check is the whole
// test on this platform.
func writable(string) bool {
	return true
}
