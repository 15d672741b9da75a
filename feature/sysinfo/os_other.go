//go:build !unix && !windows

package sysinfo

// osInfo has no syscall source on this platform.
func osInfo() Info {
	return fallbackInfo()
}
