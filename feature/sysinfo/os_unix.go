//go:build unix

package sysinfo

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// osInfo reads the uname triple.
func osInfo() Info {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fallbackInfo()
	}
	return Info{
		System:  nulString(uts.Sysname[:]),
		Release: nulString(uts.Release[:]),
		Version: nulString(uts.Version[:]),
	}
}

// nulString cuts a fixed-size uname field at its NUL terminator.
func nulString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
