package sysinfo

import (
	"runtime"
	"time"
)

// Info identifies the host operating system.
type Info struct {
	System  string
	Release string
	Version string
}

// Date returns today as MM-DD-YYYY.
func Date() string {
	return time.Now().Format("01-02-2006")
}

// Clock returns the current wall time as HH:MM:SS.cc, with hundredths of
// a second.
func Clock() string {
	return time.Now().Format("15:04:05.00")
}

// OS identifies the running system. The detail comes from the platform
// files; every platform at least reports its family name.
func OS() Info {
	return osInfo()
}

// fallbackInfo reports just the platform family.
func fallbackInfo() Info {
	return Info{System: runtime.GOOS}
}
