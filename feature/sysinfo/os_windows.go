//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// osInfo reads the build triple from RtlGetVersion, which reports the real
// build without needing an application manifest. Windows 11 still calls
// itself major version 10; the build number is what tells them apart.
func osInfo() Info {
	v := windows.RtlGetVersion()
	release := fmt.Sprintf("%d", v.MajorVersion)
	if v.MajorVersion == 10 && v.BuildNumber >= 22000 {
		release = "11"
	}
	return Info{
		System:  "Windows",
		Release: release,
		Version: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
	}
}
