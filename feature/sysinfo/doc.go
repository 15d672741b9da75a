// Package sysinfo answers the who-and-when questions report headers ask:
// host OS identity and compact date and time stamps.
package sysinfo
