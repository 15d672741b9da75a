package scaffold

import (
	"os"
	"path/filepath"
	"strings"
)

// maxPathLength is the classic Windows MAX_PATH limit, which mixed-OS
// studio storage still has to respect.
const maxPathLength = 260

// invalidChars are the characters Windows refuses inside path elements.
// The drive-colon prefix is carved out before checking.
const invalidChars = `<>:"|?*`

var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// CanCreate reports whether path could be created as a directory on
// conservative cross-platform storage. It checks the name rules first
// (invalid characters, reserved device names in any element, overall
// length), then walks up to the nearest existing ancestor and requires it
// to be a writable directory. A path that already exists as a writable
// directory passes, matching [Create]'s idempotence.
func CanCreate(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	if len(path) > maxPathLength {
		return false
	}

	clean := filepath.Clean(path)
	rest := clean
	if vol := filepath.VolumeName(clean); vol != "" {
		rest = clean[len(vol):]
	}
	if strings.ContainsAny(rest, invalidChars) {
		return false
	}
	for _, element := range strings.Split(filepath.ToSlash(rest), "/") {
		if reserved(element) {
			return false
		}
	}
	return writableAncestor(clean)
}

// reserved reports whether a path element is a Windows device name.
// Extensions do not lift the reservation: "con.txt" is as unusable as
// "CON".
func reserved(element string) bool {
	name := strings.ToUpper(element)
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	_, bad := reservedNames[name]
	return bad
}

// writableAncestor walks from path up to the nearest existing entry, which
// must be a directory the process can write to.
func writableAncestor(path string) bool {
	dir := path
	for {
		info, err := os.Stat(dir)
		if err == nil {
			return info.IsDir() && writable(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
