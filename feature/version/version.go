package version

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultPadding is the version-number width used when a caller does not
// supply a positive one.
const DefaultPadding = 3

var namePattern = regexp.MustCompile(`_v(\d+)\.`)

// TrailingNumber returns the maximal run of trailing ASCII digits of a file
// stem: "shot_v005" yields "005". The boolean result is false when the stem
// does not end in a digit.
func TrailingNumber(stem string) (string, bool) {
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	if i == len(stem) {
		return "", false
	}
	return stem[i:], true
}

// NumberFromName extracts the digits of the first "_v<digits>." token in a
// filename: "GhostA_anim_v001.ma" yields "001".
func NumberFromName(name string) (string, bool) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// LatestFile scans the root of fsys for the regular file with the highest
// trailing version value among those matching ext and, when contains is
// non-empty, whose slash-form path contains it. The boolean result is false
// when nothing matches. A ReadDir failure propagates.
//
// Ties on value resolve to the lexicographically smallest name: entries
// arrive name-sorted and the winner is only replaced by a strictly greater
// value.
func LatestFile(fsys fs.FS, ext, contains string) (string, bool, error) {
	return latestUnder(fsys, ".", ext, contains)
}

// LatestFileInDir is [LatestFile] over an OS directory. The returned path
// is dir joined with the winning name. A directory that does not exist is
// an error.
func LatestFileInDir(dir, ext, contains string) (string, bool, error) {
	name, ok, err := latestUnder(os.DirFS(dir), filepath.ToSlash(dir), ext, contains)
	if err != nil || !ok {
		return "", false, err
	}
	return filepath.Join(dir, name), true, nil
}

// Next returns the version string to write next: the highest matching
// trailing value plus one, zero-padded to padding. Candidates must carry a
// trailing digit run of exactly padding characters; shorter and longer runs
// are both ignored. No candidates means the padded "1". Padding values
// below 1 fall back to [DefaultPadding].
func Next(fsys fs.FS, ext, contains string, padding int) (string, error) {
	return nextUnder(fsys, ".", ext, contains, padding)
}

// NextInDir is [Next] over an OS directory. A directory that does not
// exist yet yields the first version string; any other access failure
// propagates.
func NextInDir(dir, ext, contains string, padding int) (string, error) {
	if padding < 1 {
		padding = DefaultPadding
	}
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pad("1", padding), nil
		}
		return "", fmt.Errorf("reading version directory: %w", err)
	}
	return nextUnder(os.DirFS(dir), filepath.ToSlash(dir), ext, contains, padding)
}

// latestUnder carries the shared scan. The display prefix is what candidate
// names are joined under for substring matching; the fs.FS form passes "."
// so names match as-is, the directory form passes the slash form of dir so
// substrings may span path components.
func latestUnder(fsys fs.FS, display, ext, contains string) (string, bool, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", false, fmt.Errorf("reading version directory: %w", err)
	}
	ext = normalizeExt(ext)

	var (
		winner string
		best   *big.Int
	)
	for _, entry := range entries {
		name := entry.Name()
		if !candidate(entry, display, name, ext, contains) {
			continue
		}
		digits, ok := TrailingNumber(stemOf(name))
		if !ok {
			continue
		}
		value, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			continue
		}
		if best == nil || value.Cmp(best) > 0 {
			winner, best = name, value
		}
	}
	if best == nil {
		return "", false, nil
	}
	return winner, true, nil
}

func nextUnder(fsys fs.FS, display, ext, contains string, padding int) (string, error) {
	if padding < 1 {
		padding = DefaultPadding
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", fmt.Errorf("reading version directory: %w", err)
	}
	ext = normalizeExt(ext)

	var max *big.Int
	for _, entry := range entries {
		name := entry.Name()
		if !candidate(entry, display, name, ext, contains) {
			continue
		}
		digits, ok := TrailingNumber(stemOf(name))
		if !ok || len(digits) != padding {
			continue
		}
		value, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			continue
		}
		if max == nil || value.Cmp(max) > 0 {
			max = value
		}
	}
	if max == nil {
		return pad("1", padding), nil
	}
	next := new(big.Int).Add(max, big.NewInt(1))
	return pad(next.String(), padding), nil
}

// candidate applies the filters shared by both lookups: regular file,
// exact extension, substring over the displayed path.
func candidate(entry fs.DirEntry, display, name, ext, contains string) bool {
	if !entry.Type().IsRegular() {
		return false
	}
	if path.Ext(name) != ext {
		return false
	}
	return contains == "" || strings.Contains(path.Join(display, name), contains)
}

// stemOf strips the final extension: "shot_v005.exr" yields "shot_v005".
func stemOf(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// normalizeExt puts the leading dot back so "exr" and ".exr" request the
// same extension. Matching itself stays case-sensitive.
func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// pad left-fills digits with zeros to width. Longer values pass through
// unchanged, which is how widths grow once the count outruns the padding.
func pad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
