package term

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	xterm "golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Size returns the terminal dimensions of stdout: COLUMNS/LINES overrides
// first, then the tty, then 80x24.
func Size() (width, height int) {
	width = envDim("COLUMNS")
	height = envDim("LINES")
	if width > 0 && height > 0 {
		return width, height
	}
	if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// Width returns just the column count.
func Width() int {
	w, _ := Size()
	return w
}

// Header centers " title " in a field of pad runes:
//
//	Header("Render", '-', 20) == "------ Render ------"
//
// A spaced title that does not fit is returned unpadded. Odd leftovers go
// to the right.
func Header(title string, pad rune, width int) string {
	spaced := " " + title + " "
	length := utf8.RuneCountInString(spaced)
	if length >= width {
		return spaced
	}
	left := (width - length) / 2
	right := width - length - left
	return strings.Repeat(string(pad), left) + spaced + strings.Repeat(string(pad), right)
}

// CenterHeader is [Header] at the detected terminal width.
func CenterHeader(title string, pad rune) string {
	return Header(title, pad, Width())
}

// envDim reads a positive dimension variable, zero when absent or
// malformed.
func envDim(key string) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
