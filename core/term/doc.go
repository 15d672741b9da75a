// Package term answers the layout questions console reports ask: how wide
// the terminal is and how to center a section header across it.
//
// Width detection honors the COLUMNS and LINES variables first, because
// that is how render-farm wrappers pin output layout for log scraping,
// then falls back to the tty and finally to the classic 80x24.
package term
