// Package proc locates and runs external tools with captured output.
//
// [Which] answers whether a tool is on PATH without turning absence into
// an error. [Run] waits for the command and reports everything the caller
// might branch on (output, exit code, wall time) in one [Result]; a
// non-zero exit is data, not an error.
package proc
