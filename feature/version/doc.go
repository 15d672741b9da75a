// Package version resolves versioned filenames in pipeline directories:
// the latest existing version of a deliverable and the next version string
// to write.
//
// # Lookup Rules
//
// Both lookups scan a single directory, never recursing, and consider
// regular files only. A candidate must match the requested extension
// exactly (case-sensitive; a missing leading dot on the argument is
// normalized, so "exr" and ".exr" are the same request) and, when a
// substring filter is given, the candidate's slash-form path must contain
// it. The version token is the maximal run of trailing ASCII digits in the
// file stem: "shot_v005" carries 005, "final" carries nothing.
//
// [LatestFile] accepts a digit run of any length and returns the file with
// the highest numeric value. [Next] is stricter: the run length must equal
// the requested padding exactly, so with padding 3 "file_12.exr" and
// "file_1234.exr" are both ignored. The returned string is max+1 padded to
// the requested width, growing naturally when the value no longer fits
// ("999" rolls to "1000").
//
// # Errors
//
// "Nothing matched" is not an error: LatestFile reports it through its
// boolean result, and Next treats it as the fresh-start case and returns
// the padded "1". Directory access failures always propagate wrapped. The
// one asymmetry is a directory that does not exist: [LatestFileInDir]
// reports it as an error, while [NextInDir] treats it as an empty scan,
// since asking for the next version of a directory nobody has written to
// yet is routine.
//
// Version values are compared through math/big, so digit runs of any
// length resolve without overflow.
package version
