// Package size renders byte counts in human units: a numeric conversion
// for callers that need the value back, and a display string for callers
// that just print it.
package size
