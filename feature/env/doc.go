// Package env reads typed values out of the process environment with
// explicit fallbacks, for pipeline scripts that run outside the config
// layer.
//
// Getters never error: a variable that is unset, or unparseable for the
// typed getters, yields the caller's fallback. [Require] is the one
// escalation point and names every missing variable in a single error.
package env
