package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Str returns the value of key, or fallback when the variable is unset.
// A variable set to the empty string is returned as such.
func Str(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Int returns key parsed as an integer, or fallback when the variable is
// unset or does not parse.
func Int(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

// Bool returns key read as a boolean. "1", "true", "yes" and "on" are
// true; "0", "false", "no" and "off" are false; both sets are
// case-insensitive. Anything else, including unset, yields the fallback.
func Bool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// Path returns key as an absolute, cleaned path. The fallback is returned
// unchanged when the variable is unset.
func Path(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return fallback
	}
	return abs
}

// List returns key split on delimiter, items trimmed, empties dropped. An
// empty delimiter means the platform path-list separator. The fallback
// applies only when the variable is unset; a set-but-blank variable yields
// an empty list.
func List(key, delimiter string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if delimiter == "" {
		delimiter = string(os.PathListSeparator)
	}
	var items []string
	for _, item := range strings.Split(value, delimiter) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Require checks that every key is set and non-empty. The error names all
// missing variables at once so the environment can be fixed in one pass.
func Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required environment variable(s) not set: %s", strings.Join(missing, ", "))
	}
	return nil
}
