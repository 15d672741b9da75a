package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unsetKey = "CORE_UTILS_TEST_UNSET"

func TestStr(t *testing.T) {
	t.Setenv("CORE_UTILS_TEST_STR", "hello")
	assert.Equal(t, "hello", Str("CORE_UTILS_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", Str(unsetKey, "fallback"))

	// Set-but-empty is a real value, not a miss.
	t.Setenv("CORE_UTILS_TEST_EMPTY", "")
	assert.Equal(t, "", Str("CORE_UTILS_TEST_EMPTY", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("CORE_UTILS_TEST_INT", "42")
	assert.Equal(t, 42, Int("CORE_UTILS_TEST_INT", 7))

	t.Setenv("CORE_UTILS_TEST_INT", " -3 ")
	assert.Equal(t, -3, Int("CORE_UTILS_TEST_INT", 7))

	t.Setenv("CORE_UTILS_TEST_INT", "not a number")
	assert.Equal(t, 7, Int("CORE_UTILS_TEST_INT", 7))

	assert.Equal(t, 7, Int(unsetKey, 7))
}

func TestBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "yes", "Yes", "on"}
	for _, value := range truthy {
		t.Setenv("CORE_UTILS_TEST_BOOL", value)
		assert.True(t, Bool("CORE_UTILS_TEST_BOOL", false), value)
	}

	falsy := []string{"0", "false", "False", "no", "NO", "off", "Off"}
	for _, value := range falsy {
		t.Setenv("CORE_UTILS_TEST_BOOL", value)
		assert.False(t, Bool("CORE_UTILS_TEST_BOOL", true), value)
	}

	t.Setenv("CORE_UTILS_TEST_BOOL", "maybe")
	assert.True(t, Bool("CORE_UTILS_TEST_BOOL", true))
	assert.False(t, Bool("CORE_UTILS_TEST_BOOL", false))

	assert.True(t, Bool(unsetKey, true))
}

func TestPath(t *testing.T) {
	t.Setenv("CORE_UTILS_TEST_PATH", "some/relative/dir")
	got := Path("CORE_UTILS_TEST_PATH", "")
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, filepath.FromSlash("some/relative/dir")))

	// The fallback passes through untouched.
	assert.Equal(t, "unresolved", Path(unsetKey, "unresolved"))
}

func TestList(t *testing.T) {
	sep := string(os.PathListSeparator)

	t.Setenv("CORE_UTILS_TEST_LIST", strings.Join([]string{"a", "b", "c"}, sep))
	assert.Equal(t, []string{"a", "b", "c"}, List("CORE_UTILS_TEST_LIST", "", nil))

	t.Setenv("CORE_UTILS_TEST_LIST", " a , ,b ,")
	assert.Equal(t, []string{"a", "b"}, List("CORE_UTILS_TEST_LIST", ",", nil))

	t.Setenv("CORE_UTILS_TEST_LIST", "")
	assert.Empty(t, List("CORE_UTILS_TEST_LIST", ",", []string{"fallback"}))

	assert.Equal(t, []string{"fallback"}, List(unsetKey, ",", []string{"fallback"}))
}

func TestRequire(t *testing.T) {
	t.Setenv("CORE_UTILS_TEST_REQ_A", "set")
	t.Setenv("CORE_UTILS_TEST_REQ_B", "also set")
	assert.NoError(t, Require("CORE_UTILS_TEST_REQ_A", "CORE_UTILS_TEST_REQ_B"))

	t.Setenv("CORE_UTILS_TEST_REQ_EMPTY", "")
	err := Require("CORE_UTILS_TEST_REQ_A", "CORE_UTILS_TEST_REQ_EMPTY", unsetKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORE_UTILS_TEST_REQ_EMPTY")
	assert.Contains(t, err.Error(), unsetKey)
	assert.NotContains(t, err.Error(), "CORE_UTILS_TEST_REQ_A")
}
