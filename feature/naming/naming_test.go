package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalToSnake(t *testing.T) {
	tests := []struct{ in, want string }{
		{"PascalCase", "pascal_case"},
		{"SimpleTest", "simple_test"},
		{"HTTPResponse", "http_response"},
		{"XMLParser", "xml_parser"},
		{"Word", "word"},
		{"Test123Case", "test123_case"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PascalToSnake(tt.in), tt.in)
	}
}

func TestPascalToCamel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"PascalCase", "pascalCase"},
		{"SimpleTest", "simpleTest"},
		{"A", "a"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PascalToCamel(tt.in), tt.in)
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct{ in, want string }{
		{"camelCase", "camel_case"},
		{"simpleTest", "simple_test"},
		{"test123Value", "test123_value"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelToSnake(tt.in), tt.in)
	}
}

func TestCamelToPascal(t *testing.T) {
	tests := []struct{ in, want string }{
		{"camelCase", "CamelCase"},
		{"simpleTest", "SimpleTest"},
		{"a", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelToPascal(tt.in), tt.in)
	}
}

func TestSnakeToPascal(t *testing.T) {
	tests := []struct{ in, want string }{
		{"snake_case", "SnakeCase"},
		{"simple_test", "SimpleTest"},
		{"one_two_three", "OneTwoThree"},
		{"test__case", "TestCase"},
		{"_private_var", "PrivateVar"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeToPascal(tt.in), tt.in)
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"snake_case", "snakeCase"},
		{"simple_test", "simpleTest"},
		{"word", "word"},
		{"test__case", "testCase"},
		{"_private_var", "privateVar"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeToCamel(tt.in), tt.in)
	}
}

func TestIsPathLike(t *testing.T) {
	pathLike := []string{
		`C:\Users\username`,
		`D:/projects/file.txt`,
		`E:\`,
		`\\server\share\file.txt`,
		`.\folder\file`,
		`..\parent\file`,
		`folder\subfolder\file`,
		"folder/subfolder/file",
		`C:\folder/subfolder\file`,
		"file.txt",
		"image.png",
		"script.py",
	}
	for _, value := range pathLike {
		assert.True(t, IsPathLike(value), value)
	}

	notPathLike := []string{
		"simple_string",
		"no_extension_no_slashes",
		"file.verylongext",
		".gitignore",
		"",
	}
	for _, value := range notPathLike {
		assert.False(t, IsPathLike(value), value)
	}
}

func TestNoSpecialChars(t *testing.T) {
	valid := []string{
		"validName123",
		"test_variable",
		"ABC_123_xyz",
		"___",
		"abcXYZ",
		"123456",
	}
	for _, value := range valid {
		assert.True(t, NoSpecialChars(value), value)
	}

	invalid := []string{
		"invalid-name",
		"has space",
		"has@symbol",
		"has.dot",
		"",
		" ",
		"\t",
		"\n",
		"test_café",
	}
	for _, value := range invalid {
		assert.False(t, NoSpecialChars(value), value)
	}
}
