package natsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "EmptyString",
			input: "",
			want:  []Token{{Text: ""}},
		},
		{
			name:  "TextOnly",
			input: "banana",
			want:  []Token{{Text: "banana"}},
		},
		{
			name:  "DigitsOnly",
			input: "042",
			want:  []Token{{Text: ""}, {Digits: true, Text: "042"}, {Text: ""}},
		},
		{
			name:  "TrailingDigits",
			input: "file1",
			want:  []Token{{Text: "file"}, {Digits: true, Text: "1"}, {Text: ""}},
		},
		{
			name:  "LeadingDigits",
			input: "1file",
			want:  []Token{{Text: ""}, {Digits: true, Text: "1"}, {Text: "file"}},
		},
		{
			name:  "Interleaved",
			input: "a2b10c",
			want: []Token{
				{Text: "a"},
				{Digits: true, Text: "2"},
				{Text: "b"},
				{Digits: true, Text: "10"},
				{Text: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Equal(t, tt.want, got)

			// Tokens alternate: even indices text, odd indices digit runs.
			for i, tok := range got {
				assert.Equal(t, i%2 == 1, tok.Digits, "token %d kind", i)
			}
		})
	}
}

func TestSplitPurity(t *testing.T) {
	for _, s := range []string{"", "shot_v010.exr", "0100", "a1b2c3"} {
		assert.Equal(t, Split(s), Split(s))
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"NumericBeatsLexicographic", "file2", "file10", -1},
		{"EqualStrings", "frame_0010", "frame_0010", 0},
		{"LeadingZerosEqualValue", "file007", "file7", 0},
		{"PrefixOrdersFirst", "file", "file1", -1},
		{"TextFallback", "apple", "banana", -1},
		{"SecondRunDecides", "a2b9", "a2b10", -1},
		{"EmptyBeforeAnything", "", "a", -1},
		{"HugeValues", "v99999999999999999999998", "v99999999999999999999999", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestCompareTokensMixedKinds(t *testing.T) {
	digits := Token{Digits: true, Text: "12"}
	text := Token{Text: "abc"}

	assert.Equal(t, -1, compareTokens(digits, text))
	assert.Equal(t, 1, compareTokens(text, digits))
}

func TestLess(t *testing.T) {
	assert.True(t, Less("file2", "file10"))
	assert.False(t, Less("file10", "file2"))
	assert.False(t, Less("file7", "file007"))
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "NumericSuffixes",
			input: []string{"file10", "file2", "file1"},
			want:  []string{"file1", "file2", "file10"},
		},
		{
			name:  "PaddedFrames",
			input: []string{"frame_0010", "frame_0002", "frame_0001", "frame_0100"},
			want:  []string{"frame_0001", "frame_0002", "frame_0010", "frame_0100"},
		},
		{
			name:  "VersionNumbers",
			input: []string{"asset_v2", "asset_v10", "asset_v1", "asset_v100"},
			want:  []string{"asset_v1", "asset_v2", "asset_v10", "asset_v100"},
		},
		{
			name:  "MultipleRuns",
			input: []string{"file2_v10", "file10_v2", "file2_v2"},
			want:  []string{"file2_v2", "file2_v10", "file10_v2"},
		},
		{
			name:  "Alphabetical",
			input: []string{"banana", "apple", "cherry"},
			want:  []string{"apple", "banana", "cherry"},
		},
		{
			name:  "Empty",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "Single",
			input: []string{"only"},
			want:  []string{"only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := append([]string(nil), tt.input...)
			Sort(items)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestSortStability(t *testing.T) {
	// file007 and file7 carry equal keys, so input order survives.
	a := []string{"file007", "file7"}
	Sort(a)
	assert.Equal(t, []string{"file007", "file7"}, a)

	b := []string{"file7", "file007"}
	Sort(b)
	assert.Equal(t, []string{"file7", "file007"}, b)
}

func TestSortPaths(t *testing.T) {
	paths := []string{
		"/shots/sq10/file10.txt",
		"/shots/sq10/file2.txt",
		"/shots/sq2/file1.txt",
	}
	SortPaths(paths)
	assert.Equal(t, []string{
		"/shots/sq2/file1.txt",
		"/shots/sq10/file2.txt",
		"/shots/sq10/file10.txt",
	}, paths)
}

func TestSortPathsSeparatorAgnostic(t *testing.T) {
	paths := []string{`C:\shots\file10.exr`, "C:/shots/file2.exr"}
	SortPaths(paths)
	assert.Equal(t, []string{"C:/shots/file2.exr", `C:\shots\file10.exr`}, paths)
}
