package guard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already safe name",
			input:    "report-2024_final.png",
			expected: "report-2024_final.png",
		},
		{
			name:     "spaces and slashes replaced",
			input:    "my page/screen shot.png",
			expected: "my_page_screen_shot.png",
		},
		{
			name:     "leading dots stripped",
			input:    "...hidden.png",
			expected: "hidden.png",
		},
		{
			name:     "dot-dot alone degrades to empty",
			input:    "..",
			expected: "",
		},
		{
			name:     "all garbage degrades to underscores",
			input:    "???***!!!",
			expected: "_________",
		},
		{
			name:     "unicode replaced",
			input:    "schön.png",
			expected: "sch_n.png",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameTraversal(t *testing.T) {
	result := SanitizeFilename("../../etc/passwd")

	assert.NotContains(t, result, "/")
	assert.NotContains(t, result, "\\")
	assert.False(t, strings.HasPrefix(result, "."), "leading dots must be stripped: %q", result)
	assert.Contains(t, result, "etc_passwd")
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	inputs := []string{
		"../../etc/passwd",
		"normal-file.png",
		"...leading.dots",
		"spaces in name.png",
		"???",
		strings.Repeat("x", 1000),
		strings.Repeat(".", 300) + "tail",
	}

	for _, input := range inputs {
		once := SanitizeFilename(input)
		twice := SanitizeFilename(once)
		assert.Equal(t, once, twice, "sanitization must be idempotent for %q", input)
	}
}

func TestSanitizeFilenameLengthCeiling(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"long plain name", strings.Repeat("a", 4096)},
		{"long garbage", strings.Repeat("/", 4096)},
		{"long dotted prefix", strings.Repeat(".", 4096) + strings.Repeat("b", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeFilename(tt.input)
			assert.LessOrEqual(t, len(result), 255)
		})
	}
}
